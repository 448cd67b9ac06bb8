package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func poemServer(t *testing.T, status int, payload map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func executeCompose(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"compose", "--config", writeConfig(t, "theme: sunset\n")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestComposePrintsPoem(t *testing.T) {
	srv, hits := poemServer(t, http.StatusOK, map[string]string{"poem": "shaam dhali\nyaad aayi"})

	out, err := executeCompose(t, "--endpoint", srv.URL, "--mood", "nostalgic", "--style", "Romantic")
	require.NoError(t, err)
	assert.Equal(t, "shaam dhali\nyaad aayi\n", out)
	assert.Equal(t, int32(1), hits.Load())
}

func TestComposeValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing mood",
			args:    []string{"--style", "classical"},
			wantErr: poetry.MsgMoodMissing,
		},
		{
			name:    "missing style",
			args:    []string{"--mood", "calm"},
			wantErr: poetry.MsgStyleMissing,
		},
		{
			name:    "unknown style",
			args:    []string{"--mood", "calm", "--style", "haiku"},
			wantErr: `unknown style "haiku"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, hits := poemServer(t, http.StatusOK, map[string]string{"poem": "unused"})

			_, err := executeCompose(t, append([]string{"--endpoint", srv.URL}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Zero(t, hits.Load())
		})
	}
}

func TestComposeSurfacesServerError(t *testing.T) {
	srv, _ := poemServer(t, http.StatusBadGateway, map[string]string{"error": "the muse is asleep"})

	_, err := executeCompose(t, "--endpoint", srv.URL, "--mood", "calm", "--style", "modern")
	require.Error(t, err)
	assert.Equal(t, "the muse is asleep", err.Error())
}

func TestComposeRejectsInvalidTheme(t *testing.T) {
	srv, hits := poemServer(t, http.StatusOK, map[string]string{"poem": "unused"})

	_, err := executeCompose(t, "--endpoint", srv.URL, "--theme", "neon", "--mood", "calm", "--style", "modern")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
	assert.Zero(t, hits.Load())
}

func TestPrintPoemLeavesNonTerminalOutputAlone(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, printPoem(buf, "دل ہی تو ہے"))
	assert.Equal(t, "دل ہی تو ہے\n", buf.String())
}
