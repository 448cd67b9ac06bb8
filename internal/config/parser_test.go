package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	validYAML := `endpoint: https://poems.example.com/api/poetry
theme: sunset
timeout: 45s
log:
  level: debug
animation:
  enabled: false
  typewriter_speed: 20ms
`

	invalidYAML := `endpoint: [1, 2]
theme: sunset
`

	badTheme := `theme: neon
`

	badLevel := `log:
  level: chatty
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "https://poems.example.com/api/poetry", cfg.Endpoint)
				require.Equal(t, poetry.ThemeSunset, cfg.ThemeKey())
				require.Equal(t, 45*time.Second, cfg.Timeout)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Animation.Enabled)
				require.Equal(t, 20*time.Millisecond, cfg.Animation.TypewriterSpeed)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "unknown theme returns validation error",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "neon")
			},
		},
		{
			name:     "unknown log level returns validation error",
			contents: badLevel,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
		{
			name:     "missing keys keep defaults",
			contents: "theme: moonlight\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default().Endpoint, cfg.Endpoint)
				require.True(t, cfg.Animation.Enabled)
				require.Equal(t, DefaultTypewriterSpeed, cfg.Animation.TypewriterSpeed)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, "config.yaml", tc.contents)
			cfg, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()

	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.yaml"), LookupEnv: noEnv})

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadLayersEnvironmentAndOverrides(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "config.yaml", "endpoint: http://file.example/api/poetry\ntheme: sunset\n")
	env := map[string]string{
		EnvEndpoint: "http://env.example/api/poetry",
		EnvLogLevel: "warn",
		EnvTimeout:  "5s",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	cfg, err := Load(LoadOptions{
		Path:      path,
		LookupEnv: lookup,
		Overrides: Overrides{Theme: "moonlight", NoAnimation: true},
	})

	require.NoError(t, err)
	require.Equal(t, "http://env.example/api/poetry", cfg.Endpoint)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "moonlight", cfg.Theme)
	require.False(t, cfg.Animation.Enabled)
}

func TestLoadReadsDotEnvBeneathProcessEnvironment(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yaml", "theme: mystical\n")
	dotEnv := writeFile(t, ".env", "SHAYARI_ENDPOINT=http://dotenv.example/api/poetry\nSHAYARI_THEME=sunset\n")
	lookup := func(key string) (string, bool) {
		if key == EnvTheme {
			return "moonlight", true
		}
		return "", false
	}

	cfg, err := Load(LoadOptions{Path: configPath, DotEnv: dotEnv, LookupEnv: lookup})

	require.NoError(t, err)
	require.Equal(t, "http://dotenv.example/api/poetry", cfg.Endpoint)
	require.Equal(t, "moonlight", cfg.Theme)
}

func TestLoadIgnoresMissingDotEnv(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yaml", "theme: mystical\n")
	cfg, err := Load(LoadOptions{
		Path:      configPath,
		DotEnv:    filepath.Join(t.TempDir(), ".env"),
		LookupEnv: noEnv,
	})

	require.NoError(t, err)
	require.Equal(t, "mystical", cfg.Theme)
}

func TestLoadRejectsBadTimeoutEnv(t *testing.T) {
	t.Parallel()

	configPath := writeFile(t, "config.yaml", "theme: mystical\n")
	lookup := func(key string) (string, bool) {
		if key == EnvTimeout {
			return "soon", true
		}
		return "", false
	}

	_, err := Load(LoadOptions{Path: configPath, LookupEnv: lookup})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "timeout", validationErr.Field)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 7, extractLine(&apperrors.ParseError{Message: "yaml: line 7: did not find expected key"}))
}
