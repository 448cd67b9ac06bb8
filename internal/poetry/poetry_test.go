package poetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		field   string
		message string
	}{
		{
			name:    "both missing reports mood",
			req:     Request{},
			field:   "mood",
			message: MsgMoodMissing,
		},
		{
			name:    "mood missing",
			req:     Request{Style: StyleModern},
			field:   "mood",
			message: MsgMoodMissing,
		},
		{
			name:    "style missing",
			req:     Request{Mood: "calm evening"},
			field:   "style",
			message: MsgStyleMissing,
		},
		{
			name:    "unknown style",
			req:     Request{Mood: "calm evening", Style: StyleKey("baroque")},
			field:   "style",
			message: MsgStyleMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			require.Error(t, err)

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestRequestValidateAcceptsWhitespaceMood(t *testing.T) {
	t.Parallel()

	require.NoError(t, Request{Mood: "   ", Style: StyleSpiritual}.Validate())
}

func TestCatalogOrderMatchesDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ThemeKey{ThemeMystical, ThemeSunset, ThemeMoonlight}, Themes())
	assert.Equal(t, []StyleKey{StyleClassical, StyleModern, StyleRomantic, StyleSpiritual, StyleCelebrate}, Styles())
}

func TestCatalogListsAreCopies(t *testing.T) {
	t.Parallel()

	themes := Themes()
	themes[0] = ThemeKey("mutated")
	assert.Equal(t, ThemeMystical, Themes()[0])

	styles := Styles()
	styles[0] = StyleKey("mutated")
	assert.Equal(t, StyleClassical, Styles()[0])
}

func TestThemeFallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Theme(DefaultTheme), Theme(ThemeKey("neon")))
	assert.Equal(t, "Sunset", Theme(ThemeSunset).Name)
}

func TestParseStyleAndTheme(t *testing.T) {
	t.Parallel()

	style, ok := ParseStyle(" Romantic ")
	require.True(t, ok)
	assert.Equal(t, StyleRomantic, style)

	_, ok = ParseStyle("")
	assert.False(t, ok)

	theme, ok := ParseTheme("MOONLIGHT")
	require.True(t, ok)
	assert.Equal(t, ThemeMoonlight, theme)

	_, ok = ParseTheme("dusk")
	assert.False(t, ok)
}

func TestResultOK(t *testing.T) {
	t.Parallel()

	assert.True(t, Succeeded("X").OK())
	assert.False(t, Failed(apperrors.NewRequestError(429, "rate limited", nil)).OK())
}
