package poetry

import "strings"

// ThemeAttributes is the display record for a theme. Colours are hex strings
// so they can feed both lipgloss and gradient blending.
type ThemeAttributes struct {
	Name       string
	Background [3]string
	Primary    [3]string
	Accent     string
}

// StyleAttributes is the display record for a poetry style.
type StyleAttributes struct {
	Name string
	Icon string
}

var (
	themeOrder = []ThemeKey{ThemeMystical, ThemeSunset, ThemeMoonlight}
	styleOrder = []StyleKey{StyleClassical, StyleModern, StyleRomantic, StyleSpiritual, StyleCelebrate}

	themeCatalog = map[ThemeKey]ThemeAttributes{
		ThemeMystical: {
			Name:       "Mystical",
			Background: [3]string{"#6b21a8", "#9d174d", "#854d0e"},
			Primary:    [3]string{"#9333ea", "#db2777", "#ca8a04"},
			Accent:     "#f3e8ff",
		},
		ThemeSunset: {
			Name:       "Sunset",
			Background: [3]string{"#9a3412", "#991b1b", "#9d174d"},
			Primary:    [3]string{"#ea580c", "#dc2626", "#db2777"},
			Accent:     "#ffedd5",
		},
		ThemeMoonlight: {
			Name:       "Moonlight",
			Background: [3]string{"#1e40af", "#3730a3", "#6b21a8"},
			Primary:    [3]string{"#2563eb", "#4f46e5", "#9333ea"},
			Accent:     "#dbeafe",
		},
	}

	styleCatalog = map[StyleKey]StyleAttributes{
		StyleClassical: {Name: "Classical", Icon: "📜"},
		StyleModern:    {Name: "Modern", Icon: "🎨"},
		StyleRomantic:  {Name: "Romantic", Icon: "♥"},
		StyleSpiritual: {Name: "Spiritual", Icon: "☾"},
		StyleCelebrate: {Name: "Celebrate", Icon: "🎉"},
	}
)

// Themes returns the theme keys in display order.
func Themes() []ThemeKey {
	return append([]ThemeKey(nil), themeOrder...)
}

// Styles returns the style keys in display order.
func Styles() []StyleKey {
	return append([]StyleKey(nil), styleOrder...)
}

// Theme looks up the display record for key, falling back to the default
// theme for unknown keys.
func Theme(key ThemeKey) ThemeAttributes {
	if attrs, ok := themeCatalog[key]; ok {
		return attrs
	}
	return themeCatalog[DefaultTheme]
}

// Style looks up the display record for key.
func Style(key StyleKey) (StyleAttributes, bool) {
	attrs, ok := styleCatalog[key]
	return attrs, ok
}

// IsTheme reports whether key names a known theme.
func IsTheme(key string) bool {
	_, ok := themeCatalog[ThemeKey(key)]
	return ok
}

// IsStyle reports whether key names a known style. The unselected value is
// not a style.
func IsStyle(key string) bool {
	_, ok := styleCatalog[StyleKey(key)]
	return ok
}

// ParseTheme normalises user input into a ThemeKey.
func ParseTheme(value string) (ThemeKey, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	if !IsTheme(key) {
		return "", false
	}
	return ThemeKey(key), true
}

// ParseStyle normalises user input into a StyleKey.
func ParseStyle(value string) (StyleKey, bool) {
	key := strings.ToLower(strings.TrimSpace(value))
	if !IsStyle(key) {
		return StyleUnselected, false
	}
	return StyleKey(key), true
}
