package portal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	"github.com/alexisbeaulieu97/shayari/internal/tui/components"
)

var (
	// Colors
	errorColor = lipgloss.Color("196") // Red
	mutedColor = lipgloss.Color("245") // Gray

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// styles holds the lipgloss styles derived from the active theme.
type styles struct {
	theme poetry.ThemeAttributes

	palette components.Palette

	tagline       lipgloss.Style
	card          lipgloss.Style
	input         lipgloss.Style
	poem          lipgloss.Style
	spinner       lipgloss.Style
	circleCaption lipgloss.Style
}

func newStyles(theme poetry.ThemeAttributes) styles {
	primary := lipgloss.Color(theme.Primary[0])
	accent := lipgloss.Color(theme.Accent)

	return styles{
		theme: theme,

		palette: components.Palette{
			Fill:   theme.Background[0],
			Border: theme.Primary[2],
			Text:   "#ffffff",
		},
		tagline: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true).
			MarginBottom(1),
		card: lipgloss.NewStyle().
			Padding(1, 3).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Primary[1])),
		input: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(primary),
		poem: lipgloss.NewStyle().
			Foreground(accent).
			Padding(1, 2),
		spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Primary[1])),
		circleCaption: lipgloss.NewStyle().
			Foreground(accent).
			Faint(true),
	}
}

// title paints text with the theme's primary gradient.
func (s styles) title(text string) string {
	p := s.theme.Primary
	return components.Gradient(text, p[0], p[1], p[2])
}

// button builds a themed button.
func (s styles) button(label string, variant components.ButtonVariant) *components.Button {
	return components.NewButton(label, s.palette, components.ButtonOptions{Variant: variant})
}
