package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GradientColors returns n colours blended across the hex stops in Lab space.
// Invalid stops are skipped; with no valid stops every colour is empty.
func GradientColors(n int, stops ...string) []lipgloss.Color {
	if n <= 0 {
		return nil
	}

	parsed := make([]colorful.Color, 0, len(stops))
	for _, stop := range stops {
		c, err := colorful.Hex(stop)
		if err != nil {
			continue
		}
		parsed = append(parsed, c)
	}

	out := make([]lipgloss.Color, n)
	switch len(parsed) {
	case 0:
		return out
	case 1:
		for i := range out {
			out[i] = lipgloss.Color(parsed[0].Hex())
		}
		return out
	}

	segments := float64(len(parsed) - 1)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pos := t * segments
		seg := min(int(pos), len(parsed)-2)
		local := pos - float64(seg)
		out[i] = lipgloss.Color(parsed[seg].BlendLab(parsed[seg+1], local).Clamped().Hex())
	}
	return out
}

// Gradient colours each grapheme of text along the stops.
func Gradient(text string, stops ...string) string {
	return paint(text, func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}, stops)
}

// GradientFill paints the background of each grapheme along the stops, with
// fg as the text colour.
func GradientFill(text, fg string, stops ...string) string {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true)
	return paint(text, func(c lipgloss.Color) lipgloss.Style {
		return base.Background(c)
	}, stops)
}

func paint(text string, styleFor func(lipgloss.Color) lipgloss.Style, stops []string) string {
	graphemes := Graphemes(text)
	colors := GradientColors(len(graphemes), stops...)

	var b strings.Builder
	for i, g := range graphemes {
		if colors[i] == "" {
			b.WriteString(g)
			continue
		}
		b.WriteString(styleFor(colors[i]).Render(g))
	}
	return b.String()
}
