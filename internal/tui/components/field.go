package components

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GlyphKind picks the decoration drawn for a floating element.
type GlyphKind int

const (
	GlyphFeather GlyphKind = iota
	GlyphStar
	GlyphMusic
)

var glyphRunes = map[GlyphKind]string{
	GlyphFeather: "✒",
	GlyphStar:    "✦",
	GlyphMusic:   "♪",
}

var glyphStyles = map[GlyphKind]lipgloss.Style{
	GlyphFeather: lipgloss.NewStyle().Foreground(lipgloss.Color("#d8b4fe")).Faint(true),
	GlyphStar:    lipgloss.NewStyle().Foreground(lipgloss.Color("#fde047")).Faint(true),
	GlyphMusic:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f9a8d4")).Faint(true),
}

// Glyph is one floating decoration. X and Y are fractions of the canvas.
type Glyph struct {
	Kind  GlyphKind
	X, Y  float64
	Delay int
}

// Field is a set of slowly bobbing glyphs behind the main card.
type Field struct {
	Glyphs []Glyph
	Frame  int
}

// DefaultFieldSize matches the number of floating elements on the page.
const DefaultFieldSize = 15

// NewField scatters n glyphs using rng. Kinds cycle feather, star, music.
func NewField(rng *rand.Rand, n int) Field {
	glyphs := make([]Glyph, n)
	for i := range glyphs {
		glyphs[i] = Glyph{
			Kind:  GlyphKind(i % 3),
			X:     rng.Float64(),
			Y:     rng.Float64(),
			Delay: rng.Intn(5 * floatPeriod),
		}
	}
	return Field{Glyphs: glyphs}
}

// floatPeriod is the number of frames for one up-and-down bob.
const floatPeriod = 12

// Step advances the animation by one frame.
func (f Field) Step() Field {
	f.Frame++
	return f
}

// bob returns the vertical offset of g at the current frame: 0 or -1.
func (f Field) bob(g Glyph) int {
	if ((f.Frame+g.Delay)/(floatPeriod/2))%2 == 0 {
		return 0
	}
	return -1
}

// Cells lays the glyphs out on a width×height grid of single-cell strings.
func (f Field) Cells(width, height int) [][]string {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]string, height)
	for y := range grid {
		row := make([]string, width)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}

	for _, g := range f.Glyphs {
		x := clamp(int(g.X*float64(width)), 0, width-1)
		y := clamp(int(g.Y*float64(height))+f.bob(g), 0, height-1)
		grid[y][x] = glyphStyles[g.Kind].Render(glyphRunes[g.Kind])
	}
	return grid
}

// Compose centres foreground over the glyph field. Glyphs hidden by the
// foreground are not drawn. A foreground larger than the canvas is returned
// unchanged.
func (f Field) Compose(width, height int, foreground string) string {
	fgLines := strings.Split(foreground, "\n")
	fgWidth := lipgloss.Width(foreground)
	if fgWidth > width || len(fgLines) > height {
		return foreground
	}

	cells := f.Cells(width, height)
	if cells == nil {
		return foreground
	}
	top := max((height-len(fgLines))/2, 0)
	left := max((width-fgWidth)/2, 0)

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		i := y - top
		if i < 0 || i >= len(fgLines) {
			b.WriteString(strings.Join(row, ""))
			continue
		}
		line := fgLines[i]
		b.WriteString(strings.Join(row[:min(left, len(row))], ""))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", max(fgWidth-lipgloss.Width(line), 0)))
		if right := left + fgWidth; right < len(row) {
			b.WriteString(strings.Join(row[right:], ""))
		}
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
