package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const circlePoints = 16

// circleRing describes one ring of the magic circle.
type circleRing struct {
	radius    float64
	direction int // 1 clockwise, -1 counter-clockwise, 0 pulsing
	style     lipgloss.Style
}

// MagicCircle draws three concentric rings for the given animation frame:
// one turning clockwise, one counter-clockwise and one pulsing. It is shown
// while no poem is available.
func MagicCircle(frame int, colors [3]string) string {
	rings := []circleRing{
		{radius: 2, direction: 1, style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[0]))},
		{radius: 3, direction: -1, style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[1]))},
		{radius: 4, direction: 0, style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[2]))},
	}

	const (
		height = 9
		width  = 17
	)
	cx, cy := width/2, height/2

	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for _, ring := range rings {
		lit := ((frame*ring.direction)%circlePoints + circlePoints) % circlePoints
		for k := 0; k < circlePoints; k++ {
			angle := 2 * math.Pi * float64(k) / circlePoints
			x := cx + int(math.Round(2*ring.radius*math.Cos(angle)))
			y := cy + int(math.Round(ring.radius*math.Sin(angle)))
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			grid[y][x] = ring.style.Render(ringRune(ring, k, lit, frame))
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func ringRune(ring circleRing, k, lit, frame int) string {
	if ring.direction == 0 {
		if (frame/4)%2 == 0 {
			return "∘"
		}
		return "·"
	}
	if k == lit {
		return "✧"
	}
	return "·"
}
