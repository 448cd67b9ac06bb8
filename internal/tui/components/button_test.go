package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = Palette{Fill: "#6b21a8", Border: "#ca8a04", Text: "#ffffff"}

func TestButtonBorders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   ButtonOptions
		corner string
	}{
		{name: "idle", opts: ButtonOptions{}, corner: "╭"},
		{name: "focused", opts: ButtonOptions{Focus: true}, corner: "┏"},
		{name: "disabled wins over focus", opts: ButtonOptions{Focus: true, Disabled: true}, corner: "┌"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := NewButton("Create Magic", testPalette, tt.opts).View()
			assert.Contains(t, view, "Create Magic")
			assert.True(t, strings.HasPrefix(view, tt.corner), view)
		})
	}
}

func TestButtonBuilders(t *testing.T) {
	t.Parallel()

	b := NewButton("Back", testPalette, ButtonOptions{}).
		WithVariant(ButtonVariantPrimary).
		WithFocus(true).
		WithDisabled(false)

	assert.Equal(t, ButtonOptions{Variant: ButtonVariantPrimary, Focus: true}, b.options)
}

func TestButtonGroupView(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewButtonGroup().View())

	group := NewButtonGroup(NewButton("A", testPalette, ButtonOptions{})).
		AddButton(NewButton("B", testPalette, ButtonOptions{})).
		WithSpacing(3)

	view := group.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "A")
	assert.Contains(t, lines[1], "B")

	single := lipgloss.Width(NewButton("A", testPalette, ButtonOptions{}).View())
	assert.Equal(t, 2*single+3, lipgloss.Width(view))
}
