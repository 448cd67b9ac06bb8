package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant represents how prominent a button is drawn.
type ButtonVariant int

const (
	ButtonVariantSecondary ButtonVariant = iota
	ButtonVariantPrimary
)

// Palette holds the hex colours a button is painted with.
type Palette struct {
	Fill   string
	Border string
	Text   string
}

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button represents a pressable label
type Button struct {
	label   string
	palette Palette
	options ButtonOptions
}

// NewButton creates a new button with the given label, colours and options
func NewButton(label string, palette Palette, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		palette: palette,
		options: opts,
	}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.label)
}

// buildStyle calculates the button style based on current options
func (b *Button) buildStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245"))

	if b.palette.Text != "" {
		style = style.Foreground(lipgloss.Color(b.palette.Text))
	}
	if b.options.Variant == ButtonVariantPrimary {
		style = style.Bold(true)
		if b.palette.Fill != "" {
			style = style.Background(lipgloss.Color(b.palette.Fill))
		}
	}

	switch {
	case b.options.Disabled:
		style = style.
			BorderStyle(lipgloss.NormalBorder()).
			UnsetBackground().
			Faint(true)
	case b.options.Focus:
		style = style.BorderStyle(lipgloss.ThickBorder())
		if b.palette.Border != "" {
			style = style.BorderForeground(lipgloss.Color(b.palette.Border))
		}
	}

	return style
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 1,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", max(bg.spacing, 0))
	var parts []string
	for i, button := range bg.buttons {
		if i > 0 && spacer != "" {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
