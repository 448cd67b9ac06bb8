package portal

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	"github.com/alexisbeaulieu97/shayari/internal/tui/components"
)

const maxPoemWidth = 64

// View renders the current page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	var keys help.KeyMap
	switch m.state.Page() {
	case poetry.PageJourney:
		body, keys = m.renderJourney(), m.keys.journey()
	case poetry.PageEnchantment:
		body, keys = m.renderEnchantment(), m.keys.enchantment()
	default:
		body, keys = m.renderPortal(), m.keys.portal()
	}

	content := lipgloss.JoinVertical(lipgloss.Center, body, helpStyle.Render(m.help.View(keys)))
	if m.width == 0 || m.height == 0 {
		return content
	}
	if !m.animate {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return m.field.Compose(m.width, m.height, content)
}

func (m Model) renderTitle() string {
	text := m.title.Visible()
	if !m.title.Done() {
		return m.styles.title(text) + m.title.CursorStyle.Render(m.title.Cursor)
	}
	return m.styles.title(text)
}

func (m Model) renderPortal() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.styles.tagline.Render(portalTagline))
	b.WriteString("\n")

	themes := components.NewButtonGroup()
	for _, key := range poetry.Themes() {
		active := key == m.state.Theme()
		themes.AddButton(m.styles.button(poetry.Theme(key).Name, components.ButtonVariantSecondary).
			WithFocus(active))
	}
	b.WriteString(themes.View())
	b.WriteString("\n\n")

	sparkle := components.Gradient("✦ ✧ ✦", m.styles.theme.Primary[0], m.styles.theme.Primary[2])
	b.WriteString(sparkle)
	b.WriteString("\n")
	b.WriteString(m.styles.button("Begin Magical Journey →", components.ButtonVariantPrimary).WithFocus(true).View())

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m Model) renderJourney() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(m.styles.input.Render(m.mood.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderStyles())
	b.WriteString("\n")

	if msg := m.state.ErrorMessage(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	loading := m.state.IsLoading()
	create := "✨ Create Magic"
	if loading {
		create = m.spinner.View() + " Creating magic..."
	}
	b.WriteString(components.NewButtonGroup(
		m.styles.button("Back", components.ButtonVariantSecondary),
		m.styles.button(create, components.ButtonVariantPrimary).WithFocus(!loading).WithDisabled(loading),
	).View())

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m Model) renderStyles() string {
	keys := poetry.Styles()
	split := (len(keys) + 1) / 2

	// Two rows fit an 80 column terminal.
	rows := []*components.ButtonGroup{components.NewButtonGroup(), components.NewButtonGroup()}
	for i, key := range keys {
		attrs, _ := poetry.Style(key)
		selected := key == m.state.Style()
		variant := components.ButtonVariantSecondary
		if selected {
			variant = components.ButtonVariantPrimary
		}
		rows[i/split].AddButton(m.styles.button(attrs.Icon+" "+attrs.Name, variant).WithFocus(selected))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows[0].View(), rows[1].View())
}

func (m Model) renderEnchantment() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	if !m.state.HasPoem() {
		b.WriteString(components.MagicCircle(m.frame, m.styles.theme.Primary))
		b.WriteString("\n")
		b.WriteString(m.styles.circleCaption.Render("Weaving your verses..."))
		return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	}

	b.WriteString(m.renderPoem())
	b.WriteString("\n")
	b.WriteString(components.NewButtonGroup(
		m.styles.button("Copy Poetry", components.ButtonVariantPrimary).WithFocus(true),
		m.styles.button("Create Another", components.ButtonVariantSecondary),
	).View())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}

func (m Model) renderPoem() string {
	poem := m.state.Poem()
	width := min(maxPoemWidth, lipgloss.Width(poem))
	if m.width > 0 {
		width = min(width, max(m.width-12, 1))
	}

	align := lipgloss.Left
	if components.IsRTL(poem) {
		align = lipgloss.Right
	}

	text := m.verse.Visible()
	if !m.verse.Done() {
		text += m.verse.CursorStyle.Render(m.verse.Cursor)
	}

	inner := m.styles.poem.Width(width + 4).Align(align).Render(text)

	// Top, right, bottom and left borders walk the theme gradient.
	p := m.styles.theme.Primary
	var sides []lipgloss.TerminalColor
	for _, c := range components.GradientColors(4, p[0], p[1], p[2]) {
		sides = append(sides, c)
	}
	return m.styles.card.BorderForeground(sides...).Render(inner)
}
