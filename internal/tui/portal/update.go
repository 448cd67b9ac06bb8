package portal

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	"github.com/alexisbeaulieu97/shayari/internal/tui/components"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.state.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case components.TypewriterTickMsg:
		var titleCmd, verseCmd tea.Cmd
		m.title, titleCmd = m.title.Update(msg)
		m.verse, verseCmd = m.verse.Update(msg)
		return m, tea.Batch(titleCmd, verseCmd)

	case animationTickMsg:
		if !m.animate {
			return m, nil
		}
		m.field = m.field.Step()
		m.frame++
		return m, animationTickCmd()

	case PoemGeneratedMsg:
		m.log.WithFields(map[string]any{
			"style": string(msg.Request.Style),
			"chars": len([]rune(msg.Poem)),
		}).Info("poem generated")
		before := m.state.Page()
		m.state.Complete(poetry.Succeeded(msg.Poem))
		if m.state.Page() == before {
			// The user left the journey page while waiting; the poem is kept.
			return m, nil
		}
		return m, m.enterPage()

	case PoemFailedMsg:
		m.log.With("style", string(msg.Request.Style)).Error(msg.Err, "poem generation failed")
		m.state.Complete(poetry.Failed(msg.Err))
		return m, nil

	case CopiedMsg:
		m.statusSeq++
		m.status = copiedStatus
		return m, clearStatusCmd(m.statusSeq)

	case CopyFailedMsg:
		m.log.Error(msg.Err, "copy poem to clipboard")
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	if m.state.Page() == poetry.PageJourney {
		var cmd tea.Cmd
		m.mood, cmd = m.mood.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input for the current page.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch m.state.Page() {
	case poetry.PagePortal:
		return m.handlePortalKeys(msg)
	case poetry.PageJourney:
		return m.handleJourneyKeys(msg)
	case poetry.PageEnchantment:
		return m.handleEnchantmentKeys(msg)
	}
	return m, nil
}

func (m Model) handlePortalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitSoft):
		return m.quit()

	case key.Matches(msg, m.keys.PrevTheme):
		m.state.SelectTheme(cycle(poetry.Themes(), m.state.Theme(), -1))
		m.applyTheme()

	case key.Matches(msg, m.keys.NextTheme):
		m.state.SelectTheme(cycle(poetry.Themes(), m.state.Theme(), 1))
		m.applyTheme()

	case key.Matches(msg, m.keys.Begin):
		if err := m.state.Begin(); err != nil {
			m.log.Error(err, "begin journey")
			return m, nil
		}
		return m, m.enterPage()

	default:
		if theme, ok := pick(poetry.Themes(), msg.String()); ok {
			m.state.SelectTheme(theme)
			m.applyTheme()
		}
	}
	return m, nil
}

func (m Model) handleJourneyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		if err := m.state.Back(); err != nil {
			m.log.Error(err, "return to portal")
			return m, nil
		}
		return m, m.enterPage()

	case key.Matches(msg, m.keys.NextStyle):
		m.state.SelectStyle(cycle(poetry.Styles(), m.state.Style(), 1))
		return m, nil

	case key.Matches(msg, m.keys.PrevStyle):
		m.state.SelectStyle(cycle(poetry.Styles(), m.state.Style(), -1))
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	if msg.Alt && len(msg.Runes) == 1 {
		if style, ok := pick(poetry.Styles(), string(msg.Runes)); ok {
			m.state.SelectStyle(style)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.mood, cmd = m.mood.Update(msg)
	m.state.SetMood(m.mood.Value())
	return m, cmd
}

func (m Model) handleEnchantmentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitSoft):
		return m.quit()

	case key.Matches(msg, m.keys.Copy):
		if !m.state.HasPoem() {
			return m, nil
		}
		return m, copyCmd(m.clip, m.state.Poem())

	case key.Matches(msg, m.keys.Again):
		if err := m.state.Restart(); err != nil {
			m.log.Error(err, "restart journey")
			return m, nil
		}
		return m, m.enterPage()
	}
	return m, nil
}

// submit starts generation when the session accepts the request.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, ok := m.state.Prepare()
	if !ok {
		return m, nil
	}

	m.log.With("style", string(req.Style)).Debug("submitting poem request")
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.service, req))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// cycle steps through keys from current by delta, wrapping at both ends. A
// current value outside keys starts from the first key going forward and the
// last key going backward.
func cycle[K comparable](keys []K, current K, delta int) K {
	idx := -1
	for i, k := range keys {
		if k == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return keys[len(keys)-1]
		}
		return keys[0]
	}
	n := len(keys)
	return keys[((idx+delta)%n+n)%n]
}

// pick maps the digit keys "1".."n" onto keys.
func pick[K any](keys []K, s string) (K, bool) {
	var zero K
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return zero, false
	}
	i := int(s[0] - '1')
	if i >= len(keys) {
		return zero, false
	}
	return keys[i], true
}
