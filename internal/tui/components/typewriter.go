package components

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

var lastTypewriterID int64

func nextTypewriterID() int {
	return int(atomic.AddInt64(&lastTypewriterID, 1))
}

// Graphemes splits text into user-perceived characters so combining marks
// stay attached to their base letter.
func Graphemes(text string) []string {
	var out []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func prefix(graphemes []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(graphemes) {
		n = len(graphemes)
	}
	return graphemes[:n]
}

// TypewriterTickMsg advances the typewriter with the matching ID.
type TypewriterTickMsg struct {
	ID  int
	tag int
}

// Typewriter reveals text one grapheme per tick, like a bubbles spinner
// driven by its own tick messages.
type Typewriter struct {
	id        int
	tag       int
	graphemes []string
	shown     int
	speed     time.Duration

	Cursor      string
	CursorStyle lipgloss.Style
}

// NewTypewriter creates a typewriter for text. A non-positive speed shows the
// full text at once and never ticks.
func NewTypewriter(text string, speed time.Duration) Typewriter {
	t := Typewriter{
		id:          nextTypewriterID(),
		graphemes:   Graphemes(text),
		speed:       speed,
		Cursor:      "|",
		CursorStyle: lipgloss.NewStyle().Faint(true),
	}
	if speed <= 0 {
		t.shown = len(t.graphemes)
	}
	return t
}

// ID identifies this typewriter's tick messages.
func (t Typewriter) ID() int {
	return t.id
}

// Text returns the full text being typed.
func (t Typewriter) Text() string {
	return strings.Join(t.graphemes, "")
}

// SetText restarts the typewriter with new text. Ticks scheduled for the old
// text are ignored.
func (t Typewriter) SetText(text string) Typewriter {
	t.graphemes = Graphemes(text)
	t.tag++
	t.shown = 0
	if t.speed <= 0 {
		t.shown = len(t.graphemes)
	}
	return t
}

// Done reports whether every grapheme is visible.
func (t Typewriter) Done() bool {
	return t.shown >= len(t.graphemes)
}

// Visible returns the revealed text without cursor.
func (t Typewriter) Visible() string {
	return strings.Join(prefix(t.graphemes, t.shown), "")
}

// Tick schedules the next reveal.
func (t Typewriter) Tick() tea.Cmd {
	if t.speed <= 0 || t.Done() {
		return nil
	}
	id, tag := t.id, t.tag
	return tea.Tick(t.speed, func(time.Time) tea.Msg {
		return TypewriterTickMsg{ID: id, tag: tag}
	})
}

// Update handles tick messages addressed to this typewriter.
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(TypewriterTickMsg)
	if !ok || tick.ID != t.id || tick.tag != t.tag {
		return t, nil
	}
	if !t.Done() {
		t.shown++
	}
	return t, t.Tick()
}

// View renders the visible text followed by the cursor.
func (t Typewriter) View() string {
	if t.Cursor == "" {
		return t.Visible()
	}
	return t.Visible() + t.CursorStyle.Render(t.Cursor)
}
