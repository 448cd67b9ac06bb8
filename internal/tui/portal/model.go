package portal

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shayari/internal/clipboard"
	"github.com/alexisbeaulieu97/shayari/internal/logger"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	"github.com/alexisbeaulieu97/shayari/internal/session"
	"github.com/alexisbeaulieu97/shayari/internal/tui/components"
)

const (
	portalTitle      = "✨ Urdu Poetry Portal ✨"
	portalTagline    = "Step into a world of magical verses"
	journeyTitle     = "Choose Your Path"
	enchantmentTitle = "Your Enchanted Verses"
	moodPlaceholder  = "Describe your mood..."
	copiedStatus     = "Poetry copied to clipboard!"
)

var (
	errNoService   = errors.New("no poem service configured")
	errNoClipboard = errors.New("no clipboard configured")
)

// Options configures a portal Model.
type Options struct {
	Service   PoemService
	Clipboard clipboard.Writer
	Logger    *logger.Logger
	Context   context.Context

	// Theme preselects the portal theme. Unknown keys fall back to the default.
	Theme poetry.ThemeKey

	// Animate enables the typewriter effect and floating glyphs.
	Animate bool

	// TypewriterSpeed is the base delay per character for titles.
	TypewriterSpeed time.Duration

	// Rand seeds glyph placement. Nil uses a time-based source.
	Rand *rand.Rand
}

// Model is the Bubble Tea model for the poetry portal.
type Model struct {
	state   session.State
	service PoemService
	clip    clipboard.Writer
	log     *logger.Logger
	ctx     context.Context

	keys    keyMap
	help    help.Model
	mood    textinput.Model
	spinner spinner.Model
	styles  styles

	title components.Typewriter
	verse components.Typewriter
	field components.Field
	frame int

	animate bool
	speed   time.Duration

	status    string
	statusSeq int

	width    int
	height   int
	quitting bool
}

// NewModel creates the portal model on the portal page.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	speed := opts.TypewriterSpeed
	if speed <= 0 {
		speed = 50 * time.Millisecond
	}

	state := session.New()
	if poetry.IsTheme(string(opts.Theme)) {
		state.SelectTheme(opts.Theme)
	}

	mood := textinput.New()
	mood.Placeholder = moodPlaceholder
	mood.Width = 48

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		state:   state,
		service: opts.Service,
		clip:    opts.Clipboard,
		log:     log.With("component", "tui"),
		ctx:     ctx,
		keys:    defaultKeyMap(),
		help:    help.New(),
		mood:    mood,
		spinner: s,
		animate: opts.Animate,
		speed:   speed,
	}
	m.verse = components.NewTypewriter("", m.typewriterSpeed(7, 5))
	if m.animate {
		m.field = components.NewField(rng, components.DefaultFieldSize)
	}
	m.applyTheme()
	m.enterPage()
	return m
}

// Init starts the title typewriter and the glyph animation.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.title.Tick()}
	if m.animate {
		cmds = append(cmds, animationTickCmd())
	}
	return tea.Batch(cmds...)
}

// State exposes the session state for inspection.
func (m Model) State() session.State {
	return m.state
}

// typewriterSpeed scales the base speed; animation off reveals text at once.
func (m Model) typewriterSpeed(num, den int) time.Duration {
	if !m.animate {
		return 0
	}
	return m.speed * time.Duration(num) / time.Duration(den)
}

// enterPage resets the per-page widgets after a page change and returns the
// commands that animate them.
func (m *Model) enterPage() tea.Cmd {
	var cmds []tea.Cmd
	switch m.state.Page() {
	case poetry.PagePortal:
		m.title = components.NewTypewriter(portalTitle, m.typewriterSpeed(1, 1))
		m.mood.Blur()
	case poetry.PageJourney:
		m.title = components.NewTypewriter(journeyTitle, m.typewriterSpeed(1, 1))
		m.mood.SetValue(m.state.Mood())
		m.mood.CursorEnd()
		cmds = append(cmds, m.mood.Focus())
	case poetry.PageEnchantment:
		m.title = components.NewTypewriter(enchantmentTitle, m.typewriterSpeed(2, 1))
		m.verse = m.verse.SetText(m.state.Poem())
		m.mood.Blur()
		cmds = append(cmds, m.verse.Tick())
	}
	m.status = ""
	cmds = append(cmds, m.title.Tick())
	return tea.Batch(cmds...)
}

func (m *Model) applyTheme() {
	m.styles = newStyles(m.state.ThemeAttributes())
	m.spinner.Style = m.styles.spinner
}
