package session

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

// Generator produces a poem for a request.
type Generator interface {
	Generate(ctx context.Context, req poetry.Request) (string, error)
}

// State is the in-memory state of one interactive session. The zero value is
// not ready for use; call New.
type State struct {
	page      poetry.Page
	theme     poetry.ThemeKey
	mood      string
	style     poetry.StyleKey
	poem      string
	isLoading bool
	err       string
}

// New returns a session on the portal page with the default theme.
func New() State {
	return State{
		page:  poetry.PagePortal,
		theme: poetry.DefaultTheme,
		style: poetry.StyleUnselected,
	}
}

// Page returns the current page.
func (s State) Page() poetry.Page {
	return s.page
}

// Theme returns the selected theme.
func (s State) Theme() poetry.ThemeKey {
	return s.theme
}

// ThemeAttributes returns the display record of the selected theme.
func (s State) ThemeAttributes() poetry.ThemeAttributes {
	return poetry.Theme(s.theme)
}

// Mood returns the mood text exactly as entered.
func (s State) Mood() string {
	return s.mood
}

// Style returns the selected style, or poetry.StyleUnselected.
func (s State) Style() poetry.StyleKey {
	return s.style
}

// StyleSelected reports whether a style has been chosen.
func (s State) StyleSelected() bool {
	return s.style != poetry.StyleUnselected
}

// Poem returns the last generated poem, empty when none.
func (s State) Poem() string {
	return s.poem
}

// HasPoem reports whether a poem is present.
func (s State) HasPoem() bool {
	return s.poem != ""
}

// IsLoading reports whether a generation request is outstanding.
func (s State) IsLoading() bool {
	return s.isLoading
}

// ErrorMessage returns the message to show the user, empty when none.
func (s State) ErrorMessage() string {
	return s.err
}

// Request builds a generation request from the current input.
func (s State) Request() poetry.Request {
	return poetry.Request{Mood: s.mood, Style: s.style}
}

// SelectTheme sets the theme without validation.
func (s *State) SelectTheme(key poetry.ThemeKey) {
	s.theme = key
}

// GoToPage sets the current page unconditionally.
func (s *State) GoToPage(page poetry.Page) {
	s.page = page
}

// Begin moves from the portal to the journey page.
func (s *State) Begin() error {
	return s.apply(ActionBegin)
}

// Back returns from the journey page to the portal.
func (s *State) Back() error {
	return s.apply(ActionBack)
}

// Restart returns to the journey page keeping mood, style and poem so the
// user can regenerate.
func (s *State) Restart() error {
	return s.apply(ActionRestart)
}

// apply moves to the page Next allows for action. An invalid action leaves
// the page unchanged.
func (s *State) apply(action Action) error {
	page, err := Next(s.page, action)
	if err != nil {
		return err
	}
	s.page = page
	return nil
}

// SetMood stores text verbatim.
func (s *State) SetMood(text string) {
	s.mood = text
}

// SelectStyle stores the chosen style.
func (s *State) SelectStyle(key poetry.StyleKey) {
	s.style = key
}

// Prepare validates the current input and, when it passes, marks a request as
// in flight. It returns false without touching the network-facing fields when
// a request is already outstanding, and false with the error message set when
// validation fails. Mood is checked before style.
func (s *State) Prepare() (poetry.Request, bool) {
	if s.isLoading {
		return poetry.Request{}, false
	}

	req := s.Request()
	if err := req.Validate(); err != nil {
		s.err = userMessage(err)
		return poetry.Request{}, false
	}

	s.err = ""
	s.isLoading = true
	return req, true
}

// Complete applies the outcome of the request started by Prepare. On success
// the poem is stored and the page moves from journey to enchantment; a
// success that lands after the user left the journey page keeps the poem
// without changing page. On failure the page and any previous poem are left
// alone.
func (s *State) Complete(result poetry.Result) {
	defer func() { s.isLoading = false }()

	if !result.OK() {
		s.err = userMessage(result.Err)
		return
	}

	s.poem = result.Poem
	s.err = ""
	_ = s.apply(ActionSucceed)
}

// Submit runs a full generation cycle synchronously. IsLoading is reset even
// if the generator panics.
func (s *State) Submit(ctx context.Context, gen Generator) bool {
	req, ok := s.Prepare()
	if !ok {
		return false
	}

	defer func() { s.isLoading = false }()

	poem, err := gen.Generate(ctx, req)
	if err != nil {
		s.Complete(poetry.Failed(err))
	} else {
		s.Complete(poetry.Succeeded(poem))
	}

	return s.err == ""
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}

	var requestErr *apperrors.RequestError
	if errors.As(err, &requestErr) && requestErr.Message != "" {
		return requestErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return poetry.MsgGenerationFailed
}
