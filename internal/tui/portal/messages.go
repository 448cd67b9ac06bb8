package portal

import (
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

// Generation Messages

// PoemGeneratedMsg carries a poem returned by the service.
type PoemGeneratedMsg struct {
	Request poetry.Request
	Poem    string
}

// PoemFailedMsg indicates generation failed.
type PoemFailedMsg struct {
	Request poetry.Request
	Err     error
}

// Clipboard Messages

// CopiedMsg indicates the poem reached the clipboard.
type CopiedMsg struct{}

// CopyFailedMsg indicates the clipboard write failed. It is logged only.
type CopyFailedMsg struct {
	Err error
}

// clearStatusMsg removes the transient status line.
type clearStatusMsg struct {
	seq int
}

// animationTickMsg advances floating glyphs and the magic circle.
type animationTickMsg struct{}
