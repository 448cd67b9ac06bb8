package portal

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/shayari/internal/clipboard"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

const (
	statusDuration = 2 * time.Second
	animationFrame = 150 * time.Millisecond
)

// generateCmd asks the service for a poem asynchronously.
func generateCmd(ctx context.Context, svc PoemService, req poetry.Request) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return PoemFailedMsg{Request: req, Err: errNoService}
		}

		poem, err := svc.Generate(ctx, req)
		if err != nil {
			return PoemFailedMsg{Request: req, Err: err}
		}
		return PoemGeneratedMsg{Request: req, Poem: poem}
	}
}

// copyCmd writes text to the clipboard.
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		if w == nil {
			return CopyFailedMsg{Err: errNoClipboard}
		}
		if err := w.WriteText(text); err != nil {
			return CopyFailedMsg{Err: err}
		}
		return CopiedMsg{}
	}
}

// clearStatusCmd hides the status line with sequence seq after a delay.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func animationTickCmd() tea.Cmd {
	return tea.Tick(animationFrame, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}
