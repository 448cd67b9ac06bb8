package portal

import (
	"context"

	"github.com/alexisbeaulieu97/shayari/internal/clipboard"
	"github.com/alexisbeaulieu97/shayari/internal/generation"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

// PoemService exposes the single operation the portal needs from the poem
// backend.
type PoemService interface {
	Generate(ctx context.Context, req poetry.Request) (string, error)
}

var (
	_ PoemService      = (*generation.Client)(nil)
	_ clipboard.Writer = clipboard.System{}
)
