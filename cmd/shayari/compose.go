package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/shayari/internal/logger"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	"github.com/alexisbeaulieu97/shayari/internal/session"
	"github.com/alexisbeaulieu97/shayari/internal/tui/components"
)

type composeOptions struct {
	mood  string
	style string
}

func newComposeCmd(flags *rootFlags) *cobra.Command {
	opts := &composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Generate a single poem and print it",
		Example: `  shayari compose --mood "rain on an old city" --style classical
  shayari compose -m "missing home" -s spiritual --endpoint http://localhost:3000/api/poetry`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mood, "mood", "m", "", "Describe your mood")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Poetry style ("+strings.Join(styleKeys(), ", ")+")")

	return cmd
}

func runCompose(cmd *cobra.Command, flags *rootFlags, opts *composeOptions) error {
	style, err := validateComposeOptions(*opts)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     "compose",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	app := newAppContext(cfg, log)

	state := session.New()
	state.SelectTheme(cfg.ThemeKey())
	if err := state.Begin(); err != nil {
		return err
	}
	state.SetMood(opts.mood)
	if style != poetry.StyleUnselected {
		state.SelectStyle(style)
	}

	log.WithFields(map[string]any{
		"style":    string(style),
		"endpoint": app.Generator.Endpoint(),
	}).Debug("composing poem")

	if !state.Submit(cmd.Context(), app.Generator) {
		return errors.New(state.ErrorMessage())
	}

	return printPoem(cmd.OutOrStdout(), state.Poem())
}

// printPoem writes poem to w, right-aligning RTL verses on a terminal.
func printPoem(w io.Writer, poem string) error {
	if width, ok := terminalWidth(w); ok && components.IsRTL(poem) {
		poem = lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(poem)
	}
	_, err := fmt.Fprintln(w, poem)
	return err
}

func terminalWidth(writer any) (int, bool) {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
