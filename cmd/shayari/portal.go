package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shayari/internal/clipboard"
	"github.com/alexisbeaulieu97/shayari/internal/config"
	"github.com/alexisbeaulieu97/shayari/internal/logger"
	"github.com/alexisbeaulieu97/shayari/internal/tui/portal"
)

func newPortalCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Open the interactive poetry portal",
		Long: `Open the interactive poetry portal: pick a theme, describe your mood,
choose a style and watch your verses appear.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPortal(cmd, flags)
		},
	}

	return cmd
}

func runPortal(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log, err := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Writer:    logFile,
		Component: "portal",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	app := newAppContext(cfg, log)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := portal.NewModel(portal.Options{
		Service:         app.Generator,
		Clipboard:       clipboard.System{},
		Logger:          log,
		Context:         ctx,
		Theme:           cfg.ThemeKey(),
		Animate:         cfg.Animation.Enabled,
		TypewriterSpeed: cfg.Animation.TypewriterSpeed,
	})

	log.WithFields(map[string]any{
		"endpoint": app.Generator.Endpoint(),
		"theme":    string(cfg.ThemeKey()),
	}).Info("launching portal")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "portal execution failed")
		return fmt.Errorf("failed to run portal: %w", err)
	}

	log.Info("portal closed")
	return nil
}
