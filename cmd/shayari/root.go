package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shayari/internal/config"
)

type rootFlags struct {
	configPath  string
	endpoint    string
	theme       string
	logLevel    string
	verbose     bool
	noAnimation bool
}

// overrides converts the persistent flags into the last configuration layer.
func (f *rootFlags) overrides() config.Overrides {
	level := f.logLevel
	if f.verbose && level == "" {
		level = "debug"
	}
	return config.Overrides{
		Endpoint:    f.endpoint,
		Theme:       f.theme,
		LogLevel:    level,
		NoAnimation: f.noAnimation,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shayari",
		Short:         "Shayari conjures Urdu poetry from your mood",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the portal
			return runPortal(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the config file (default "+config.DefaultPath()+")")
	pf.StringVar(&flags.endpoint, "endpoint", "", "Poem generation endpoint URL")
	pf.StringVar(&flags.theme, "theme", "", "Portal theme (mystical, sunset, moonlight)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&flags.noAnimation, "no-animation", false, "Disable typewriter and floating glyph animation")

	cmd.AddCommand(newPortalCmd(flags))
	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
