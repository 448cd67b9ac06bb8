package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

func newStylesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available themes and poetry styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCatalogs(cmd)
		},
	}

	return cmd
}

func renderCatalogs(cmd *cobra.Command) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "THEME\tNAME\tCOLOURS")
	for _, key := range poetry.Themes() {
		attrs := poetry.Theme(key)
		fmt.Fprintf(writer, "%s\t%s\t%s %s %s\n", key, attrs.Name, attrs.Primary[0], attrs.Primary[1], attrs.Primary[2])
	}

	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "STYLE\tNAME\tICON")
	for _, key := range poetry.Styles() {
		attrs, _ := poetry.Style(key)
		fmt.Fprintf(writer, "%s\t%s\t%s\n", key, attrs.Name, attrs.Icon)
	}

	return writer.Flush()
}
