// ABOUTME: colors subcommand: lists every color code name drawn in its own color
// ABOUTME: Honours --no-color so the listing doubles as a check of NO_COLOR handling

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mauromedda/go-output/pkg/output/colors"
)

func colorsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List color and attribute names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.quiet {
				return nil
			}
			table := opts.table()
			w := cmd.OutOrStdout()
			for _, name := range colors.Default().Names() {
				if _, err := fmt.Fprintln(w, table.Colorize(name, name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
