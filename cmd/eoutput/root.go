// ABOUTME: Root cobra command with the flags shared by every subcommand
// ABOUTME: --quiet, --no-color (or NO_COLOR), --verbose, and a --columns override

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mauromedda/go-output/internal/log"
	"github.com/mauromedda/go-output/pkg/output/colors"
	"github.com/mauromedda/go-output/pkg/output/eoutput"
)

type rootOptions struct {
	quiet   bool
	noColor bool
	verbose bool
	columns int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "eoutput",
		Short: "Print status lines and progress bars the way functions.sh does",
		Long: `eoutput prints einfo/ewarn/eerror messages, ebegin/eend status
lines with a right-aligned [ ok ] or [ !! ], and wget-style progress bars.

Examples:
  eoutput ebegin "Fetching sources"; fetch; eoutput eend $? --after "Fetching sources"
  seq 1 100 | eoutput progress --max 100 --title Download --label foo.tar.gz
  eoutput run steps.yaml`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.LevelDebug)
			}
		},
	}
	root.SetVersionTemplate("eoutput {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors (also NO_COLOR)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Log terminal detection details to stderr")
	flags.IntVar(&opts.columns, "columns", 0, "Terminal width to align to (default: detected)")

	root.AddCommand(
		messageCmd(opts, "einfo", "Print an informational message", (*eoutput.EOutput).Info),
		messageCmd(opts, "ewarn", "Print a warning on stderr", (*eoutput.EOutput).Warn),
		messageCmd(opts, "eerror", "Print an error on stderr", (*eoutput.EOutput).Error),
		messageCmd(opts, "ebegin", "Start a status line closed by eend", (*eoutput.EOutput).Begin),
		endCmd(opts, "eend", "Close a status line; STATUS != 0 prints MSG as an error", (*eoutput.EOutput).EndMsg),
		endCmd(opts, "ewend", "Close a status line; STATUS != 0 prints MSG as a warning", (*eoutput.EOutput).WarnEndMsg),
		progressCmd(opts),
		runCmd(opts),
		colorsCmd(opts),
	)
	return root
}

func (o *rootOptions) table() *colors.Table {
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		return colors.Monochrome()
	}
	return colors.Default()
}

func (o *rootOptions) newOutput(cmd *cobra.Command) (*eoutput.EOutput, error) {
	out, err := eoutput.New(
		eoutput.WithStdout(cmd.OutOrStdout()),
		eoutput.WithStderr(cmd.ErrOrStderr()),
		eoutput.WithQuiet(o.quiet),
		eoutput.WithTable(o.table()),
		eoutput.WithColumns(o.columns),
	)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return out, nil
}
