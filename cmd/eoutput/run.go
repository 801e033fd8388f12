// ABOUTME: run subcommand: plays a YAML step script through one status renderer
// ABOUTME: Interrupts cancel the script between steps and during sleeps

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mauromedda/go-output/internal/script"
)

func runCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE.yaml",
		Short: "Play a script of status and progress steps",
		Long: `Play a YAML script. Every step has exactly one action:

  steps:
    - begin: Fetching sources
    - sleep: 200ms
    - end: 0
    - ewend: 1
      msg: checksum mismatch
    - info: text
    - warn: text
    - error: text
    - progress: {title: Download, label: foo.tar.gz, max: 200, step: 20, interval: 10ms}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.LoadFile(args[0])
			if err != nil {
				return err
			}
			out, err := opts.newOutput(cmd)
			if err != nil {
				return err
			}

			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return script.NewPlayer(out, cmd.OutOrStdout()).Play(ctx, s)
		},
	}
}
