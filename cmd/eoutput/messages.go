// ABOUTME: einfo/ewarn/eerror/ebegin and eend/ewend subcommands
// ABOUTME: eend and ewend exit with STATUS so they can end a shell pipeline

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/go-output/pkg/output/eoutput"
)

func messageCmd(opts *rootOptions, name, short string, emit func(*eoutput.EOutput, string)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [MSG...]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.newOutput(cmd)
			if err != nil {
				return err
			}
			emit(out, strings.Join(args, " "))
			return nil
		},
	}
}

func endCmd(opts *rootOptions, name, short string, end func(*eoutput.EOutput, int, string)) *cobra.Command {
	var after string

	cmd := &cobra.Command{
		Use:   name + " STATUS [MSG...]",
		Short: short,
		Long: short + `.

Each eoutput invocation is a separate process, so the bracket cannot know
how long the ebegin line was. Pass the same message with --after to align
the bracket with it; without --after the bracket goes on its own line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid status %q: %w", args[0], err)
			}
			out, err := opts.newOutput(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("after") {
				// Replay the begin silently so End measures the open line.
				quiet := out.Quiet()
				out.SetQuiet(true)
				out.Begin(after)
				out.SetQuiet(quiet)
			}
			end(out, status, strings.Join(args[1:], " "))

			if status != 0 {
				return &exitError{code: status}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&after, "after", "", "Message of the ebegin line being closed")
	return cmd
}
