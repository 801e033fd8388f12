// ABOUTME: progress subcommand: draws a bar driven by lines read from stdin
// ABOUTME: The renderer runs in an errgroup fed by a detachable stdin reader; indeterminate bars spin on a ticker

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/go-output/internal/log"
	"github.com/mauromedda/go-output/pkg/output/progress"
	"github.com/mauromedda/go-output/pkg/output/terminal"
)

type progressOptions struct {
	title     string
	label     string
	max       int64
	descWidth int
	absolute  bool
	interval  time.Duration
	columns   int
}

func progressCmd(root *rootOptions) *cobra.Command {
	var opts progressOptions

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Draw a progress bar fed by stdin",
		Long: `Draw a progress bar on stdout. Every line read from stdin advances
the bar by one, or sets it to the line's value with --absolute.

With --max 0 the bar is indeterminate: a marker bounces on every line and
on every --interval tick until stdin is closed.

Examples:
  seq 1 50 | eoutput progress --max 50 --absolute
  find / -name '*.conf' | eoutput progress --label scanning`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.quiet {
				_, err := io.Copy(io.Discard, cmd.InOrStdin())
				return err
			}
			opts.columns = root.columns
			return runProgress(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Title shown before the label")
	cmd.Flags().StringVar(&opts.label, "label", "", "Label shown after the title")
	cmd.Flags().Int64Var(&opts.max, "max", 0, "Maximum value; 0 for an indeterminate bar")
	cmd.Flags().IntVar(&opts.descWidth, "desc-width", progress.DefaultDescriptionMaxLength, "Columns reserved for title and label")
	cmd.Flags().BoolVar(&opts.absolute, "absolute", false, "Treat each line as the current value")
	cmd.Flags().DurationVar(&opts.interval, "interval", 100*time.Millisecond, "Redraw period of an indeterminate bar; 0 disables")

	return cmd
}

func runProgress(ctx context.Context, in io.Reader, w io.Writer, opts progressOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	tb, err := progress.NewTermBar(w,
		progress.WithTitle(opts.title),
		progress.WithLabel(opts.label),
		progress.WithMax(opts.max),
		progress.WithDescriptionMaxLength(opts.descWidth),
	)
	if err != nil {
		return err
	}
	if opts.columns > 0 {
		tb.SetColumns(opts.columns)
	} else {
		stop := tb.WatchResize()
		defer stop()
	}

	g, gctx := errgroup.WithContext(ctx)

	// The reader is not part of the group: a blocked Scan must not keep
	// a failed renderer from returning.
	lines := readLines(gctx, in)

	g.Go(func() error {
		var tick <-chan time.Time
		if tb.Bar().Indeterminate() && opts.interval > 0 {
			t := time.NewTicker(opts.interval)
			defer t.Stop()
			tick = t.C
		}

		tb.Set(0)
		for {
			if err := tb.Err(); err != nil {
				return fmt.Errorf("draw progress: %w", err)
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-tick:
				tb.Increment(1)
			case l, ok := <-lines:
				if !ok {
					return nil
				}
				if l.err != nil {
					return l.err
				}
				if err := advance(tb, l.text, opts.absolute); err != nil {
					return err
				}
			}
		}
	})

	err = g.Wait()
	if werr := terminal.WriteString(w, "\n"); err == nil {
		err = werr
	}
	if err == nil {
		err = tb.Err()
	}
	return err
}

type inputLine struct {
	text string
	err  error
}

// readLines scans in on its own goroutine until EOF or until ctx is
// done and a line is waiting to be delivered.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- inputLine{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case lines <- inputLine{err: fmt.Errorf("read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()
	return lines
}

func advance(tb *progress.TermBar, line string, absolute bool) error {
	if !absolute {
		tb.Increment(1)
		return nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid progress value %q: %w", line, err)
	}
	log.Debug("progress: value %d", v)
	tb.Set(v)
	return nil
}
