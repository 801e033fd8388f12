// ABOUTME: Player runs a Script against one EOutput and one progress stream
// ABOUTME: Sleeps honour context cancellation so a script can be interrupted

package script

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/go-output/internal/log"
	"github.com/mauromedda/go-output/pkg/output/eoutput"
	"github.com/mauromedda/go-output/pkg/output/progress"
	"github.com/mauromedda/go-output/pkg/output/terminal"
)

const progressDescWidth = progress.DefaultDescriptionMaxLength

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Player plays scripts.
type Player struct {
	out      *eoutput.EOutput
	progress io.Writer
	sleep    SleepFunc
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithSleep replaces the wait used by sleep steps and progress
// intervals.
func WithSleep(fn SleepFunc) PlayerOption {
	return func(p *Player) { p.sleep = fn }
}

// NewPlayer returns a Player writing status lines through out and
// progress bars to w.
func NewPlayer(out *eoutput.EOutput, w io.Writer, opts ...PlayerOption) *Player {
	p := &Player{out: out, progress: w, sleep: sleepContext}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play runs every step in order. It stops at the first error or when
// ctx is cancelled.
func (p *Player) Play(ctx context.Context, s *Script) error {
	for i, step := range s.Steps {
		log.Debug("script: step %d: %s", i+1, step.Action)
		err := ctx.Err()
		if err == nil {
			err = p.playStep(ctx, step)
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}
	return nil
}

func (p *Player) playStep(ctx context.Context, step Step) error {
	switch step.Action {
	case ActionBegin:
		p.out.Begin(step.Text)
	case ActionEnd:
		p.out.EndMsg(step.Status, step.Text)
	case ActionWarnEnd:
		p.out.WarnEndMsg(step.Status, step.Text)
	case ActionInfo:
		p.out.Info(step.Text)
	case ActionWarn:
		p.out.Warn(step.Text)
	case ActionError:
		p.out.Error(step.Text)
	case ActionSleep:
		return p.sleep(ctx, step.Sleep)
	case ActionProgress:
		return p.playProgress(ctx, step.Progress)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStep, step.Action)
	}
	return nil
}

func (p *Player) playProgress(ctx context.Context, cfg Progress) error {
	if p.out.LastKind() == eoutput.KindBegin {
		return ErrProgressInBegin
	}
	if p.out.Quiet() {
		return nil
	}
	tb, err := progress.NewTermBar(p.progress,
		progress.WithTitle(cfg.Title),
		progress.WithLabel(cfg.Label),
		progress.WithMax(cfg.Max),
		progress.WithDescriptionMaxLength(cfg.DescWidth),
	)
	if err != nil {
		return err
	}
	stop := tb.WatchResize()
	defer stop()

	if cfg.Max == 0 {
		for range cfg.Frames {
			tb.Increment(1)
			if err := p.sleep(ctx, cfg.Interval); err != nil {
				return err
			}
		}
	} else {
		step := max(cfg.Step, 1)
		for v := int64(0); ; {
			tb.Set(v)
			if v >= cfg.Max {
				break
			}
			if err := p.sleep(ctx, cfg.Interval); err != nil {
				return err
			}
			if v > cfg.Max-step {
				v = cfg.Max
			} else {
				v += step
			}
		}
	}

	if err := terminal.WriteString(p.progress, "\n"); err != nil {
		return fmt.Errorf("end progress line: %w", err)
	}
	return tb.Err()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
