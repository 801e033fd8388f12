// ABOUTME: TermBar redraws a Bar in place on a terminal stream with "\r" on every update
// ABOUTME: Width is queried once at construction and optionally refreshed on SIGWINCH

package progress

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/mauromedda/go-output/internal/log"
	"github.com/mauromedda/go-output/pkg/output/terminal"
)

// TermBar is a Bar attached to an output stream. It never writes a
// newline; callers end the line themselves when done.
//
// A TermBar is not safe for concurrent use, except that WatchResize
// may update the width from a signal goroutine.
type TermBar struct {
	bar     *Bar
	w       io.Writer
	columns atomic.Int64
	err     error
}

// NewTermBar creates a bar drawing to w. Nothing is drawn until the
// first Set or Increment. A zero width (w is not a terminal) renders
// empty images.
func NewTermBar(w io.Writer, opts ...Option) (*TermBar, error) {
	size, err := terminal.QuerySize(w)
	if err != nil {
		return nil, fmt.Errorf("querying terminal size: %w", err)
	}
	tb := &TermBar{bar: New(opts...), w: w}
	tb.columns.Store(int64(size.Columns))
	return tb, nil
}

// Bar returns the underlying state. Changing it does not redraw.
func (tb *TermBar) Bar() *Bar { return tb.bar }

// Columns returns the width images are rendered for.
func (tb *TermBar) Columns() int { return int(tb.columns.Load()) }

// SetColumns overrides the width used for the next redraw.
func (tb *TermBar) SetColumns(n int) { tb.columns.Store(int64(n)) }

// Set moves the bar to value and redraws.
func (tb *TermBar) Set(value int64) {
	tb.bar.Set(value)
	tb.redraw()
}

// SetWithMax changes the maximum, moves the bar to value and redraws.
func (tb *TermBar) SetWithMax(value, newMax int64) {
	tb.bar.SetWithMax(value, newMax)
	tb.redraw()
}

// Increment adds n to the value and redraws. For an indeterminate bar
// this advances the marker one step.
func (tb *TermBar) Increment(n int64) {
	tb.bar.Increment(n)
	tb.redraw()
}

// Err returns the first error met while writing to the stream.
func (tb *TermBar) Err() error { return tb.err }

// WatchResize keeps Columns in step with the terminal until stop is called.
func (tb *TermBar) WatchResize() (stop func()) {
	return terminal.NotifyResize(tb.refreshColumns)
}

func (tb *TermBar) refreshColumns() {
	size := terminal.GetSize(tb.w)
	if size.Unknown() {
		return
	}
	tb.columns.Store(int64(size.Columns))
	log.Debug("progress: terminal resized to %d columns", size.Columns)
}

func (tb *TermBar) redraw() {
	image := tb.bar.Render(tb.Columns())
	if err := terminal.WriteString(tb.w, "\r"+image); err != nil {
		log.Debug("progress: write: %v", err)
		if tb.err == nil {
			tb.err = err
		}
	}
}
