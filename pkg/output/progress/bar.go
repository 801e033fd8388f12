// ABOUTME: wget-style progress bar state and image rendering, independent of any stream
// ABOUTME: Determinate "[===>   ]" when max > 0, a bouncing "<=>" marker when max == 0

package progress

import (
	"fmt"
	"math/bits"

	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/go-output/pkg/output/width"
)

// DefaultDescriptionMaxLength is the number of columns reserved for
// "<title>: <label>" when either is set.
const DefaultDescriptionMaxLength = 25

const (
	maxColumns    = 80
	minColumns    = 11
	percentWidth  = 5
	bracketsWidth = 2
)

// Bar holds the state of one progress line. The zero value is not
// usable; create bars with New.
type Bar struct {
	title   string
	label   string
	desc    string
	descMax int

	current int64
	max     int64

	// position of the indeterminate marker, in [0, 1].
	position float64
}

// Option configures a Bar.
type Option func(*Bar)

// WithTitle sets the title shown before the label.
func WithTitle(title string) Option {
	return func(b *Bar) { b.title = title }
}

// WithLabel sets the label.
func WithLabel(label string) Option {
	return func(b *Bar) { b.label = label }
}

// WithMax sets the maximum value. Zero makes the bar indeterminate.
func WithMax(n int64) Option {
	return func(b *Bar) { b.max = n }
}

// WithDescriptionMaxLength sets the width reserved for the description.
func WithDescriptionMaxLength(n int) Option {
	return func(b *Bar) { b.descMax = n }
}

// New returns a bar at value 0.
func New(opts ...Option) *Bar {
	b := &Bar{descMax: DefaultDescriptionMaxLength}
	for _, opt := range opts {
		opt(b)
	}
	b.max = max(b.max, 0)
	b.descMax = max(b.descMax, 0)
	b.updateDesc()
	return b
}

// Configure replaces title, label and description width at once.
func (b *Bar) Configure(title, label string, descMax int) {
	b.title = title
	b.label = label
	b.descMax = max(descMax, 0)
	b.updateDesc()
}

// SetTitle replaces the title.
func (b *Bar) SetTitle(title string) {
	b.title = title
	b.updateDesc()
}

// SetLabel replaces the label.
func (b *Bar) SetLabel(label string) {
	b.label = label
	b.updateDesc()
}

func (b *Bar) updateDesc() {
	var d string
	if b.title != "" {
		d = b.title + ": "
	}
	d = norm.NFC.String(d + b.label)
	d = width.Truncate(d, b.descMax, "...")
	if d != "" {
		d = width.PadRight(d, b.descMax)
	}
	b.desc = d
}

// Description returns the padded or truncated "<title>: <label>" text.
func (b *Bar) Description() string { return b.desc }

// Current returns the current value.
func (b *Bar) Current() int64 { return b.current }

// Max returns the maximum value.
func (b *Bar) Max() int64 { return b.max }

// Indeterminate reports whether the bar has no known end.
func (b *Bar) Indeterminate() bool { return b.max == 0 }

// Set moves the bar to value, clamped to [0, Max()].
func (b *Bar) Set(value int64) {
	b.current = min(max(value, 0), b.max)
}

// SetWithMax changes the maximum, then sets value. A negative max is
// treated as 0.
func (b *Bar) SetWithMax(value, newMax int64) {
	b.max = max(newMax, 0)
	b.Set(value)
}

// Increment adds n, which may be negative, to the current value.
func (b *Bar) Increment(n int64) {
	b.Set(b.current + n)
}

// Render returns the bar image for a terminal columns wide. Widths
// above 80 are treated as 80. In indeterminate mode every call moves
// the marker one step.
func (b *Bar) Render(columns int) string {
	cols := min(columns, maxColumns)
	if cols < percentWidth {
		return ""
	}
	barSpace := cols - percentWidth - bracketsWidth - 1
	if b.desc != "" {
		barSpace -= b.descMax
	}
	if b.max == 0 {
		return b.renderIndeterminate(cols, barSpace)
	}
	return b.renderDeterminate(cols, barSpace)
}

func (b *Bar) renderDeterminate(cols, barSpace int) string {
	percentage := scale(b.current, 100, b.max)
	image := b.desc + fmt.Sprintf("%*s", percentWidth, fmt.Sprintf("%d%% ", percentage))
	if cols < minColumns {
		return image
	}

	maxBarWidth := barSpace - 1
	if maxBarWidth < 0 {
		return ""
	}
	filled := int(scale(b.current, int64(maxBarWidth), b.max))
	return image + "[" + width.Repeat("=", filled) + ">" + width.Spaces(maxBarWidth-filled) + "]"
}

// scale returns floor(v*n/d) for 0 <= v <= d and n >= 0, exact over
// the whole int64 range.
func scale(v, n, d int64) int64 {
	hi, lo := bits.Mul64(uint64(v), uint64(n))
	q, _ := bits.Div64(hi, lo, uint64(d))
	return int64(q)
}

func (b *Bar) renderIndeterminate(cols, barSpace int) string {
	if cols < minColumns {
		return ""
	}
	maxBarWidth := barSpace - 3
	if maxBarWidth <= 0 {
		return ""
	}

	pos := b.position
	var offset float64
	if pos <= 0.5 {
		offset = 2 * pos
	} else {
		offset = 2 * (1 - pos)
	}

	// Advance, wrapping at 1 and snapping onto 0.5 and 1 so the
	// marker touches both ends.
	delta := 0.5 / float64(maxBarWidth)
	pos += delta
	if pos >= 1.0 {
		pos = 0.0
	}
	if 1.0-pos < delta {
		pos = 1.0
	}
	if pos < 0.5 && 0.5-pos < delta {
		pos = 0.5
	}
	b.position = pos

	filled := int(offset * float64(maxBarWidth))
	return b.desc + width.Spaces(percentWidth) +
		"[" + width.Spaces(filled) + "<=>" + width.Spaces(maxBarWidth-filled) + "]"
}
