// ABOUTME: Table resolves color and style names to escape sequences and wraps text with them
// ABOUTME: Tables are immutable after construction and safe to share between renderers

package colors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownCode is returned by Table.Color for names missing from the table.
var ErrUnknownCode = errors.New("unknown color code")

// Table maps attribute names to escape codes and semantic style names
// to ordered lists of attribute names.
type Table struct {
	codes  map[string]string
	styles map[string][]string
}

var standard = &Table{codes: standardCodes(), styles: standardStyles()}

var monochrome = &Table{codes: map[string]string{}, styles: map[string][]string{}}

// Default returns the standard table. The same pointer is returned on
// every call.
func Default() *Table {
	return standard
}

// Monochrome returns a table with no entries: Colorize returns text unchanged.
func Monochrome() *Table {
	return monochrome
}

// NewTable builds a table from copies of codes and styles.
func NewTable(codes map[string]string, styles map[string][]string) *Table {
	t := &Table{
		codes:  maps.Clone(codes),
		styles: make(map[string][]string, len(styles)),
	}
	if t.codes == nil {
		t.codes = map[string]string{}
	}
	for name, attrs := range styles {
		t.styles[name] = slices.Clone(attrs)
	}
	return t
}

// Code returns the escape sequence registered under name.
func (t *Table) Code(name string) (string, bool) {
	c, ok := t.codes[name]
	return c, ok
}

// Names returns every code name, sorted.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.codes))
}

// StyleCode concatenates the codes of the style's attributes. An
// attribute that is not a known code name is used verbatim, so styles
// may embed raw sequences.
func (t *Table) StyleCode(style string) (string, bool) {
	attrs, ok := t.styles[style]
	if !ok {
		return "", false
	}
	var b strings.Builder
	for _, attr := range attrs {
		if c, ok := t.codes[attr]; ok {
			b.WriteString(c)
		} else {
			b.WriteString(attr)
		}
	}
	return b.String(), true
}

// Colorize wraps text in the sequence for key followed by the reset
// code. key may be a code name or a style name; codes win when a name
// is both. Unknown keys return text untouched.
func (t *Table) Colorize(key, text string) string {
	if c, ok := t.codes[key]; ok {
		return c + text + t.reset()
	}
	if c, ok := t.StyleCode(key); ok {
		return c + text + t.reset()
	}
	return text
}

// Color composes a foreground, a background and attributes into one
// sequence. An empty bg means "bg_default"; no attrs means "normal".
func (t *Table) Color(fg, bg string, attrs ...string) (string, error) {
	if bg == "" {
		bg = "bg_default"
	}
	if len(attrs) == 0 {
		attrs = []string{"normal"}
	}

	var b strings.Builder
	for _, name := range append([]string{fg, bg}, attrs...) {
		c, ok := t.codes[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownCode, name)
		}
		b.WriteString(c)
	}
	return b.String(), nil
}

func (t *Table) reset() string {
	if c, ok := t.codes["reset"]; ok {
		return c
	}
	return Reset
}
