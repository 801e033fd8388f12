// ABOUTME: Fitting text into a fixed number of cells: truncate with a tail, pad with spaces
// ABOUTME: Negative widths and counts collapse to empty instead of panicking

package width

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s so that s plus tail fits in w cells, appending
// tail. Strings that already fit are returned unchanged. If w is
// smaller than the tail itself, only the tail is returned.
func Truncate(s string, w int, tail string) string {
	return runewidth.Truncate(s, w, tail)
}

// PadRight appends spaces until s is w cells wide. Strings already at
// least w cells wide are returned unchanged.
func PadRight(s string, w int) string {
	return runewidth.FillRight(s, w)
}

// Spaces returns n spaces, or "" when n <= 0.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// Repeat is strings.Repeat with negative counts treated as zero.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
