// ABOUTME: Display width of status text as go-runewidth measures it, escape sequences excluded
// ABOUTME: Keeps EOutput's begin length in the same units progress padding is computed in

package width

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns how many terminal cells s occupies once printed.
// Escape sequences count zero. Each grapheme cluster counts as its base
// rune, which is how Truncate and PadRight size text, so a begin line
// and a padded description agree on wide and combining characters.
func VisibleWidth(s string) int {
	s = StripANSI(s)
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if rs := g.Runes(); len(rs) > 0 {
			n += runewidth.RuneWidth(rs[0])
		}
	}
	return n
}
