// ABOUTME: Standard escape-code and style data compatible with Gentoo's functions.sh palette
// ABOUTME: Attribute, background, and 16-color foreground codes plus the semantic styles

package colors

import "fmt"

// ESC is the control sequence introducer.
const ESC = "\x1b["

// Reset is appended after every colorized fragment.
const Reset = ESC + "39;49;00m"

// Semantic style names.
const (
	StyleNormal  = "NORMAL"
	StyleGood    = "GOOD"
	StyleWarn    = "WARN"
	StyleBad     = "BAD"
	StyleHilite  = "HILITE"
	StyleBracket = "BRACKET"
)

// rgbPalette lists the 16 colors in the order of their escape codes:
// 30m, 30;01m, 31m, 31;01m, ... 37m, 37;01m.
var rgbPalette = [16]string{
	"0x000000", "0x555555", "0xAA0000", "0xFF5555", "0x00AA00", "0x55FF55",
	"0xAA5500", "0xFFFF55", "0x0000AA", "0x5555FF", "0xAA00AA", "0xFF55FF",
	"0x00AAAA", "0x55FFFF", "0xAAAAAA", "0xFFFFFF",
}

func standardCodes() map[string]string {
	c := map[string]string{
		"normal": ESC + "0m",
		"reset":  Reset,

		"bold":      ESC + "01m",
		"faint":     ESC + "02m",
		"standout":  ESC + "03m",
		"underline": ESC + "04m",
		"blink":     ESC + "05m",
		"overline":  ESC + "06m",
		"reverse":   ESC + "07m",
		"invisible": ESC + "08m",

		"no-attr":      ESC + "22m",
		"no-standout":  ESC + "23m",
		"no-underline": ESC + "24m",
		"no-blink":     ESC + "25m",
		"no-overline":  ESC + "26m",
		"no-reverse":   ESC + "27m",

		"bg_black":     ESC + "40m",
		"bg_darkred":   ESC + "41m",
		"bg_darkgreen": ESC + "42m",
		"bg_brown":     ESC + "43m",
		"bg_darkblue":  ESC + "44m",
		"bg_purple":    ESC + "45m",
		"bg_teal":      ESC + "46m",
		"bg_lightgray": ESC + "47m",
		"bg_default":   ESC + "49m",
	}
	c["bg_darkyellow"] = c["bg_brown"]

	for i, rgb := range rgbPalette {
		fg := 30 + i/2
		if i%2 == 0 {
			c[rgb] = fmt.Sprintf("%s%dm", ESC, fg)
		} else {
			c[rgb] = fmt.Sprintf("%s%d;01m", ESC, fg)
		}
	}

	for name, rgb := range map[string]string{
		"black":     "0x000000",
		"darkgray":  "0x555555",
		"red":       "0xFF5555",
		"darkred":   "0xAA0000",
		"green":     "0x55FF55",
		"darkgreen": "0x00AA00",
		"yellow":    "0xFFFF55",
		"brown":     "0xAA5500",
		"blue":      "0x5555FF",
		"darkblue":  "0x0000AA",
		"fuchsia":   "0xFF55FF",
		"purple":    "0xAA00AA",
		"turquoise": "0x55FFFF",
		"teal":      "0x00AAAA",
		"white":     "0xFFFFFF",
		"lightgray": "0xAAAAAA",
	} {
		c[name] = c[rgb]
	}
	c["darkteal"] = c["turquoise"]
	// Some terminals have darkyellow instead of brown.
	c["0xAAAA00"] = c["brown"]
	c["darkyellow"] = c["0xAAAA00"]

	return c
}

func standardStyles() map[string][]string {
	return map[string][]string{
		StyleNormal:  {"normal"},
		StyleGood:    {"green"},
		StyleWarn:    {"yellow"},
		StyleBad:     {"red"},
		StyleHilite:  {"teal"},
		StyleBracket: {"blue"},
	}
}
