// ABOUTME: Tests for Bar: description fitting, clamping, determinate and indeterminate images
// ABOUTME: Expected images are character-exact, including narrow and zero-width terminals

package progress

import (
	"math"
	"math/big"
	"strings"
	"testing"
)

func TestBar_Description(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		label   string
		descMax int
		want    string
	}{
		{name: "empty", want: ""},
		{name: "title and label padded", title: "Download", label: "foo.tar.gz", descMax: 25, want: "Download: foo.tar.gz     "},
		{name: "label only", label: "spin", descMax: 10, want: "spin      "},
		{name: "title only", title: "Fetch", descMax: 10, want: "Fetch:    "},
		{name: "truncated", title: "Downloading", label: "a-very-long-archive-name.tar.gz", descMax: 25, want: "Downloading: a-very-lo..."},
		{name: "exact fit", label: "0123456789", descMax: 10, want: "0123456789"},
		{name: "decomposed accent normalised", label: "Cafe\u0301", descMax: 6, want: "Café  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(WithTitle(tt.title), WithLabel(tt.label), WithDescriptionMaxLength(tt.descMax))
			if got := b.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBar_ConfigureIsIdempotent(t *testing.T) {
	t.Parallel()

	b := New()
	b.Configure("Unpack", "linux-6.1.tar.xz", 20)
	first := b.Description()
	b.Configure("Unpack", "linux-6.1.tar.xz", 20)

	if b.Description() != first {
		t.Errorf("Configure twice: %q then %q", first, b.Description())
	}
	if first != "Unpack: linux-6.1..." {
		t.Errorf("Description() = %q", first)
	}
}

func TestBar_SetTitleAndLabel(t *testing.T) {
	t.Parallel()

	b := New(WithDescriptionMaxLength(12))
	b.SetTitle("Get")
	if b.Description() != "Get:        " {
		t.Errorf("after SetTitle: %q", b.Description())
	}
	b.SetLabel("a.txt")
	if b.Description() != "Get: a.txt  " {
		t.Errorf("after SetLabel: %q", b.Description())
	}
}

func TestBar_SetClamps(t *testing.T) {
	t.Parallel()

	b := New(WithMax(10))

	b.Set(15)
	if b.Current() != 10 {
		t.Errorf("Set(15) with max 10: Current() = %d", b.Current())
	}
	b.Set(-3)
	if b.Current() != 0 {
		t.Errorf("Set(-3): Current() = %d", b.Current())
	}
	b.Set(4)
	b.Increment(3)
	if b.Current() != 7 {
		t.Errorf("Increment(3) from 4: Current() = %d", b.Current())
	}
	b.Increment(-100)
	if b.Current() != 0 {
		t.Errorf("Increment(-100): Current() = %d", b.Current())
	}

	b.SetWithMax(150, 100)
	if b.Max() != 100 || b.Current() != 100 {
		t.Errorf("SetWithMax(150, 100): current=%d max=%d", b.Current(), b.Max())
	}

	b.SetWithMax(5, -1)
	if !b.Indeterminate() || b.Current() != 0 {
		t.Errorf("SetWithMax(5, -1): current=%d max=%d", b.Current(), b.Max())
	}
}

func TestBar_RenderDeterminate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		value   int64
		columns int
		want    string
	}{
		{
			name: "half at 80", opts: []Option{WithMax(200)}, value: 100, columns: 80,
			want: " 50% [" + strings.Repeat("=", 35) + ">" + strings.Repeat(" ", 36) + "]",
		},
		{
			name: "capped at 80 columns", opts: []Option{WithMax(8)}, value: 2, columns: 200,
			want: " 25% [" + strings.Repeat("=", 17) + ">" + strings.Repeat(" ", 54) + "]",
		},
		{name: "empty", opts: []Option{WithMax(10)}, value: 0, columns: 20, want: "  0% [>           ]"},
		{name: "full", opts: []Option{WithMax(10)}, value: 10, columns: 20, want: "100% [===========>]"},
		{name: "percentage floors", opts: []Option{WithMax(3)}, value: 1, columns: 30, want: " 33% [=======>              ]"},
		{name: "below minimum shows percentage only", opts: []Option{WithMax(4)}, value: 3, columns: 10, want: " 75% "},
		{name: "exactly percentage width", opts: []Option{WithMax(4)}, value: 4, columns: 5, want: "100% "},
		{name: "narrower than percentage", opts: []Option{WithMax(4)}, value: 4, columns: 4, want: ""},
		{name: "zero width", opts: []Option{WithMax(4)}, value: 1, columns: 0, want: ""},
		{name: "negative width", opts: []Option{WithMax(4)}, value: 1, columns: -7, want: ""},
		{
			name: "with description", columns: 60, value: 42,
			opts: []Option{WithMax(100), WithTitle("Download"), WithLabel("foo.tar.gz")},
			want: "Download: foo.tar.gz      42% [==========>                ]",
		},
		{
			name: "with truncated description", columns: 60, value: 99,
			opts: []Option{WithMax(100), WithTitle("Downloading"), WithLabel("a-very-long-archive-name.tar.gz")},
			want: "Downloading: a-very-lo... 99% [=========================> ]",
		},
		{
			name: "description leaves no room for a bar", columns: 30, value: 1,
			opts: []Option{WithMax(2), WithLabel("x")},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(tt.opts...)
			b.Set(tt.value)
			if got := b.Render(tt.columns); got != tt.want {
				t.Errorf("Render(%d) =\n%q\nwant\n%q", tt.columns, got, tt.want)
			}
		})
	}
}

func TestBar_PercentageInRange(t *testing.T) {
	t.Parallel()

	for _, maxVal := range []int64{1, 3, 7, 99, 200, 1 << 40, 1 << 60, math.MaxInt64} {
		b := New(WithMax(maxVal))
		for _, v := range []int64{0, 1, maxVal / 3, maxVal / 2, maxVal - 1, maxVal} {
			b.Set(v)
			img := b.Render(80)
			pct := strings.TrimSuffix(strings.TrimSpace(img[:4]), "%")
			exact := new(big.Int).Mul(big.NewInt(b.Current()), big.NewInt(100))
			exact.Quo(exact, big.NewInt(maxVal))
			want := exact.Int64()
			if pct != itoa(want) {
				t.Errorf("max=%d value=%d: percentage %q, want %d", maxVal, b.Current(), pct, want)
			}
			if want < 0 || want > 100 {
				t.Errorf("max=%d value=%d: percentage %d out of range", maxVal, b.Current(), want)
			}
		}
	}
}

func TestBar_HugeValuesRenderExactly(t *testing.T) {
	t.Parallel()

	b := New(WithMax(1 << 60))
	b.Set(1<<60 - 1)

	want := " 99% [" + strings.Repeat("=", 70) + "> ]"
	if got := b.Render(80); got != want {
		t.Errorf("Render(80) =\n%q\nwant\n%q", got, want)
	}

	b.SetWithMax(math.MaxInt64, math.MaxInt64)
	if got := b.Render(20); got != "100% [===========>]" {
		t.Errorf("Render(20) at MaxInt64 = %q", got)
	}
}

func TestBar_TinyDescriptionWidthKeepsOnlyEllipsis(t *testing.T) {
	t.Parallel()

	b := New(WithLabel("archive.tar.gz"), WithDescriptionMaxLength(2))
	if got := b.Description(); got != "..." {
		t.Errorf("Description() = %q, want %q", got, "...")
	}

	short := New(WithLabel("ab"), WithDescriptionMaxLength(2))
	if got := short.Description(); got != "ab" {
		t.Errorf("fitting label: Description() = %q, want %q", got, "ab")
	}
}

func TestBar_NarrowTerminalHasNoBar(t *testing.T) {
	t.Parallel()

	b := New(WithMax(9))
	b.Set(5)
	for cols := 5; cols < minColumns; cols++ {
		if img := b.Render(cols); strings.ContainsAny(img, "[]=>") {
			t.Errorf("Render(%d) = %q contains bar characters", cols, img)
		}
	}
}

func TestBar_RenderIndeterminate(t *testing.T) {
	t.Parallel()

	b := New()
	want := []string{
		"     [<=>          ]",
		"     [ <=>         ]",
		"     [  <=>        ]",
		"     [   <=>       ]",
		"     [    <=>      ]",
		"     [     <=>     ]",
	}
	for i, w := range want {
		if got := b.Render(21); got != w {
			t.Errorf("frame %d = %q, want %q", i, got, w)
		}
	}

	d := New(WithLabel("spin"))
	wantDesc := []string{
		"spin                          [<=>    ]",
		"spin                          [ <=>   ]",
		"spin                          [  <=>  ]",
	}
	for i, w := range wantDesc {
		if got := d.Render(40); got != w {
			t.Errorf("desc frame %d = %q, want %q", i, got, w)
		}
	}
}

func TestBar_IndeterminateNarrowIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []Option
		columns int
	}{
		{name: "below minimum", columns: 10},
		{name: "below percentage width", columns: 3},
		{name: "description eats the bar", opts: []Option{WithLabel("x")}, columns: 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := New(tt.opts...)
			if got := b.Render(tt.columns); got != "" {
				t.Errorf("Render(%d) = %q, want empty", tt.columns, got)
			}
		})
	}
}

func TestBar_IndeterminatePositionBounds(t *testing.T) {
	t.Parallel()

	for _, cols := range []int{21, 55, 80} {
		b := New()
		var sawHalf, sawOne bool
		for range 1000 {
			img := b.Render(cols)
			if !strings.Contains(img, "<=>") {
				t.Fatalf("cols=%d: image %q has no marker", cols, img)
			}
			if b.position < 0 || b.position > 1 {
				t.Fatalf("cols=%d: position %v out of [0,1]", cols, b.position)
			}
			sawHalf = sawHalf || b.position == 0.5
			sawOne = sawOne || b.position == 1.0
		}
		if !sawHalf || !sawOne {
			t.Errorf("cols=%d: visited 0.5=%v 1.0=%v, want both", cols, sawHalf, sawOne)
		}
	}
}

func TestBar_IndeterminateIgnoresCurrent(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	b.Set(1234)
	if b.Current() != 0 {
		t.Errorf("Set on indeterminate bar: Current() = %d, want 0", b.Current())
	}
	if a.Render(30) != b.Render(30) {
		t.Error("indeterminate image should not depend on the value")
	}
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for ; n > 0; n /= 10 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
	}
	return string(digits)
}
