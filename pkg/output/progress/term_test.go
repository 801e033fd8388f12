// ABOUTME: Tests for TermBar: in-place redraws, flushing, resize refresh, and sticky write errors
// ABOUTME: Uses the in-memory VirtualTerminal so geometry is deterministic

package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/go-output/pkg/output/terminal"
)

func TestTermBar_RedrawsInPlace(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(20, 24)
	tb, err := NewTermBar(vt, WithMax(10))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}
	if tb.Columns() != 20 {
		t.Fatalf("Columns() = %d, want 20", tb.Columns())
	}
	if vt.Output() != "" {
		t.Fatalf("constructor drew %q", vt.Output())
	}

	tb.Set(0)
	tb.Set(10)

	want := "\r  0% [>           ]" + "\r100% [===========>]"
	if got := vt.Output(); got != want {
		t.Errorf("Output() =\n%q\nwant\n%q", got, want)
	}
	if strings.Contains(vt.Output(), "\n") {
		t.Error("TermBar must not write a newline")
	}
	if vt.FlushCount() != 2 {
		t.Errorf("FlushCount() = %d, want 2", vt.FlushCount())
	}
}

func TestTermBar_IncrementAndSetWithMax(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(30, 24)
	tb, err := NewTermBar(vt, WithMax(3))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}

	tb.Increment(1)
	if got := vt.Output(); got != "\r 33% [=======>              ]" {
		t.Errorf("after Increment(1): %q", got)
	}

	vt.Reset()
	tb.SetWithMax(5, 10)
	if tb.Bar().Max() != 10 || tb.Bar().Current() != 5 {
		t.Errorf("SetWithMax: current=%d max=%d", tb.Bar().Current(), tb.Bar().Max())
	}
	if !strings.HasPrefix(vt.Output(), "\r 50% [") {
		t.Errorf("after SetWithMax: %q", vt.Output())
	}
}

func TestTermBar_IndeterminateIncrementAnimates(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(21, 24)
	tb, err := NewTermBar(vt)
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}

	tb.Increment(1)
	tb.Increment(1)

	want := "\r     [<=>          ]\r     [ <=>         ]"
	if got := vt.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestTermBar_NonTerminalDrawsEmptyImages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tb, err := NewTermBar(&buf, WithMax(4))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}
	if tb.Columns() != 0 {
		t.Errorf("Columns() = %d, want 0", tb.Columns())
	}

	tb.Set(2)
	if buf.String() != "\r" {
		t.Errorf("Output() = %q, want a bare carriage return", buf.String())
	}
}

func TestTermBar_SetColumns(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	tb, err := NewTermBar(vt, WithMax(4))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}

	tb.SetColumns(10)
	tb.Set(3)
	if got := vt.Output(); got != "\r 75% " {
		t.Errorf("Output() = %q", got)
	}
}

func TestTermBar_RefreshColumnsFollowsTerminal(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(80, 24)
	tb, err := NewTermBar(vt, WithMax(10))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}

	vt.SetSize(20, 24)
	tb.refreshColumns()
	if tb.Columns() != 20 {
		t.Errorf("Columns() after resize = %d, want 20", tb.Columns())
	}

	// A sentinel size keeps the last known width.
	vt.SetSize(0, 0)
	tb.refreshColumns()
	if tb.Columns() != 20 {
		t.Errorf("Columns() after unknown size = %d, want 20", tb.Columns())
	}
}

func TestTermBar_ErrIsSticky(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(40, 24)
	tb, err := NewTermBar(vt, WithMax(10))
	if err != nil {
		t.Fatalf("NewTermBar: %v", err)
	}

	tb.Set(1)
	if tb.Err() != nil {
		t.Fatalf("Err() = %v before any failure", tb.Err())
	}

	first := errors.New("broken pipe")
	vt.FailWrites(first)
	tb.Set(2)
	vt.FailWrites(errors.New("second failure"))
	tb.Set(3)

	if !errors.Is(tb.Err(), first) {
		t.Errorf("Err() = %v, want %v", tb.Err(), first)
	}
	if tb.Bar().Current() != 3 {
		t.Errorf("state should advance despite write errors, Current() = %d", tb.Bar().Current())
	}
}
