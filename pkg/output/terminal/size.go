// ABOUTME: Terminal geometry for an output stream: x/term first, "stty size" as fallback
// ABOUTME: Anything short of a clear answer degrades to the Size{} sentinel instead of failing

package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/mauromedda/go-output/internal/log"
)

// helperTimeout bounds how long the stty fallback may run.
const helperTimeout = 5 * time.Second

// ErrHelperFailed is returned when the size helper exists but cannot be
// started, e.g. because it is not executable.
var ErrHelperFailed = errors.New("terminal size helper failed")

// sizeHelper is the command whose output is "<lines> <columns>".
var sizeHelper = []string{"stty", "size"}

// Size is a terminal's geometry in character cells. The zero value
// means "unknown or not a terminal".
type Size struct {
	Lines   int
	Columns int
}

// Unknown reports whether s is the sentinel.
func (s Size) Unknown() bool {
	return s == Size{}
}

// Sizer is implemented by streams that know their own geometry.
type Sizer interface {
	Size() (width, height int, err error)
}

// fder is implemented by *os.File and anything else backed by a descriptor.
type fder interface {
	Fd() uintptr
}

// QuerySize returns the geometry of the terminal w writes to. Streams
// that are not interactive terminals yield Size{} and a nil error. The
// only error returned is ErrHelperFailed, for a fallback helper that is
// installed but cannot be run.
func QuerySize(w io.Writer) (Size, error) {
	if s, ok := w.(Sizer); ok {
		width, height, err := s.Size()
		if err != nil || width < 0 || height < 0 {
			return Size{}, nil
		}
		return Size{Lines: height, Columns: width}, nil
	}

	f, ok := w.(fder)
	if !ok {
		return Size{}, nil
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return Size{}, nil
	}

	width, height, err := term.GetSize(int(fd))
	if err == nil && width >= 0 && height >= 0 {
		return Size{Lines: height, Columns: width}, nil
	}
	log.Debug("terminal: GetSize on fd %d: %v; trying %s", fd, err, strings.Join(sizeHelper, " "))

	file, ok := w.(*os.File)
	if !ok {
		return Size{}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), helperTimeout)
	defer cancel()
	return runHelper(ctx, sizeHelper, file)
}

// GetSize is QuerySize for callers that cannot act on the error: it is
// logged and the sentinel returned.
func GetSize(w io.Writer) Size {
	s, err := QuerySize(w)
	if err != nil {
		log.Warn("terminal: %v", err)
		return Size{}
	}
	return s
}

// runHelper runs argv with stdin attached to tty and parses its output.
func runHelper(ctx context.Context, argv []string, tty *os.File) (Size, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if tty != nil {
		cmd.Stdin = tty
	}
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, exec.ErrNotFound):
			log.Debug("terminal: %s not installed", argv[0])
			return Size{}, nil
		case errors.As(err, &exitErr), ctx.Err() != nil:
			log.Debug("terminal: %s: %v: %s", argv[0], err, strings.TrimSpace(stderr.String()))
			return Size{}, nil
		default:
			return Size{}, fmt.Errorf("%w: %s: %w", ErrHelperFailed, argv[0], err)
		}
	}

	s, ok := parseSize(out)
	if !ok {
		log.Debug("terminal: unparsable %s output %q", argv[0], out)
	}
	return s, nil
}

// parseSize reads exactly two non-negative integers, lines then columns.
func parseSize(out []byte) (Size, bool) {
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return Size{}, false
	}
	lines, err := strconv.Atoi(fields[0])
	if err != nil {
		return Size{}, false
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return Size{}, false
	}
	if lines < 0 || cols < 0 {
		return Size{}, false
	}
	return Size{Lines: lines, Columns: cols}, true
}
