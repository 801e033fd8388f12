// ABOUTME: EOutput renders functions.sh-style status lines: " * msg ..." followed by a
// ABOUTME: right-aligned "[ ok ]" or "[ !! ]" bracket, tracking the line it is appending to

package eoutput

import (
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/go-output/internal/log"
	"github.com/mauromedda/go-output/pkg/output/colors"
	"github.com/mauromedda/go-output/pkg/output/terminal"
	"github.com/mauromedda/go-output/pkg/output/width"
)

const (
	defaultColumns = 80

	// bracketSlack is the room kept at the right edge for "[ ok ]" and
	// the space in front of it.
	bracketSlack = 7

	beginSuffix = " ..."
	bullet      = " * "
)

// EOutput writes status messages to an informational and an error
// stream. It is not safe for concurrent use.
type EOutput struct {
	stdout io.Writer
	stderr io.Writer
	table  *colors.Table

	quiet   bool
	columns int

	lastKind Kind
	lastLen  int

	err error
}

// Option configures an EOutput.
type Option func(*EOutput)

// WithStdout sets the informational stream. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *EOutput) { e.stdout = w }
}

// WithStderr sets the error stream. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(e *EOutput) { e.stderr = w }
}

// WithQuiet suppresses all output. State is still tracked.
func WithQuiet(quiet bool) Option {
	return func(e *EOutput) { e.quiet = quiet }
}

// WithTable sets the colors used for bullets and brackets.
func WithTable(t *colors.Table) Option {
	return func(e *EOutput) { e.table = t }
}

// WithColumns fixes the terminal width instead of querying it.
func WithColumns(n int) Option {
	return func(e *EOutput) { e.columns = n }
}

// New returns an EOutput. The width is queried on the informational
// stream unless WithColumns is given; an unknown width means 80.
func New(opts ...Option) (*EOutput, error) {
	e := &EOutput{
		stdout: os.Stdout,
		stderr: os.Stderr,
		table:  colors.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.columns <= 0 {
		size, err := terminal.QuerySize(e.stdout)
		if err != nil {
			return nil, fmt.Errorf("querying terminal size: %w", err)
		}
		e.columns = size.Columns
	}
	if e.columns <= 0 {
		e.columns = defaultColumns
	}

	for _, w := range []io.Writer{e.stdout, e.stderr} {
		if err := terminal.Flush(w); err != nil {
			log.Debug("eoutput: flush: %v", err)
		}
	}
	return e, nil
}

// Quiet reports whether output is suppressed.
func (e *EOutput) Quiet() bool { return e.quiet }

// SetQuiet turns output suppression on or off.
func (e *EOutput) SetQuiet(quiet bool) { e.quiet = quiet }

// Columns returns the terminal width brackets are aligned to.
func (e *EOutput) Columns() int { return e.columns }

// LastKind returns the kind of the last call.
func (e *EOutput) LastKind() Kind { return e.lastKind }

// Err returns the first write error. Status output is best effort, so
// no method reports it directly.
func (e *EOutput) Err() error { return e.err }

// Begin starts a "msg ..." line that a later End closes with a bracket.
func (e *EOutput) Begin(msg string) {
	msg += beginSuffix
	if !e.quiet {
		e.InfoNoNewline(msg)
	}
	e.lastLen = width.VisibleWidth(msg) + len(bullet)
	e.lastKind = KindBegin
}

// End closes the current line with "[ ok ]" when status is 0 and
// "[ !! ]" otherwise.
func (e *EOutput) End(status int) {
	e.end(status, "", e.Error)
}

// EndMsg is End that also prints msg as an error when status is not 0.
func (e *EOutput) EndMsg(status int, msg string) {
	e.end(status, msg, e.Error)
}

// WarnEnd is End for failures that are only warnings.
func (e *EOutput) WarnEnd(status int) {
	e.end(status, "", e.Warn)
}

// WarnEndMsg is WarnEnd that also prints msg as a warning when status
// is not 0.
func (e *EOutput) WarnEndMsg(status int, msg string) {
	e.end(status, msg, e.Warn)
}

func (e *EOutput) end(status int, msg string, report func(string)) {
	kind := KindEndOK
	if status != 0 {
		kind = KindEndFail
	}
	if e.quiet {
		e.lastKind = kind
		return
	}

	var brackets string
	if status == 0 {
		brackets = e.brackets(colors.StyleGood, "ok")
	} else {
		brackets = e.brackets(colors.StyleBad, "!!")
		if msg != "" {
			report(msg)
		}
	}

	// Only a begin line is still open; anything else starts the
	// bracket on a fresh line.
	if e.lastKind != KindBegin {
		e.lastLen = 0
	}
	pad := e.columns - e.lastLen - bracketSlack
	e.write(e.stdout, width.Spaces(pad)+brackets+"\n")
	e.lastKind = kind
}

func (e *EOutput) brackets(style, status string) string {
	return e.table.Colorize(colors.StyleBracket, "[ ") +
		e.table.Colorize(style, status) +
		e.table.Colorize(colors.StyleBracket, " ]")
}

// Info prints a green-bulleted message on the informational stream.
func (e *EOutput) Info(msg string) {
	e.message(e.stdout, colors.StyleGood, msg+"\n", KindInfo)
}

// InfoNoNewline is Info without the trailing newline.
func (e *EOutput) InfoNoNewline(msg string) {
	e.message(e.stdout, colors.StyleGood, msg, KindInfoNoNewline)
}

// Warn prints a yellow-bulleted message on the error stream.
func (e *EOutput) Warn(msg string) {
	e.message(e.stderr, colors.StyleWarn, msg+"\n", KindWarn)
}

// Error prints a red-bulleted message on the error stream.
func (e *EOutput) Error(msg string) {
	e.message(e.stderr, colors.StyleBad, msg+"\n", KindError)
}

func (e *EOutput) message(w io.Writer, style, text string, kind Kind) {
	if !e.quiet {
		if e.lastKind == KindBegin {
			e.write(w, "\n")
		}
		e.write(w, e.table.Colorize(style, bullet)+text)
	}
	e.lastKind = kind
}

func (e *EOutput) write(w io.Writer, s string) {
	if err := terminal.WriteString(w, s); err != nil {
		log.Debug("eoutput: write: %v", err)
		if e.err == nil {
			e.err = err
		}
	}
}
