// ABOUTME: Kind records which status call produced the current line
// ABOUTME: End uses it to decide whether the bracket continues a begin line

package eoutput

// Kind identifies the last status call made on an EOutput.
type Kind int

const (
	KindNone Kind = iota
	KindBegin
	KindEndOK
	KindEndFail
	KindInfo
	KindInfoNoNewline
	KindWarn
	KindError
)

var kindNames = [...]string{
	KindNone:          "none",
	KindBegin:         "begin",
	KindEndOK:         "end-ok",
	KindEndFail:       "end-fail",
	KindInfo:          "info",
	KindInfoNoNewline: "info-no-newline",
	KindWarn:          "warn",
	KindError:         "error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}
