// ABOUTME: Write-then-flush for caller-owned output streams
// ABOUTME: Buffered writers are flushed after every message so lines appear immediately

package terminal

import "io"

// Flusher is implemented by buffered writers such as *bufio.Writer.
type Flusher interface {
	Flush() error
}

// Flush flushes w if it buffers; other writers are left alone.
func Flush(w io.Writer) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// WriteString writes s to w and flushes it.
func WriteString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return Flush(w)
}
