// ABOUTME: Unix SIGWINCH subscription used by renderers that track terminal width
// ABOUTME: One goroutine per subscription, stopped by the returned func

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// NotifyResize calls fn each time the controlling terminal is resized,
// until stop is called. fn runs on a separate goroutine.
func NotifyResize(fn func()) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-sigCh:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
