// ABOUTME: Windows stub for resize notifications.
// ABOUTME: Console resize events need ReadConsoleInput; renderers keep their initial width.

//go:build windows

package terminal

// NotifyResize is a no-op on Windows.
func NotifyResize(fn func()) (stop func()) {
	return func() {}
}
