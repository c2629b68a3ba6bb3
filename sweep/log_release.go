//go:build !debug

package sweep

// logDebugf is a no-op outside of -tags debug builds, so the sweep package
// compiles either way; see log_debug.go for the active implementation.
func logDebugf(format string, v ...interface{}) {}
