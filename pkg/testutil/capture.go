// Package testutil provides shared test helpers: stderr capture, config
// builders and in-memory build service and repology fakes.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it.
//
// The pipe is drained while fn runs, so large outputs cannot block, and
// os.Stderr is restored even if fn panics.
//
// Parameters:
//   - t: Testing instance; pipe creation failures are fatal
//   - fn: Code whose warnings and diagnostics are captured
//
// Returns:
//   - string: The captured output
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	saved := os.Stderr
	os.Stderr = w
	func() {
		defer func() {
			os.Stderr = saved
			_ = w.Close()
		}()
		fn()
	}()

	return <-done
}
