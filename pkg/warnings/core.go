// Package warnings writes user-facing warnings to stderr, separate from the
// report printed on stdout.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ajxudir/lastupdate/pkg/constants"
)

// warnWriter is nil while warnings go to whatever os.Stderr is at write time.
var (
	mu         sync.RWMutex
	warnWriter io.Writer
)

// Warnf writes a formatted warning verbatim to the configured writer.
func Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(WarningWriter(), format, args...)
}

// Warn writes a single warning line prefixed with the warning icon.
//
// A trailing newline is added when missing.
func Warn(format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	Warnf("%s  %s\n", constants.IconWarn, msg)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if warnWriter == nil {
		return os.Stderr
	}
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; nil means the current os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	warnWriter = w

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}
