// Package verbose provides debug logging gated by the --verbose flag.
//
// Messages are routed through a hclog logger so that debug and trace output
// share the "[DEBUG]"/"[TRACE]" level prefixes and can be redirected in tests.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
)

const loggerName = "lastupdate"

var (
	mu      sync.RWMutex
	enabled bool
	level   = hclog.Debug
	logger  = newLogger(os.Stderr, hclog.Debug)
)

// newLogger builds the hclog logger used for all verbose output.
func newLogger(w io.Writer, lvl hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:        loggerName,
		Level:       lvl,
		Output:      w,
		DisableTime: true,
	})
}

// Enable turns on verbose logging at debug level.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and resets the level to debug.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
	level = hclog.Debug
	logger.SetLevel(level)
}

// IsEnabled returns whether verbose logging is currently enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetLevel changes the verbosity once logging is enabled.
//
// Accepted values are "debug" and "trace" (case-insensitive). Unknown values
// leave the level unchanged and return false.
//
// Parameters:
//   - name: The level name from configuration or flags
//
// Returns:
//   - bool: true if the level was recognised and applied
func SetLevel(name string) bool {
	var lvl hclog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		lvl = hclog.Debug
	case "trace":
		lvl = hclog.Trace
	default:
		return false
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	logger.SetLevel(lvl)
	return true
}

// SetWriter sets the output writer for verbose messages.
//
// A nil writer leaves the current writer unchanged.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		logger = newLogger(w, level)
	}
}

// current returns the enabled flag and logger under the read lock.
func current() (bool, hclog.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return enabled, logger
}

// Printf prints a formatted debug message if enabled.
func Printf(format string, args ...any) {
	if on, l := current(); on {
		l.Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}

// Info prints a debug message if enabled.
func Info(msg string) {
	if on, l := current(); on {
		l.Debug(msg)
	}
}

// Infof prints a formatted debug message if enabled.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// Debugf is an alias of Printf kept for call sites that mirror log levels.
func Debugf(format string, args ...any) {
	Printf(format, args...)
}

// Tracef prints a formatted trace message if enabled and the level is trace.
func Tracef(format string, args ...any) {
	if on, l := current(); on {
		l.Trace(fmt.Sprintf(format, args...))
	}
}

// CommandExec logs an external command before it runs.
//
// Parameters:
//   - cmd: The command line being executed
//   - workDir: The working directory, empty for the current one
func CommandExec(cmd, workDir string) {
	on, l := current()
	if !on {
		return
	}
	if workDir == "" {
		workDir = "."
	}
	l.Debug(fmt.Sprintf("Executing: %s", cmd))
	l.Debug(fmt.Sprintf("Working dir: %s", workDir))
}

// CommandResult logs the outcome of an external command.
//
// It prints the exit status and up to 5 lines of output; longer output is
// cut to its first 3 lines followed by a count of the omitted ones.
//
// Parameters:
//   - cmd: The command line that was executed
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: The captured command output
func CommandResult(cmd string, exitCode int, output string) {
	on, l := current()
	if !on {
		return
	}
	if exitCode == 0 {
		l.Debug(fmt.Sprintf("Command succeeded: %s", truncate(cmd, 60)))
	} else {
		l.Debug(fmt.Sprintf("Command failed (exit %d): %s", exitCode, truncate(cmd, 60)))
	}
	if strings.TrimSpace(output) == "" {
		return
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 5 {
		for _, line := range lines[:3] {
			l.Debug("| " + truncate(line, 100))
		}
		l.Debug(fmt.Sprintf("| ... (%d more lines)", len(lines)-3))
		return
	}
	for _, line := range lines {
		l.Debug("| " + truncate(line, 100))
	}
}

// ConfigLoaded logs which config file was loaded if enabled.
func ConfigLoaded(path string) {
	Printf("Config loaded: %s", path)
}

// Dump writes a spew dump of v under the given label at trace level.
func Dump(label string, v any) {
	on, l := current()
	if !on || !l.IsTrace() {
		return
	}
	l.Trace(label + ":\n" + strings.TrimRight(spew.Sdump(v), "\n"))
}

// truncate shortens a string to maxLen, appending "..." when cut.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
