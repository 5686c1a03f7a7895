// Package cmdexec runs the external tools lastupdate depends on (osc and
// rpmspec) with a timeout, captured output and verbose logging.
//
// Commands are executed directly, never through a shell, so package and
// project names cannot be interpreted as shell syntax.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/lastupdate/pkg/verbose"
	"github.com/ajxudir/lastupdate/pkg/warnings"
)

// waitDelay bounds how long Run waits for output pipes after the process
// group was killed.
const waitDelay = 2 * time.Second

// ErrTimeout is wrapped by errors returned for commands that exceeded their timeout.
var ErrTimeout = errors.New("command timed out")

// Command describes one external process invocation.
//
// Fields:
//   - Name: Executable name or path, looked up in $PATH
//   - Args: Arguments passed verbatim
//   - Dir: Working directory; empty means the current directory
//   - Env: Extra environment variables appended to the inherited environment
//   - Timeout: Maximum run time; zero disables the limit
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     map[string]string
	Timeout time.Duration
}

// String renders the command line with shell quoting, for logs only.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, shellEscape(c.Name))
	for _, a := range c.Args {
		parts = append(parts, shellEscape(a))
	}
	return strings.Join(parts, " ")
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - ctx: Context for cancellation; the command's own timeout is layered on top
//   - cmd: The command to run
//
// Returns:
//   - []byte: Captured stdout
//   - error: Start failure, non-zero exit (with stderr text), timeout or cancellation
type RunFunc func(ctx context.Context, cmd Command) ([]byte, error)

// Run is the command execution function used throughout the application.
// Tests replace it with a stub.
var Run RunFunc = runCommand

// runCommand executes cmd in its own process group so the whole tree can be
// killed on timeout.
func runCommand(ctx context.Context, c Command) ([]byte, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, fmt.Errorf("empty command")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if len(c.Env) > 0 {
		environ := os.Environ()
		for key, value := range c.Env {
			environ = append(environ, key+"="+value)
		}
		cmd.Env = environ
	}
	setProcGroup(cmd)
	cmd.Cancel = func() error { return killProcGroup(cmd) }
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	line := c.String()
	verbose.CommandExec(line, c.Dir)
	err := cmd.Run()
	verbose.CommandResult(line, exitCode(cmd, err), stdout.String())

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && c.Timeout > 0 {
			warnings.Warn("%s timed out after %s", c.Name, c.Timeout)
			return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, c.Timeout, line)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		if errMsg != "" {
			return stdout.Bytes(), fmt.Errorf("%s: %w: %s", c.Name, err, errMsg)
		}
		return stdout.Bytes(), fmt.Errorf("%s: %w", c.Name, err)
	}

	return stdout.Bytes(), nil
}

// exitCode extracts the process exit code, -1 when the process never ran.
func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}

// shellEscape quotes s for display when it contains characters a shell would
// interpret.
func shellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
func isShellSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '=' || r == ','
}
