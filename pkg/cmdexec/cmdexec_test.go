package cmdexec

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/lastupdate/pkg/warnings"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-specific test on Windows")
	}
}

// TestCommandString tests the behavior of Command.String.
//
// It verifies:
//   - Safe arguments are printed bare
//   - Arguments with shell metacharacters are single-quoted
func TestCommandString(t *testing.T) {
	c := Command{
		Name: "rpmspec",
		Args: []string{"-q", "bash.spec", "--queryformat=%{VERSION} "},
	}
	assert.Equal(t, "rpmspec -q bash.spec '--queryformat=%{VERSION} '", c.String())

	c = Command{Name: "osc", Args: []string{"ls", "-l", "openSUSE:Factory/bash", "", "it's"}}
	assert.Equal(t, `osc ls -l openSUSE:Factory/bash '' 'it'\''s'`, c.String())
}

func TestRunCapturesStdout(t *testing.T) {
	skipOnWindows(t)

	out, err := Run(context.Background(), Command{Name: "echo", Args: []string{"hello", "world"}})
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(out))
}

func TestRunUsesDirAndEnv(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()

	out, err := Run(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", `pwd; echo "$LASTUPDATE_TEST"`},
		Dir:  dir,
		Env:  map[string]string{"LASTUPDATE_TEST": "value"},
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], dir[strings.LastIndex(dir, "/")+1:])
	assert.Equal(t, "value", lines[1])
}

// TestRunFailure tests the behavior of Run with failing commands.
//
// It verifies:
//   - Non-zero exits include stderr in the error
//   - Missing executables are reported
//   - Empty command names are rejected
func TestRunFailure(t *testing.T) {
	skipOnWindows(t)

	_, err := Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo nope >&2; exit 3"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "nope")

	_, err = Run(context.Background(), Command{Name: "this_command_definitely_does_not_exist_12345"})
	require.Error(t, err)

	_, err = Run(context.Background(), Command{Name: "  "})
	assert.EqualError(t, err, "empty command")
}

func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)
	var buf strings.Builder
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	start := time.Now()
	_, err := Run(context.Background(), Command{
		Name:    "sh",
		Args:    []string{"-c", "sleep 10"},
		Timeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Contains(t, buf.String(), "sh timed out after 100ms")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Command{Name: "echo"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShellEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bash", "bash"},
		{"openSUSE:Factory/bash", "openSUSE:Factory/bash"},
		{"", "''"},
		{"a b", "'a b'"},
		{"$(rm)", "'$(rm)'"},
		{"it's", `'it'\''s'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, shellEscape(tt.in), tt.in)
	}
}
