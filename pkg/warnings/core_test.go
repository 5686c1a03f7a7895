package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning messages are captured by the new writer
//   - nil writer follows os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := warnWriter

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("test message\n")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Contains(t, buf.String(), "test message")

	restore = SetWarningWriter(nil)
	defer restore()
	assert.Equal(t, os.Stderr, WarningWriter())
}

// TestWarnFollowsStderr tests that the default writer is resolved per call.
//
// It verifies:
//   - A replaced os.Stderr receives the warning
func TestWarnFollowsStderr(t *testing.T) {
	restore := SetWarningWriter(nil)
	defer restore()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	Warn("osc timed out")
	os.Stderr = old
	_ = w.Close()

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	_ = r.Close()
	assert.Equal(t, "⚠️  osc timed out\n", buf.String())
}

// TestWarningWriterReturnsCurrent tests the behavior of WarningWriter.
//
// It verifies:
//   - Returns the currently configured warning writer
//   - Reflects writer changes made by SetWarningWriter
//   - Returns to original writer after restore
func TestWarningWriterReturnsCurrent(t *testing.T) {
	original := WarningWriter()
	assert.Equal(t, original, WarningWriter())

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	assert.Equal(t, &buf, WarningWriter())
	restore()

	assert.Equal(t, original, WarningWriter())
}

func TestWarnAddsIconAndNewline(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	defer restore()

	Warn("spec version of %s is not numeric", "foo")
	Warn("already terminated\n")

	assert.Equal(t, "⚠️  spec version of foo is not numeric\n⚠️  already terminated\n", buf.String())
}
