package preflight

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookPath makes only the given commands resolvable.
func stubLookPath(t *testing.T, present ...string) {
	t.Helper()
	old := lookPath
	t.Cleanup(func() { lookPath = old })

	lookPath = func(file string) (string, error) {
		for _, p := range present {
			if p == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestValidateToolsAllPresent(t *testing.T) {
	stubLookPath(t, "osc", "rpmspec")

	result := ValidateTools([]string{"osc", "rpmspec"})
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.ErrorMessage())
	assert.Equal(t, []string{"osc", "rpmspec"}, result.Tools)
}

// TestValidateToolsMissing tests the behavior of ValidateTools with missing tools.
//
// It verifies:
//   - Missing tools are reported with their hint
//   - The message names every required tool
func TestValidateToolsMissing(t *testing.T) {
	stubLookPath(t, "osc")

	result := ValidateTools([]string{"osc", "rpmspec"})
	require.True(t, result.HasErrors())
	assert.Equal(t, []string{"rpmspec"}, result.Missing())

	msg := result.ErrorMessage()
	assert.Contains(t, msg, "Error, missing one of required tools: 'osc / rpmspec'. Please install and be sure to have in $PATH")
	assert.Contains(t, msg, "command not found: rpmspec")
	assert.Contains(t, msg, "rpm-build")
	assert.Equal(t, msg, result.Error())
}

func TestValidateToolsSkipsDuplicatesAndBlanks(t *testing.T) {
	stubLookPath(t)

	result := ValidateTools([]string{"osc", "", "osc", " "})
	assert.Equal(t, []string{"osc"}, result.Tools)
	assert.Len(t, result.Errors, 1)
}

func TestValidationErrorWithoutHint(t *testing.T) {
	err := &ValidationError{Command: "mytool"}
	assert.Contains(t, err.Error(), "Ensure 'mytool' is installed")
	assert.NotContains(t, CommandResolutionHints, "mytool")
	assert.NotEmpty(t, CommandResolutionHints["osc"])
}

func TestValidateCommandRealLookup(t *testing.T) {
	assert.NotNil(t, validateCommand("this_command_definitely_does_not_exist_12345"))
}
