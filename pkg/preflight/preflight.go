// Package preflight verifies that the external tools lastupdate shells out to
// are installed before any package is checked.
package preflight

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/ajxudir/lastupdate/pkg/verbose"
)

// CommandResolutionHints maps command names to installation instructions.
var CommandResolutionHints = map[string]string{
	"osc":     "Install osc: zypper install osc (openSUSE), dnf install osc (Fedora) or pipx install osc",
	"rpmspec": "Install rpm-build: zypper install rpm-build (openSUSE) or dnf install rpm-build (Fedora)",
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// ValidationError represents a missing command with resolution hints.
//
// Fields:
//   - Command: The name of the missing command
//   - Hint: Installation instructions, empty if none are known
type ValidationError struct {
	Command string
	Hint    string
}

// Error returns a formatted error message with resolution instructions.
func (e *ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("command not found: %s\n  Resolution: %s", e.Command, e.Hint)
	}
	return fmt.Sprintf("command not found: %s\n  Resolution: Ensure '%s' is installed and available in your PATH.", e.Command, e.Command)
}

// ValidateResult holds the result of pre-flight validation.
//
// Fields:
//   - Tools: The tools that were checked, in order
//   - Errors: One entry per missing tool
type ValidateResult struct {
	Tools  []string
	Errors []ValidationError
}

// HasErrors returns true if any tool is missing.
func (r *ValidateResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Missing returns the names of the missing tools.
func (r *ValidateResult) Missing() []string {
	names := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		names = append(names, e.Command)
	}
	return names
}

// Error makes a failed result usable as an error value.
func (r *ValidateResult) Error() string {
	return r.ErrorMessage()
}

// ErrorMessage returns the message printed when tools are missing.
//
// The first line names all required tools; each missing tool follows with
// its resolution hint.
//
// Returns:
//   - string: Multi-line message; empty string if nothing is missing
func (r *ValidateResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error, missing one of required tools: '%s'. Please install and be sure to have in $PATH\n",
		strings.Join(r.Tools, " / ")))
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// ValidateTools checks that every tool is an executable in $PATH.
//
// Duplicate and empty names are checked once and skipped respectively.
//
// Parameters:
//   - tools: Command names, e.g. "osc" and "rpmspec"
//
// Returns:
//   - *ValidateResult: Result containing any validation errors; never nil
func ValidateTools(tools []string) *ValidateResult {
	result := &ValidateResult{}
	seen := make(map[string]bool)

	for _, tool := range tools {
		tool = strings.TrimSpace(tool)
		if tool == "" || seen[tool] {
			continue
		}
		seen[tool] = true
		result.Tools = append(result.Tools, tool)
		if err := validateCommand(tool); err != nil {
			result.Errors = append(result.Errors, *err)
		}
	}

	verbose.Debugf("Preflight: %d tools checked, %d missing", len(result.Tools), len(result.Errors))
	return result
}

// validateCommand checks if a command exists in PATH.
func validateCommand(cmd string) *ValidationError {
	path, err := lookPath(cmd)
	if err == nil {
		verbose.Tracef("Preflight: command %q found at %s", cmd, path)
		return nil
	}

	hint := CommandResolutionHints[cmd]
	verbose.Printf("Preflight ERROR: command %q not found", cmd)
	return &ValidationError{
		Command: cmd,
		Hint:    hint,
	}
}
