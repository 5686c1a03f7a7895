package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlaceholderConstants tests the behavior of placeholder constants.
//
// It verifies:
//   - Placeholders printed to scripts keep their established spelling
func TestPlaceholderConstants(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"PlaceholderVersion", PlaceholderVersion, "_VERSION_"},
		{"PlaceholderAbsent", PlaceholderAbsent, "None"},
		{"PlaceholderNA", PlaceholderNA, "#N/A"},
		{"RepologyStatusNewest", RepologyStatusNewest, "newest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.constant, "constant %s has unexpected value", tt.name)
		})
	}
}

func TestStatusConstantsDistinct(t *testing.T) {
	statuses := []string{StatusOK, StatusNotFound, StatusRepologyError, StatusFailed}
	seen := map[string]bool{}
	for _, s := range statuses {
		assert.False(t, seen[s], "duplicate status %s", s)
		seen[s] = true
	}
}
