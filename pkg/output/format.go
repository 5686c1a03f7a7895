// Package output renders package reports as text, JSON or an aligned table.
package output

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the default one-line-per-package sentence output.
	FormatText Format = "text"
	// FormatJSON outputs an array of objects with a fixed key order.
	FormatJSON Format = "json"
	// FormatTable outputs aligned columns.
	FormatTable Format = "table"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatTable}

var _ pflag.Value = (*Format)(nil)

// ParseFormat parses a format name, case-insensitively.
//
// Parameters:
//   - s: Format name, e.g. "json" or "Table"
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no supported format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q (valid: text, json, table)", s)
}

// String implements pflag.Value.
func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}
