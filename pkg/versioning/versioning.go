// Package versioning compares loosely formatted upstream version strings.
//
// Distribution repositories report versions such as "5.2.15", "2024.01",
// "1.0rc1" or "v3.4-beta2". A version is split into runs of digits and runs
// of letters; everything else in "._-~" is a separator. Comparison walks the
// runs pairwise:
//
//   - two numeric runs compare as integers, leading zeros ignored
//   - two alphabetic runs compare lexically
//   - a numeric run is newer than an alphabetic one
//   - a side that runs out reads as zeros, so "1.0" equals "1.0.0" and
//     "2.0rc1" is older than "2.0"
//
// Any letter suffix is read as a pre-release, including patch levels:
// "9.6p1" is older than "9.6".
//
// Build metadata after '+' and a leading 'v' are ignored.
package versioning

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyVersion is returned when the version string is blank.
	ErrEmptyVersion = errors.New("empty version")

	// ErrInvalidVersion is returned when a version cannot be decomposed.
	ErrInvalidVersion = errors.New("invalid version")
)

var zero = Component{Text: "0", Numeric: true}

// Component is a single run of digits or letters.
//
// Fields:
//   - Text: The run as written; numeric runs have leading zeros stripped
//   - Numeric: Whether the run consists of digits
type Component struct {
	Text    string
	Numeric bool
}

// Version is a parsed, comparable version string.
type Version struct {
	raw        string
	components []Component
}

// String returns the original input.
func (v Version) String() string {
	return v.raw
}

// Components returns the significant runs of the version.
func (v Version) Components() []Component {
	out := make([]Component, len(v.components))
	copy(out, v.components)
	return out
}

// Parse decomposes s into comparable components.
//
// Returns:
//   - Version: The parsed version
//   - error: ErrEmptyVersion for blank input; ErrInvalidVersion when s contains
//     characters outside letters, digits and "._-~+", or has no digits at all
func Parse(s string) (Version, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	if i := strings.IndexByte(s, '+'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 1 && (s[0] == 'v' || s[0] == 'V') && isDigit(s[1]) {
		s = s[1:]
	}

	var comps []Component
	hasDigit := false
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c):
			j := i
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			comps = append(comps, Component{Text: trimZeros(s[i:j]), Numeric: true})
			hasDigit = true
			i = j
		case isLetter(c):
			j := i
			for j < len(s) && isLetter(s[j]) {
				j++
			}
			comps = append(comps, Component{Text: strings.ToLower(s[i:j])})
			i = j
		case isSeparator(c):
			i++
		default:
			return Version{}, fmt.Errorf("%w: %q contains %q", ErrInvalidVersion, raw, c)
		}
	}
	if !hasDigit {
		return Version{}, fmt.Errorf("%w: %q has no numeric component", ErrInvalidVersion, raw)
	}

	for len(comps) > 0 {
		last := comps[len(comps)-1]
		if !last.Numeric || last.Text != "0" {
			break
		}
		comps = comps[:len(comps)-1]
	}

	return Version{raw: raw, components: comps}, nil
}

// Compare returns -1, 0 or +1 as v is older than, equal to or newer than o.
func (v Version) Compare(o Version) int {
	n := len(v.components)
	if len(o.components) > n {
		n = len(o.components)
	}
	for i := 0; i < n; i++ {
		if c := compareComponent(v.at(i), o.at(i)); c != 0 {
			return c
		}
	}
	return 0
}

// at returns the i-th component; an exhausted version reads as zeros.
func (v Version) at(i int) Component {
	if i < len(v.components) {
		return v.components[i]
	}
	return zero
}

// Compare parses a and b and compares them.
//
// Returns:
//   - int: -1 if a < b, 0 if equal, +1 if a > b
//   - error: the parse error of whichever side could not be decomposed; the
//     ordering is then unknown
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// IsNumeric reports whether s starts with a digit.
//
// Only such versions are trusted by the newer-version heuristic.
func IsNumeric(s string) bool {
	return len(s) > 0 && isDigit(s[0])
}

func compareComponent(a, b Component) int {
	switch {
	case a.Numeric && b.Numeric:
		if len(a.Text) != len(b.Text) {
			if len(a.Text) < len(b.Text) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Text, b.Text)
	case a.Numeric:
		return 1
	case b.Numeric:
		return -1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// trimZeros strips leading zeros so numeric runs compare by length first.
func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" {
		return "0"
	}
	return t
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSeparator(c byte) bool {
	return c == '.' || c == '-' || c == '_' || c == '~'
}
