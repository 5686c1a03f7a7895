// Package timestamp converts the loose dates printed by `osc ls -l` into Unix
// epoch seconds.
//
// The build service lists recent files as "Jan 22 15:35" (no year) and older
// ones as "Dec 17 2022". Both shapes are interpreted in the local time zone.
package timestamp

import (
	"strconv"
	"strings"
	"time"
)

const (
	// layoutWithTime matches "Mon D H:M" once the current year is appended.
	layoutWithTime = "Jan 2 15:04 2006"
	// layoutWithYear matches "Mon D Year".
	layoutWithYear = "Jan 2 2006"
)

// Parse converts s to epoch seconds using the current year and local zone.
//
// Returns:
//   - int64: seconds since the Unix epoch
//   - bool: false when s matches neither shape; the epoch is then unknown, not zero
func Parse(s string) (int64, bool) {
	return ParseAt(s, time.Now())
}

// ParseAt is Parse with the implied year and time zone taken from now.
func ParseAt(s string, now time.Time) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	loc := now.Location()

	withYear := s + " " + strconv.Itoa(now.Year())
	if t, err := time.ParseInLocation(layoutWithTime, withYear, loc); err == nil {
		return t.Unix(), true
	}
	if t, err := time.ParseInLocation(layoutWithYear, s, loc); err == nil {
		return t.Unix(), true
	}
	return 0, false
}

// Format renders an optional epoch the way machine output expects it.
//
// Parameters:
//   - epoch: seconds since the Unix epoch
//   - ok: whether epoch holds a value
//   - absent: the marker printed when ok is false
func Format(epoch int64, ok bool, absent string) string {
	if !ok {
		return absent
	}
	return strconv.FormatInt(epoch, 10)
}
