package versioning

import "github.com/ajxudir/lastupdate/pkg/verbose"

// FilterNewer returns the candidates strictly newer than reference.
//
// This is a heuristic that fails open: when reference is not numeric-led, or
// any candidate cannot be compared, the candidates are returned unchanged.
func FilterNewer(reference string, candidates []string) []string {
	return FilterNewerFunc(reference, candidates, func(s string) string { return s })
}

// FilterNewerFunc is FilterNewer over arbitrary items.
//
// Parameters:
//   - reference: The version to compare against
//   - items: Candidate items, returned as-is when the heuristic gives up
//   - version: Extracts the version string of an item
//
// Returns:
//   - []T: Items whose version is newer than reference, in input order
func FilterNewerFunc[T any](reference string, items []T, version func(T) string) []T {
	if !IsNumeric(reference) {
		verbose.Printf("Version filter: reference %q is not numeric, keeping all %d candidates", reference, len(items))
		return items
	}
	ref, err := Parse(reference)
	if err != nil {
		verbose.Printf("Version filter: %v, keeping all %d candidates", err, len(items))
		return items
	}

	newer := make([]T, 0, len(items))
	for _, item := range items {
		v, err := Parse(version(item))
		if err != nil {
			verbose.Printf("Version filter: %v, keeping all %d candidates", err, len(items))
			return items
		}
		if v.Compare(ref) > 0 {
			newer = append(newer, item)
		}
	}
	verbose.Tracef("Version filter: %d of %d candidates newer than %s", len(newer), len(items), reference)
	return newer
}
