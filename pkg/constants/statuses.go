// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// Check status constants represent the outcome of checking one package.
const (
	// StatusOK indicates the package was found and reported.
	StatusOK = "OK"

	// StatusNotFound indicates the package is missing from the build service project.
	StatusNotFound = "NotFound"

	// StatusRepologyError indicates the version tracker could not be reached.
	StatusRepologyError = "RepologyError"

	// StatusFailed indicates any other failure.
	StatusFailed = "Failed"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderVersion replaces a spec version that does not start with a digit,
	// typically an unexpanded macro.
	PlaceholderVersion = "_VERSION_"

	// PlaceholderAbsent is printed in machine output when the change date
	// could not be converted to an epoch.
	PlaceholderAbsent = "None"

	// PlaceholderNA is used in table output when a value is not available.
	PlaceholderNA = "#N/A"
)

// Repology status values.
const (
	// RepologyStatusNewest marks a repository shipping the newest known version.
	RepologyStatusNewest = "newest"
)

// Icon constants for status display.
const (
	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"
)
