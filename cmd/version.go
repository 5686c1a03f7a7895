package cmd

import (
	"fmt"
	"io"
	"runtime"

	"github.com/ajxudir/lastupdate/pkg/constants"
	"github.com/ajxudir/lastupdate/pkg/versioning"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/lastupdate/cmd.Version=1.0.0"
var (
	// Version is the version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

// printVersionOutput prints version, build and runtime information followed
// by any build warnings.
func printVersionOutput(w io.Writer) {
	buildOS, buildArch := getBuildTarget()
	_, _ = fmt.Fprintf(w, "  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		_, _ = fmt.Fprintf(w, "  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	_, _ = fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", Version)

	if warnings := GetBuildWarnings(); warnings != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprint(w, warnings)
	}
}

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch
	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}
	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
func HasArchMismatch() bool {
	if BuildOS == "" && BuildArch == "" {
		return false
	}
	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// GetArchMismatchWarning returns a warning message if there's an architecture
// mismatch, or an empty string if everything matches.
func GetArchMismatchWarning() string {
	if !HasArchMismatch() {
		return ""
	}
	buildOS, buildArch := getBuildTarget()
	return fmt.Sprintf("%s  Architecture mismatch: binary built for %s/%s but running on %s/%s\n",
		constants.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
}

// IsDevBuild returns true if this is a development build (no release tag).
func IsDevBuild() bool {
	return Version == "dev"
}

// IsPrerelease returns true for tagged versions carrying an alphabetic
// qualifier, such as "1.2.0-rc1" or "v2.0beta".
func IsPrerelease() bool {
	v, err := versioning.Parse(Version)
	if err != nil {
		return false
	}
	for _, c := range v.Components() {
		if !c.Numeric {
			return true
		}
	}
	return false
}

// GetDevBuildWarning returns a warning message if running a dev build.
func GetDevBuildWarning() string {
	if !IsDevBuild() {
		return ""
	}
	return constants.IconWarn + "  Development build: this is an unreleased version without a version tag.\n"
}

// GetPrereleaseWarning returns a warning message if running a prerelease version.
func GetPrereleaseWarning() string {
	if !IsPrerelease() {
		return ""
	}
	return constants.IconWarn + "  Prerelease build: " + Version + "\n"
}

// GetBuildWarnings returns all build-related warnings combined.
func GetBuildWarnings() string {
	return GetArchMismatchWarning() + GetDevBuildWarning() + GetPrereleaseWarning()
}
