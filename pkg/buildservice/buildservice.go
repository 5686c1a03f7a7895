// Package buildservice queries the openSUSE Build Service for the last change
// date and the declared version of a package.
package buildservice

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ajxudir/lastupdate/pkg/cmdexec"
	"github.com/ajxudir/lastupdate/pkg/config"
	"github.com/ajxudir/lastupdate/pkg/constants"
	"github.com/ajxudir/lastupdate/pkg/verbose"
	"github.com/ajxudir/lastupdate/pkg/versioning"
)

// ErrPackageNotFound is returned when the build service lists no change log
// for the package.
var ErrPackageNotFound = errors.New("package not found")

// Client is the build service capability used by the checker.
type Client interface {
	// LastChange returns the month, day and time-or-year fields of the
	// package's .changes file listing.
	LastChange(ctx context.Context, project, pkg string) ([]string, error)

	// SpecVersion returns the Version: declared in the package's spec file.
	// A version that does not start with a digit is reported as "_VERSION_".
	SpecVersion(ctx context.Context, project, pkg string) (string, error)
}

// OSC implements Client with the osc and rpmspec command line tools.
//
// Fields:
//   - APIURL: Passed to osc --apiurl
//   - Osc: osc executable
//   - Rpmspec: rpmspec executable
//   - Timeout: Limit applied to each invocation
type OSC struct {
	APIURL  string
	Osc     string
	Rpmspec string
	Timeout time.Duration
}

var _ Client = (*OSC)(nil)

// NewOSC creates an OSC client from the configuration.
func NewOSC(cfg *config.Config) *OSC {
	return &OSC{
		APIURL:  cfg.APIURL,
		Osc:     cfg.OscCommand,
		Rpmspec: cfg.RpmspecCommand,
		Timeout: cfg.Timeout,
	}
}

func (o *OSC) osc(dir string, args ...string) cmdexec.Command {
	return cmdexec.Command{
		Name:    o.Osc,
		Args:    append([]string{"--apiurl", o.APIURL}, args...),
		Dir:     dir,
		Timeout: o.Timeout,
	}
}

// LastChange runs "osc ls -l project/pkg" and picks the line of pkg.changes.
//
// Parameters:
//   - ctx: Context for cancellation
//   - project: Build service project, e.g. "openSUSE:Factory"
//   - pkg: Package name
//
// Returns:
//   - []string: Date fields, e.g. ["Dec", "17", "2022"] or ["Jan", "22", "15:35"]
//   - error: ErrPackageNotFound (wrapping the osc failure if any)
func (o *OSC) LastChange(ctx context.Context, project, pkg string) ([]string, error) {
	out, err := cmdexec.Run(ctx, o.osc("", "ls", "-l", project+"/"+pkg))
	if err != nil {
		return nil, errors.Wrapf(ErrPackageNotFound, "%s/%s: %v", project, pkg, err)
	}

	fields, ok := parseListing(out, pkg+".changes")
	if !ok {
		return nil, errors.Wrapf(ErrPackageNotFound, "%s/%s: no %s.changes listed", project, pkg, pkg)
	}
	verbose.Debugf("Last change of %s/%s: %s", project, pkg, strings.Join(fields, " "))
	return fields, nil
}

// parseListing finds the "osc ls -l" line for file and returns its date fields.
//
// A long listing line reads "<md5> <rev> <size> <Mon> <D> <HH:MM|YYYY> <name>".
func parseListing(out []byte, file string) ([]string, bool) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 7 || fields[len(fields)-1] != file {
			continue
		}
		return fields[3:6], true
	}
	return nil, false
}

// SpecVersion checks out pkg.spec into a temporary directory and queries its
// version with rpmspec.
//
// Returns:
//   - string: The version, "_VERSION_" when it is not numeric
//   - error: Checkout, query or empty output failure; the version is then ""
func (o *OSC) SpecVersion(ctx context.Context, project, pkg string) (string, error) {
	spec := pkg + ".spec"

	tmp, err := os.MkdirTemp("", "lastupdate-")
	if err != nil {
		return "", errors.Wrap(err, "create checkout directory")
	}
	defer func() {
		if rmErr := os.RemoveAll(tmp); rmErr != nil {
			verbose.Printf("Failed to remove %s: %v", tmp, rmErr)
		}
	}()

	if _, err := cmdexec.Run(ctx, o.osc(tmp, "co", project, pkg, spec)); err != nil {
		return "", errors.Wrapf(err, "checkout %s", spec)
	}

	out, err := cmdexec.Run(ctx, cmdexec.Command{
		Name:    o.Rpmspec,
		Args:    []string{"-q", spec, "--queryformat=%{VERSION} "},
		Dir:     tmp,
		Timeout: o.Timeout,
	})
	if err != nil {
		return "", errors.Wrapf(err, "query %s", spec)
	}

	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", errors.Errorf("rpmspec returned no version for %s", spec)
	}
	version := fields[0]
	if !versioning.IsNumeric(version) {
		verbose.Debugf("Spec version %q of %s is not numeric", version, pkg)
		return constants.PlaceholderVersion, nil
	}
	return version, nil
}
