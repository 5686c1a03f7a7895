// Package checker combines the build service and repology.org lookups into a
// per-package report.
package checker

import (
	"context"
	"strings"
	"time"

	"github.com/ajxudir/lastupdate/pkg/buildservice"
	"github.com/ajxudir/lastupdate/pkg/config"
	"github.com/ajxudir/lastupdate/pkg/errors"
	"github.com/ajxudir/lastupdate/pkg/output"
	"github.com/ajxudir/lastupdate/pkg/repology"
	"github.com/ajxudir/lastupdate/pkg/timestamp"
	"github.com/ajxudir/lastupdate/pkg/verbose"
	"github.com/ajxudir/lastupdate/pkg/warnings"
)

// ProjectSource lists the repositories that ship a project.
type ProjectSource interface {
	Project(ctx context.Context, name string) ([]repology.Entry, error)
}

// Checker reports when a package last changed and whether newer versions exist.
//
// Fields:
//   - BuildService: Source of the change date and spec version
//   - Repology: Source of versions in other distributions
//   - Config: Supplies the project packages are looked up in
//   - Now: Clock used to imply the year of short dates; time.Now when nil
type Checker struct {
	BuildService buildservice.Client
	Repology     ProjectSource
	Config       *config.Config
	Now          func() time.Time
}

// New creates a Checker using osc, rpmspec and the repology.org API.
func New(cfg *config.Config) *Checker {
	return &Checker{
		BuildService: buildservice.NewOSC(cfg),
		Repology:     repology.New(cfg),
		Config:       cfg,
		Now:          time.Now,
	}
}

// Check builds the report for one package.
//
// It performs the following operations:
//   - Step 1: Reads the last change date of <pkg>.changes
//   - Step 2: Reads the spec file version; a failure leaves it empty and is only warned about
//   - Step 3: Converts the date to an epoch when possible
//   - Step 4: Counts repositories that may ship a newer version
//
// Parameters:
//   - ctx: Context for cancellation
//   - pkg: Package name
//
// Returns:
//   - *output.Report: Always non-nil; a failed report when err is set
//   - error: A *errors.CheckError with KindPackageNotFound or KindRepologyUnreachable
func (c *Checker) Check(ctx context.Context, pkg string) (*output.Report, error) {
	project := c.Config.Project
	verbose.Infof("Checking %s in %s", pkg, project)

	fields, err := c.BuildService.LastChange(ctx, project, pkg)
	if err != nil || len(fields) == 0 {
		ce := errors.NewCheckError(errors.KindPackageNotFound, pkg, project, err)
		return output.Failed(ce), ce
	}

	version, err := c.BuildService.SpecVersion(ctx, project, pkg)
	if err != nil {
		warnings.Warn("Error in getting version from OBS: %v", err)
		version = ""
	}

	changed := strings.Join(fields, " ")
	epoch, ok := timestamp.ParseAt(changed, c.now())
	if !ok {
		verbose.Printf("Cannot convert %q to a timestamp", changed)
	}

	entries, err := c.Repology.Project(ctx, pkg)
	if err != nil {
		ce := errors.NewCheckError(errors.KindRepologyUnreachable, pkg, project, err)
		return output.Failed(ce), ce
	}
	newer := repology.NewerCount(entries, version)
	verbose.Debugf("%s: %d of %d repositories may be newer than %q", pkg, newer, len(entries), version)

	return &output.Report{
		Package:    pkg,
		Project:    project,
		Version:    version,
		Changed:    changed,
		Epoch:      epoch,
		HasEpoch:   ok,
		NewerRepos: newer,
	}, nil
}

func (c *Checker) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
