package output

import (
	"fmt"

	"github.com/ajxudir/lastupdate/pkg/constants"
	"github.com/ajxudir/lastupdate/pkg/errors"
	"github.com/ajxudir/lastupdate/pkg/timestamp"
	"github.com/ajxudir/lastupdate/pkg/versioning"
)

// Report is the outcome of checking one package.
//
// Fields:
//   - Package: Package name as given on the command line
//   - Project: Build service project it was looked up in
//   - Version: Spec version, "_VERSION_" when not numeric, "" when unknown
//   - Changed: Raw change date as listed, e.g. "Dec 17 2022"
//   - Epoch: Changed as Unix seconds, valid only when HasEpoch
//   - HasEpoch: Whether Changed could be parsed
//   - NewerRepos: Repositories that may ship a newer version
//   - Err: Set when the package could not be reported; other fields but
//     Package and Project are then meaningless
type Report struct {
	Package    string
	Project    string
	Version    string
	Changed    string
	Epoch      int64
	HasEpoch   bool
	NewerRepos int
	Err        *errors.CheckError
}

// Failed creates the report of a failed check.
func Failed(err *errors.CheckError) *Report {
	return &Report{Package: err.Package, Project: err.Project, Err: err}
}

// OK reports whether the check succeeded.
func (r *Report) OK() bool {
	return r.Err == nil
}

// Status returns the status keyword shown in tables.
func (r *Report) Status() string {
	if r.Err == nil {
		return constants.StatusOK
	}
	switch r.Err.Kind {
	case errors.KindPackageNotFound:
		return constants.StatusNotFound
	case errors.KindRepologyUnreachable:
		return constants.StatusRepologyError
	default:
		return constants.StatusFailed
	}
}

// ChangedString returns the change date, or in machine mode the epoch with
// "None" standing for an unparseable date.
func (r *Report) ChangedString(machine bool) string {
	if !machine {
		return r.Changed
	}
	return timestamp.Format(r.Epoch, r.HasEpoch, constants.PlaceholderAbsent)
}

// HasNewer reports whether the newer-versions notice applies.
func (r *Report) HasNewer() bool {
	return versioning.IsNumeric(r.Version) && r.NewerRepos > 0
}

// Text renders the report as a sentence.
//
// Human form:
//
//	- bash on openSUSE:Factory is 5.2.15 changed on Dec 17 2022
//	Other 2 repos may have newer versions
//
// Machine form puts the epoch in place of the date and joins the notice with
// a single space. A failed report renders its error message.
func (r *Report) Text(machine bool) string {
	if r.Err != nil {
		return r.Err.Message()
	}
	s := fmt.Sprintf("- %s on %s is %s changed on %s", r.Package, r.Project, r.Version, r.ChangedString(machine))
	if r.HasNewer() {
		sep := "\n"
		if machine {
			sep = " "
		}
		s += fmt.Sprintf("%sOther %d repos may have newer versions", sep, r.NewerRepos)
	}
	return s
}
