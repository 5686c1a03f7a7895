package errors

import (
	"errors"
	"fmt"
)

// CheckKind classifies why a package check failed.
type CheckKind int

const (
	// KindPackageNotFound means the build service listed no change log for the package.
	KindPackageNotFound CheckKind = iota + 1

	// KindRepologyUnreachable means the version tracker request failed.
	KindRepologyUnreachable
)

// String returns a short name for the kind.
func (k CheckKind) String() string {
	switch k {
	case KindPackageNotFound:
		return "package not found"
	case KindRepologyUnreachable:
		return "repology unreachable"
	default:
		return fmt.Sprintf("CheckKind(%d)", int(k))
	}
}

// CheckError describes why a package could not be reported.
//
// Fields:
//   - Kind: Failure class, drives the printed message
//   - Package: The package that was checked
//   - Project: The build service project it was looked up in
//   - Err: The underlying cause, may be nil
type CheckError struct {
	Kind    CheckKind
	Package string
	Project string
	Err     error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Package, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Package, e.Kind)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text printed in place of a report.
func (e *CheckError) Message() string {
	switch e.Kind {
	case KindPackageNotFound:
		return fmt.Sprintf("- %s Error in getting information. Does this package exist in %s ?", e.Package, e.Project)
	case KindRepologyUnreachable:
		return "Sorry, we could not establish a connection to repology.org.\n" +
			"        Please make sure that you are connected to the internet and try again"
	default:
		return fmt.Sprintf("- %s Error: %v", e.Package, e.Err)
	}
}

// NewCheckError creates a CheckError.
func NewCheckError(kind CheckKind, pkg, project string, err error) *CheckError {
	return &CheckError{Kind: kind, Package: pkg, Project: project, Err: err}
}

// IsCheckError checks if err is a CheckError and returns it.
func IsCheckError(err error) (*CheckError, bool) {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
