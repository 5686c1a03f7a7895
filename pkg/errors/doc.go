// Package errors provides unified error types and exit codes for lastupdate.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some packages were reported, some failed
//   - CheckError: Why a single package could not be reported
//
// Every failure of a package check is a *CheckError. Its Message method
// yields the text printed in place of the report, so callers never have to
// distinguish sentinel strings from raised errors:
//
//	rep, err := checker.Check(ctx, "bash")
//	if ce, ok := errors.IsCheckError(err); ok {
//	    fmt.Println(ce.Message())
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): Every package was reported
//   - ExitPartialFailure (1): Some packages failed
//   - ExitFailure (2): All packages failed
//   - ExitConfigError (3): Required tools missing or invalid configuration
package errors
