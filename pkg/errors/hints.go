package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/lastupdate/pkg/constants"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	Pattern    string
	Hint       string
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "timed out",
		Hint:       "The build service or repology.org did not answer in time",
		Resolution: "Retry later or raise the limit with --timeout",
	},
	{
		Pattern:    "unauthorized",
		Hint:       "osc has no valid credentials for this API",
		Resolution: "Run 'osc --apiurl <url> ls' once to configure credentials in ~/.config/osc/oscrc",
	},
	{
		Pattern:    "status 429",
		Hint:       "repology.org is rate limiting requests",
		Resolution: "Wait a minute before checking more packages",
	},
	{
		Pattern:    "no such host",
		Hint:       "DNS lookup failed",
		Resolution: "Check network connectivity and the configured API URLs",
	},
}

// GetErrorHint returns the first hint whose pattern occurs in err's message.
func GetErrorHint(err error) *ErrorHint {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for i := range CommonErrorHints {
		if strings.Contains(msg, strings.ToLower(CommonErrorHints[i].Pattern)) {
			return &CommonErrorHints[i]
		}
	}
	return nil
}

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// Output format:
//
//	Error: <error message>
//	  💡 Hint: <hint> (<resolution>)
func PrintErrorWithHints(w io.Writer, errs []error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		if hint := GetErrorHint(err); hint != nil {
			_, _ = fmt.Fprintf(w, "  %s Hint: %s (%s)\n", constants.IconLightbulb, hint.Hint, hint.Resolution)
		}
	}
}
