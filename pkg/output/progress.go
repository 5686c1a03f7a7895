package output

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress shows how many packages have been checked.
//
// A zero Progress, or one created disabled, is a no-op so callers never
// need to branch on whether progress output is wanted.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar writing to w.
//
// Parameters:
//   - w: Destination, normally os.Stderr so stdout stays parseable
//   - total: Number of packages to check
//   - enabled: When false the returned Progress prints nothing
//
// Returns:
//   - *Progress: The progress indicator
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Checking"),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "=", SaucerPadding: " ", BarStart: "[", BarEnd: "]"}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprint(w, "\n")
		}),
	)
	return &Progress{bar: bar}
}

// On describes the package currently being checked.
func (p *Progress) On(pkg string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe("Checking " + pkg)
}

// Increment marks one package as done.
func (p *Progress) Increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

// Done completes the bar.
func (p *Progress) Done() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
