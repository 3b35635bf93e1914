// Package batch aggregates the single-file pipeline over many files:
// concatenated markdown analyses, compressed packs, and construct
// searches, with a shared per-file OK/SKIP/FAIL diagnostic contract.
package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// progressThreshold is the batch size above which a progress bar
// replaces silence when per-file diagnostics are off.
const progressThreshold = 25

var (
	okColor   = color.New(color.FgGreen)
	skipColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Reporter emits per-file status lines on a diagnostic stream. With
// verbose off it stays quiet, showing only a progress bar for large
// batches. Counters accumulate either way for the final summary.
type Reporter struct {
	w       io.Writer
	verbose bool
	bar     *progressbar.ProgressBar

	ok      int
	skipped int
	failed  int
}

// NewReporter creates a reporter writing to w, typically os.Stderr.
func NewReporter(w io.Writer, verbose bool) *Reporter {
	return &Reporter{w: w, verbose: verbose}
}

// Start announces the batch size. Large quiet batches get a bar.
func (r *Reporter) Start(total int) {
	if r.verbose || total < progressThreshold {
		return
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Processing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.w)
		}),
	)
}

// OK records a successfully processed file.
func (r *Reporter) OK(path string) {
	r.ok++
	r.advance()
	if r.verbose {
		okColor.Fprintf(r.w, "  OK    %s\n", path)
	}
}

// OKDetail records a success with extra context, e.g. a match count.
func (r *Reporter) OKDetail(path, detail string) {
	r.ok++
	r.advance()
	if r.verbose {
		okColor.Fprintf(r.w, "  OK    %s (%s)\n", path, detail)
	}
}

// Skip records a file left out of the batch with the reason.
func (r *Reporter) Skip(path, reason string) {
	r.skipped++
	r.advance()
	if r.verbose {
		skipColor.Fprintf(r.w, "  SKIP  %s (%s)\n", path, reason)
	}
}

// Fail records a file whose processing errored.
func (r *Reporter) Fail(path string, err error) {
	r.failed++
	r.advance()
	if r.verbose {
		failColor.Fprintf(r.w, "  FAIL  %s (%v)\n", path, err)
	}
}

// Done finishes the bar and prints the tally in verbose mode.
func (r *Reporter) Done() {
	if r.bar != nil {
		r.bar.Finish()
	}
	if r.verbose {
		fmt.Fprintf(r.w, "\n  Processed: %d ok, %d skipped, %d failed\n",
			r.ok, r.skipped, r.failed)
	}
}

// Counts returns the accumulated ok, skipped, and failed tallies.
func (r *Reporter) Counts() (ok, skipped, failed int) {
	return r.ok, r.skipped, r.failed
}

func (r *Reporter) advance() {
	if r.bar != nil {
		r.bar.Add(1)
	}
}
