package cli

import (
	"fmt"
	"os"

	"github.com/KevinOlvera/fernet-cypher-gui/internal/app"
)

// Ensure Reporter implements app.StatusReporter
var _ app.StatusReporter = (*Reporter)(nil)

// Reporter implements app.StatusReporter for terminal output.
// If quiet is true, only failures are printed.
type Reporter struct {
	quiet bool
}

// NewReporter creates a new CLI status reporter.
func NewReporter(quiet bool) *Reporter {
	return &Reporter{quiet: quiet}
}

// Status implements app.StatusReporter.
func (r *Reporter) Status(text string) {
	if !r.quiet {
		fmt.Fprintln(os.Stderr, text)
	}
}

// Success implements app.StatusReporter.
func (r *Reporter) Success(text string) {
	if !r.quiet {
		fmt.Fprintln(os.Stderr, text)
	}
}

// Failure implements app.StatusReporter.
func (r *Reporter) Failure(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
