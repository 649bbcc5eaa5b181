// Package app provides application state management and operation
// orchestration shared by the CLI and the GUI.
package app

// StatusReporter is the event sink core operations report through. Both
// shells implement it: the CLI prints to stderr, the GUI updates the status
// line. This replaces the original's global mutable log buffer feeding a UI
// widget.
type StatusReporter interface {
	Status(text string)
	Success(text string)
	Failure(err error)
}

// NullReporter discards all reports.
type NullReporter struct{}

// Status implements StatusReporter.
func (NullReporter) Status(text string) {}

// Success implements StatusReporter.
func (NullReporter) Success(text string) {}

// Failure implements StatusReporter.
func (NullReporter) Failure(err error) {}
