package domain

import (
	"context"
	"time"
)

// ValidatorRunner executes the external validator for one request. It never
// returns an error: every failure is described by the ProcessResult.
type ValidatorRunner interface {
	Run(ctx context.Context, req ValidationRequest) ProcessResult
}

// ReportTranslator converts raw validator output into a Report.
type ReportTranslator interface {
	Translate(output string) (*Report, error)
}

// ConfigLoader loads service configuration from the given path.
type ConfigLoader interface {
	Load(path string) (ServiceConfig, error)
}

// ProcessResult is the outcome of one validator execution.
type ProcessResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
	// SpawnErr is set when the process could not be started or its input
	// file could not be prepared. Stdout, Stderr and ExitCode are then unset.
	SpawnErr error
}

// Ran reports whether the process was started.
func (r ProcessResult) Ran() bool { return r.SpawnErr == nil }

// ValidatorOptions are the fixed flags passed on every invocation.
type ValidatorOptions struct {
	Medium      string
	Output      string
	Warning     string
	VExtWarning bool
	PrintCSS    bool
}

// DefaultValidatorOptions returns the options used for every request.
// They are not configurable by callers.
func DefaultValidatorOptions() ValidatorOptions {
	return ValidatorOptions{
		Medium:      "all",
		Output:      "soap12",
		Warning:     "2",
		VExtWarning: true,
		PrintCSS:    false,
	}
}
