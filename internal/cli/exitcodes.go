package cli

import "github.com/yaklabco/goturtle/pkg/diag"

// Exit codes for goturtle.
const (
	// ExitSuccess indicates successful execution with no problems.
	ExitSuccess = 0

	// ExitParseErrors indicates the check completed but found errors.
	ExitParseErrors = 1

	// ExitParseWarnings indicates the check found warnings (strict mode).
	ExitParseWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromSummary determines the exit code from a batch summary.
func ExitCodeFromSummary(sum diag.Summary, strict bool) int {
	if sum.Errors > 0 {
		return ExitParseErrors
	}
	if strict && sum.Warnings > 0 {
		return ExitParseWarnings
	}
	return ExitSuccess
}

// exitError carries a specific exit code up to main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// ExitCode extracts the exit code from an error returned by Execute.
// Plain errors map to ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return ExitInternalError
}
