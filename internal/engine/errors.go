package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLaunch means the executable could not be started at all.
	ErrLaunch = errors.New("failed to launch process")
	// ErrNoMeasurement means the backend finished but printed no timing.
	ErrNoMeasurement = errors.New("could not parse algorithm time")
	// ErrConversion means an input graph could not be converted.
	ErrConversion = errors.New("graph conversion failed")
)

// maxDiagnosticOutput caps captured output echoed into logs.
const maxDiagnosticOutput = 1000

// ExitError reports a child process that exited with a non-zero status.
type ExitError struct {
	Argv   []string
	Code   int
	Output string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", strings.Join(e.Argv, " "), e.Code)
}

// ParseError reports backend output without a recognizable timing.
type ParseError struct {
	Backend string
	Output  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, ErrNoMeasurement)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrNoMeasurement
}

// Truncate shortens captured output for diagnostics.
func Truncate(s string) string {
	if len(s) > maxDiagnosticOutput {
		return s[:maxDiagnosticOutput] + "..."
	}
	return s
}
