package extraction

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceNotFound is returned when the input video does not exist or
	// is not a regular file
	ErrSourceNotFound = errors.New("source video not found")

	// ErrBinaryNotFound is returned when the ffmpeg binary cannot be resolved
	ErrBinaryNotFound = errors.New("ffmpeg binary not found")

	// ErrExecutionFailed is returned when the ffmpeg invocation fails or
	// times out
	ErrExecutionFailed = errors.New("ffmpeg execution failed")
)

// CommandError carries diagnostics from a failed external command invocation.
// It matches its Kind sentinel through errors.Is.
type CommandError struct {
	Kind     error
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%v (exit code %d)", e.Kind, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
