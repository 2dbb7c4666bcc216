package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the exit statuses of the exactsum binary.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run timed out.
	ExitErrorMismatch = 3   // Indicates an exact accumulator disagreed with the oracle.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates the input could not be read or parsed.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as an invalid
// flag or environment value.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure of one accumulator run while keeping
// the cause reachable for errors.Is and errors.As.
type CalculationError struct {
	// Accumulator names the accumulator whose run failed. It may be empty.
	Accumulator string
	// Cause is the underlying error.
	Cause error
}

// Error returns the cause message, prefixed with the accumulator name
// when one is set.
func (e CalculationError) Error() string {
	if e.Accumulator == "" {
		return e.Cause.Error()
	}
	return e.Accumulator + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a run that exceeded its deadline.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// InputError reports a value in the input stream that is not a number.
type InputError struct {
	// Line is the 1-based line of the offending value.
	Line int
	// Text is the rejected token.
	Text string
	// Cause is the parser error, if any.
	Cause error
}

// Error returns a formatted message naming the line and token.
func (e InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input line %d: invalid value %q: %v", e.Line, e.Text, e.Cause)
	}
	return fmt.Sprintf("input line %d: invalid value %q", e.Line, e.Text)
}

// Unwrap returns the parser error.
func (e InputError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
