// Package apperrors defines the error types shared by exactsum: the
// arithmetic error kinds raised by the numeric packages (overflow,
// division by zero, parse and precondition failures) and the application
// errors of the command line tool, together with its exit codes.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Every arithmetic kind matches its sentinel through errors.Is, and wrapper
// types implement Unwrap so errors.As reaches the typed error.
package apperrors
