package apperrors

import (
	"errors"
	"fmt"
)

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic Error Kinds
// ─────────────────────────────────────────────────────────────────────────────

// Sentinel values for the arithmetic error kinds. The typed errors below
// match them through errors.Is, so callers can branch on the kind without
// caring about the details:
//
//	if errors.Is(err, apperrors.ErrOverflow) { ... }
var (
	ErrOverflow       = errors.New("arithmetic overflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrParse          = errors.New("parse error")
	ErrPrecondition   = errors.New("precondition violated")
)

// OverflowError reports that a magnitude or exponent would leave the
// supported range. The operation produces no partial result.
type OverflowError struct {
	// Op names the operation that overflowed (e.g., "natural.Mul").
	Op string
	// Reason describes the exceeded limit.
	Reason string
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: overflow: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrOverflow.
func (e OverflowError) Is(target error) bool { return target == ErrOverflow }

// NewOverflowError creates an OverflowError with a formatted reason.
func NewOverflowError(op, format string, a ...any) error {
	return OverflowError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// DivisionByZeroError reports a zero divisor or modulus.
type DivisionByZeroError struct {
	Op string
}

// Error returns a formatted message naming the operation.
func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("%s: division by zero", e.Op)
}

// Is reports whether target is ErrDivisionByZero.
func (e DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// ParseError reports a string that is not a valid numeral for its radix.
// Parsing is all-or-nothing: no prefix of the input is returned.
type ParseError struct {
	// Input is the rejected string.
	Input string
	// Radix is the base the input was parsed in.
	Radix int
	// Offset is the byte offset of the first offending character, or -1
	// when the input as a whole is malformed (e.g., empty).
	Offset int
	// Reason describes the failure.
	Reason string
}

// Error returns a formatted message including the offending position.
func (e ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("parse %q (radix %d): %s", e.Input, e.Radix, e.Reason)
	}
	return fmt.Sprintf("parse %q (radix %d): %s at offset %d", e.Input, e.Radix, e.Reason, e.Offset)
}

// Is reports whether target is ErrParse.
func (e ParseError) Is(target error) bool { return target == ErrParse }

// PreconditionError reports an input outside an operation's domain: a
// non-finite float, a negative result where a Natural is required, an
// even value with no inverse modulo a power of two, or operands of
// mismatched lengths.
type PreconditionError struct {
	Op     string
	Reason string
}

// Error returns a formatted message describing the violated precondition.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrPrecondition.
func (e PreconditionError) Is(target error) bool { return target == ErrPrecondition }

// NewPreconditionError creates a PreconditionError with a formatted reason.
func NewPreconditionError(op, format string, a ...any) error {
	return PreconditionError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// IsArithmeticError reports whether err carries one of the arithmetic
// error kinds.
func IsArithmeticError(err error) bool {
	return errors.Is(err, ErrOverflow) ||
		errors.Is(err, ErrDivisionByZero) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrPrecondition)
}
