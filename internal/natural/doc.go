// Package natural implements immutable arbitrary-precision non-negative
// integers and the division engine behind them.
//
// A Natural stores 32-bit words least significant first. Multiplication
// selects schoolbook, Karatsuba or Toom-Cook-3 by operand length, and
// division selects Knuth's Algorithm D or Burnikel-Ziegler recursion.
// The switch-over points live in Thresholds and can be tuned with
// Configure; results never depend on them.
//
// Intermediate values of division, GCD and square root are built in
// pooled scratch buffers and copied out once, so public values are never
// aliased and can be shared between goroutines without locking.
//
// Failures are reported with the error kinds of package apperrors:
// OverflowError when a result would exceed Thresholds.MaxWords,
// DivisionByZeroError, ParseError and PreconditionError.
package natural
