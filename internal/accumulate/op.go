package accumulate

import (
	"slices"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Op names a reduction over one or two input sequences.
type Op string

// Supported reductions.
const (
	OpSum    Op = "sum"    // Σ x
	OpAbs    Op = "abs"    // Σ |x|
	OpL2     Op = "l2"     // Σ x²
	OpDot    Op = "dot"    // Σ x·y
	OpL1Dist Op = "l1dist" // Σ |x-y|
	OpL2Dist Op = "l2dist" // Σ (x-y)²
)

// Ops lists every reduction in display order.
func Ops() []Op {
	return []Op{OpSum, OpAbs, OpL2, OpDot, OpL1Dist, OpL2Dist}
}

// ParseOp validates an op name.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	if !slices.Contains(Ops(), op) {
		return "", apperrors.NewConfigError("unknown op %q (available: %v)", s, Ops())
	}
	return op, nil
}

// Binary reports whether the op consumes two sequences.
func (op Op) Binary() bool {
	return op == OpDot || op == OpL1Dist || op == OpL2Dist
}

// Apply accumulates x (and y for binary ops) into acc. acc is not
// cleared first.
func (op Op) Apply(acc Accumulator, x, y []float64) error {
	switch op {
	case OpSum:
		return acc.AddAll(x)
	case OpAbs:
		return acc.AddAbsAll(x)
	case OpL2:
		return acc.Add2All(x)
	case OpDot:
		return acc.AddProducts(x, y)
	case OpL1Dist:
		return acc.AddL1Distance(x, y)
	case OpL2Dist:
		return acc.AddL2Distance(x, y)
	}
	return apperrors.NewConfigError("unknown op %q", string(op))
}

// Partials returns the running-value sequence of op over x and y.
func (op Op) Partials(acc Accumulator, x, y []float64) (*Partials, error) {
	switch op {
	case OpSum:
		return PartialSums(acc, x), nil
	case OpAbs:
		return PartialL1s(acc, x), nil
	case OpL2:
		return PartialL2s(acc, x), nil
	case OpDot:
		return PartialDots(acc, x, y)
	case OpL1Dist:
		return PartialL1Distances(acc, x, y)
	case OpL2Dist:
		return PartialL2Distances(acc, x, y)
	}
	return nil, apperrors.NewConfigError("unknown op %q", string(op))
}
