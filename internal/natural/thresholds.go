package natural

import (
	"strconv"
	"sync/atomic"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Selection Thresholds
// ─────────────────────────────────────────────────────────────────────────────
//
// All thresholds are measured in 32-bit words. They only decide which
// algorithm runs; every path computes the same result, so changing them
// never changes an answer.

const (
	// DefaultKaratsubaMul is the operand length at which multiplication
	// leaves the schoolbook O(n²) loop for Karatsuba. Both operands must
	// reach it.
	DefaultKaratsubaMul = 80

	// DefaultToomCookMul is the operand length at which multiplication
	// switches from Karatsuba to Toom-Cook-3. Either operand reaching it
	// is enough.
	DefaultToomCookMul = 240

	// DefaultKaratsubaSquare is the Karatsuba threshold for squaring.
	// Schoolbook squaring computes each cross product once, so it stays
	// competitive longer than schoolbook multiplication.
	DefaultKaratsubaSquare = 128

	// DefaultToomCookSquare is the Toom-Cook-3 threshold for squaring.
	DefaultToomCookSquare = 216

	// DefaultMulSquare is the length above which multiplying a value by
	// itself is routed to the dedicated squaring code.
	DefaultMulSquare = 20

	// DefaultBurnikelZiegler is the divisor length at which division
	// leaves Knuth's Algorithm D for Burnikel-Ziegler recursion.
	DefaultBurnikelZiegler = 80

	// DefaultBurnikelZieglerOffset is the minimum excess of dividend
	// length over divisor length for Burnikel-Ziegler to pay off.
	DefaultBurnikelZieglerOffset = 40

	// DefaultKnuthPow2Len and DefaultKnuthPow2Zeros control when Knuth
	// division first cancels a common power of two: the dividend must be
	// at least KnuthPow2Len words long and both operands must share at
	// least KnuthPow2Zeros whole zero words at the bottom.
	DefaultKnuthPow2Len   = 6
	DefaultKnuthPow2Zeros = 3

	// DefaultMaxWords is the largest supported magnitude, in words.
	// Results that would exceed it fail with an overflow error instead of
	// being truncated. 2^26 words is 2^31 bits.
	DefaultMaxWords = 1 << 26
)

// Thresholds bundles the tunable limits of the arithmetic engine.
type Thresholds struct {
	KaratsubaMul          int
	ToomCookMul           int
	KaratsubaSquare       int
	ToomCookSquare        int
	MulSquare             int
	BurnikelZiegler       int
	BurnikelZieglerOffset int
	KnuthPow2Len          int
	KnuthPow2Zeros        int
	MaxWords              int
}

// DefaultThresholds returns the built-in limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		KaratsubaMul:          DefaultKaratsubaMul,
		ToomCookMul:           DefaultToomCookMul,
		KaratsubaSquare:       DefaultKaratsubaSquare,
		ToomCookSquare:        DefaultToomCookSquare,
		MulSquare:             DefaultMulSquare,
		BurnikelZiegler:       DefaultBurnikelZiegler,
		BurnikelZieglerOffset: DefaultBurnikelZieglerOffset,
		KnuthPow2Len:          DefaultKnuthPow2Len,
		KnuthPow2Zeros:        DefaultKnuthPow2Zeros,
		MaxWords:              DefaultMaxWords,
	}
}

// Minimum lengths below which the recursive algorithms would stop
// shrinking their subproblems.
const (
	minKaratsuba = 4
	minToomCook  = 12
)

// Validate checks that the recursive algorithms terminate under t.
func (t Thresholds) Validate() error {
	checks := []struct {
		field string
		value int
		min   int
	}{
		{"KaratsubaMul", t.KaratsubaMul, minKaratsuba},
		{"ToomCookMul", t.ToomCookMul, minToomCook},
		{"KaratsubaSquare", t.KaratsubaSquare, minKaratsuba},
		{"ToomCookSquare", t.ToomCookSquare, minToomCook},
		{"MulSquare", t.MulSquare, 0},
		{"BurnikelZiegler", t.BurnikelZiegler, 2},
		{"BurnikelZieglerOffset", t.BurnikelZieglerOffset, 0},
		{"KnuthPow2Len", t.KnuthPow2Len, 1},
		{"KnuthPow2Zeros", t.KnuthPow2Zeros, 1},
		{"MaxWords", t.MaxWords, 1},
	}
	for _, c := range checks {
		if c.value < c.min {
			return apperrors.ValidationError{
				Field:   c.field,
				Message: "must be at least " + strconv.Itoa(c.min),
			}
		}
	}
	return nil
}

var (
	defaultThresholds = DefaultThresholds()
	active            atomic.Pointer[Thresholds]
)

// Configure replaces the engine limits for all subsequent operations.
// It is meant to be called once at startup, before any arithmetic runs.
// Calls already in flight keep the snapshot they started with.
func Configure(t Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}
	active.Store(&t)
	return nil
}

// Current returns the limits in effect.
func Current() Thresholds { return *limits() }

func limits() *Thresholds {
	if t := active.Load(); t != nil {
		return t
	}
	return &defaultThresholds
}
