package bigfloat

import (
	"math"

	"github.com/agbru/exactsum/internal/natural"
)

// BigFloat is an immutable exact value. The zero value is the number 0.
//
// A value may be held in several forms, since significand*2^exponent and
// (significand<<k)*2^(exponent-k) are equal. Comparison, equality,
// hashing and String always work on the reduced form, whose significand
// is odd.
type BigFloat struct {
	negative    bool
	significand natural.Natural
	exponent    int32
}

// Zero returns the canonical zero.
func Zero() BigFloat { return BigFloat{} }

// New returns (-1)^(!nonNegative) * significand * 2^exponent. A zero
// significand yields the canonical zero regardless of sign and exponent.
func New(nonNegative bool, significand natural.Natural, exponent int32) BigFloat {
	if significand.IsZero() {
		return BigFloat{}
	}
	return BigFloat{negative: !nonNegative, significand: significand, exponent: exponent}
}

// NonNegative reports whether x >= 0.
func (x BigFloat) NonNegative() bool { return !x.negative }

// Significand returns the significand of x in its current form.
func (x BigFloat) Significand() natural.Natural { return x.significand }

// Exponent returns the exponent of x in its current form.
func (x BigFloat) Exponent() int32 { return x.exponent }

// IsZero reports whether x == 0.
func (x BigFloat) IsZero() bool { return x.significand.IsZero() }

// IsOne reports whether x == 1.
func (x BigFloat) IsOne() bool {
	r := x.Reduce()
	return !r.negative && r.exponent == 0 && r.significand.IsOne()
}

// Sign returns -1, 0 or +1.
func (x BigFloat) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.negative:
		return -1
	}
	return 1
}

// Neg returns -x.
func (x BigFloat) Neg() BigFloat {
	if x.IsZero() {
		return x
	}
	x.negative = !x.negative
	return x
}

// Abs returns |x|.
func (x BigFloat) Abs() BigFloat {
	x.negative = false
	return x
}

// Reduce returns x with the trailing zero bits of its significand moved
// into the exponent. The exponent never exceeds math.MaxInt32, so a value
// at the very top of the range may keep some trailing zeros.
func (x BigFloat) Reduce() BigFloat {
	if x.IsZero() {
		return BigFloat{}
	}
	tz := uint64(x.significand.TrailingZeroBits())
	if room := uint64(int64(math.MaxInt32) - int64(x.exponent)); tz > room {
		tz = room
	}
	if tz == 0 {
		return x
	}
	return BigFloat{
		negative:    x.negative,
		significand: x.significand.Rsh(uint(tz)),
		exponent:    x.exponent + int32(tz),
	}
}
