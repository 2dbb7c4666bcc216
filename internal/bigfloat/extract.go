package bigfloat

import (
	"math"
	"math/bits"

	"github.com/agbru/exactsum/internal/natural"
)

// format describes an IEEE-754 binary format for rounding.
type format struct {
	significandBits int64 // including the implicit bit
	minExponent     int64 // exponent of the smallest subnormal
	maxBiased       int64 // biased exponent of infinity
	bias            int64 // biased exponent = exponent + bias for a full-width significand
}

var (
	binary64 = format{float64SignificandBits, float64MinExponent, 0x7ff, float64Bias}
	binary32 = format{float32SignificandBits, float32MinExponent, 0xff, float32Bias}
)

// round returns the IEEE bit pattern, without the sign, of the magnitude
// t*2^e rounded to nearest with ties to even. Magnitudes past the largest
// finite value give the infinity pattern; magnitudes below half the
// smallest subnormal give zero.
func (f format) round(t natural.Natural, e int64) uint64 {
	eh := int64(t.BitLen())

	// Drop enough low bits to leave a full significand, or more if the
	// result lands in the subnormal range.
	drop := max(f.minExponent-e, eh-f.significandBits)
	var m uint64
	switch {
	case drop <= 0:
		m = t.Uint64() << uint(-drop)
	default:
		m = t.ShiftedUint64(uint(drop))
		if roundUp(t, uint64(drop)) {
			m++
		}
	}
	e += drop

	if m == 0 {
		return 0
	}
	if int64(bits.Len64(m)) > f.significandBits {
		// Rounding carried into a new bit; the dropped bit is zero.
		m >>= 1
		e++
	}
	if int64(bits.Len64(m)) < f.significandBits {
		// Subnormal: e is the minimum exponent and the biased field is 0.
		return m
	}
	biased := e + f.bias
	if biased >= f.maxBiased {
		return uint64(f.maxBiased) << uint(f.significandBits-1)
	}
	return uint64(biased)<<uint(f.significandBits-1) | m&(1<<uint(f.significandBits-1)-1)
}

// roundUp reports whether dropping the low k bits of t must round the
// kept part up: the highest dropped bit is set and either a lower dropped
// bit is set or the lowest kept bit is odd.
func roundUp(t natural.Natural, k uint64) bool {
	if k > uint64(t.BitLen()) || !t.TestBit(uint(k-1)) {
		return false
	}
	return uint64(t.TrailingZeroBits()) < k-1 || t.TestBit(uint(k))
}

// Float64 returns the float64 nearest to x, rounding ties to even. Values
// beyond the float64 range return a signed infinity, and values too
// small for the smallest subnormal return a signed zero.
func (x BigFloat) Float64() float64 {
	if x.IsZero() {
		return 0
	}
	b := binary64.round(x.significand, int64(x.exponent))
	if x.negative {
		b |= 1 << 63
	}
	return math.Float64frombits(b)
}

// Float32 returns the float32 nearest to x, rounding ties to even.
func (x BigFloat) Float32() float32 {
	if x.IsZero() {
		return 0
	}
	b := uint32(binary32.round(x.significand, int64(x.exponent)))
	if x.negative {
		b |= 1 << 31
	}
	return math.Float32frombits(b)
}
