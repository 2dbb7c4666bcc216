package natural

import "math"

// Float64 returns the float64 nearest to x, rounding ties to even.
// Values too large for a float64 return +Inf.
func (x Natural) Float64() float64 {
	n := x.w.bitLen()
	if n <= 53 {
		return float64(x.w.uint64())
	}
	exponent := n - 1
	if exponent > 1023 {
		return math.Inf(1)
	}
	const mantBits = 52
	// twice holds the top 54 bits: the 53 kept bits and one guard bit.
	shift := uint(exponent - mantBits - 1)
	twice := x.ShiftedUint64(shift)
	signif := (twice >> 1) & (1<<mantBits - 1)
	if twice&1 != 0 && (signif&1 != 0 || x.w.trailingZeroBits() < shift) {
		signif++
	}
	// A carry out of the significand lands in the exponent field, which
	// is exactly the renormalization rounding needs.
	return math.Float64frombits(uint64(exponent+1023)<<mantBits + signif)
}

// Float32 returns the float32 nearest to x, rounding ties to even.
// Values too large for a float32 return +Inf.
func (x Natural) Float32() float32 {
	n := x.w.bitLen()
	if n <= 24 {
		return float32(x.w.uint64())
	}
	exponent := n - 1
	if exponent > 127 {
		return float32(math.Inf(1))
	}
	const mantBits = 23
	shift := uint(exponent - mantBits - 1)
	twice := uint32(x.ShiftedUint64(shift))
	signif := (twice >> 1) & (1<<mantBits - 1)
	if twice&1 != 0 && (signif&1 != 0 || x.w.trailingZeroBits() < shift) {
		signif++
	}
	return math.Float32frombits(uint32(exponent+127)<<mantBits + signif)
}
