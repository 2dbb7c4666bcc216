// Package bigfloat implements BigFloat, an exact binary floating-point
// value (-1)^s * significand * 2^exponent with an unbounded Natural
// significand.
//
// Sums, differences and products of float64 and float32 inputs are
// represented without rounding. Rounding happens only when a value is
// extracted with Float64 or Float32, once, to the nearest representable
// value with ties to even.
package bigfloat
