package format

import (
	"math"
	"strconv"
)

// FormatFloat renders v with the shortest decimal that round-trips.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatHexFloat renders v in hexadecimal floating-point notation, which
// shows the exact bits.
func FormatHexFloat(v float64) string {
	return strconv.FormatFloat(v, 'x', -1, 64)
}

// ULPDistance counts the representable doubles between a and b. Values
// of opposite sign count the distance through zero. It is +Inf if either
// is NaN or exactly one of them is infinite.
func ULPDistance(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.Inf(1)
	}
	if a == b {
		return 0
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return math.Inf(1)
	}
	return math.Abs(float64(ordered(a) - ordered(b)))
}

// ordered maps a double to an integer preserving order, with -0 and +0
// both at 0.
func ordered(v float64) int64 {
	bits := int64(math.Float64bits(math.Abs(v)))
	if math.Signbit(v) {
		return -bits
	}
	return bits
}

// FormatULPs renders a ULP distance for a comparison table. NaN means
// there was no reference and renders as "-".
func FormatULPs(d float64) string {
	switch {
	case math.IsNaN(d):
		return "-"
	case math.IsInf(d, 1):
		return "inf"
	case d == 0:
		return "0"
	default:
		return strconv.FormatFloat(d, 'f', 0, 64)
	}
}
