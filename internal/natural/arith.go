// This file provides the word-vector kernels every Natural algorithm is
// built from. Vectors are little-endian: index 0 holds the least
// significant word.

package natural

import "math/bits"

const (
	_W = 32          // word size in bits
	_M = 1<<_W - 1   // word mask
	_B = uint64(1) << _W
)

// ─────────────────────────────────────────────────────────────────────────────
// Vector/Vector Operations
// ─────────────────────────────────────────────────────────────────────────────

// addVV sets z = x + y over len(z) words and returns the carry.
// x and y must be at least len(z) words long.
func addVV(z, x, y []uint32) (c uint32) {
	for i := range z {
		z[i], c = bits.Add32(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y over len(z) words and returns the borrow.
func subVV(z, x, y []uint32) (c uint32) {
	for i := range z {
		z[i], c = bits.Sub32(x[i], y[i], c)
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector/Word Operations
// ─────────────────────────────────────────────────────────────────────────────

// addVW sets z = x + y and returns the carry.
func addVW(z, x []uint32, y uint32) (c uint32) {
	c = y
	for i := range z {
		z[i], c = bits.Add32(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y and returns the borrow.
func subVW(z, x []uint32, y uint32) (c uint32) {
	c = y
	for i := range z {
		z[i], c = bits.Sub32(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s for 0 <= s < 32 and returns the bits shifted out
// of the top word. z and x may be the same slice.
func shlVU(z, x []uint32, s uint) (c uint32) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= _W - 1
	rs := _W - s
	c = x[len(z)-1] >> rs
	for i := len(z) - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>rs
	}
	z[0] = x[0] << s
	return c
}

// shrVU sets z = x >> s for 0 <= s < 32 and returns the bits shifted out
// of the bottom word, left-aligned. z and x may be the same slice.
func shrVU(z, x []uint32, s uint) (c uint32) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	s &= _W - 1
	rs := _W - s
	c = x[0] << rs
	for i := 0; i < len(z)-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<rs
	}
	z[len(z)-1] = x[len(z)-1] >> s
	return c
}

// mulAddVWW sets z = x*y + r and returns the high word of the result.
func mulAddVWW(z, x []uint32, y, r uint32) (c uint32) {
	c = r
	for i := range z {
		hi, lo := bits.Mul32(x[i], y)
		var cc uint32
		lo, cc = bits.Add32(lo, c, 0)
		z[i] = lo
		c = hi + cc
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry word.
func addMulVVW(z, x []uint32, y uint32) (c uint32) {
	for i := range z {
		hi, lo := bits.Mul32(x[i], y)
		var c0, c1 uint32
		lo, c0 = bits.Add32(lo, z[i], 0)
		lo, c1 = bits.Add32(lo, c, 0)
		z[i] = lo
		c = hi + c0 + c1
	}
	return c
}

// divWVW divides the double-width value (xn, x) by y word by word, storing
// the quotient in z and returning the remainder. xn must be less than y.
func divWVW(z []uint32, xn uint32, x []uint32, y uint32) (r uint32) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = bits.Div32(r, x[i], y)
	}
	return r
}

// greaterThan reports whether the two-word value (x1, x2) exceeds (y1, y2).
func greaterThan(x1, x2, y1, y2 uint32) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
