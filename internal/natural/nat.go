package natural

import "math/bits"

// nat is the little-endian word vector behind a Natural. A normalized nat
// has no high zero words; the empty nat is zero. Functions in this file
// never write to their operands and return freshly allocated results
// unless documented otherwise.
type nat []uint32

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[0:i]
}

// makeNat returns a zeroed nat of length n with a little headroom for
// the carry-out of a following add.
func makeNat(n int) nat {
	const headroom = 4
	return make(nat, n, n+headroom)
}

func natFromUint64(v uint64) nat {
	switch {
	case v == 0:
		return nil
	case v>>_W == 0:
		return nat{uint32(v)}
	default:
		return nat{uint32(v), uint32(v >> _W)}
	}
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := makeNat(len(x))
	copy(z, x)
	return z
}

func (x nat) cmp(y nat) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	i := m - 1
	for i >= 0 && x[i] == y[i] {
		i--
	}
	switch {
	case i < 0:
		return 0
	case x[i] < y[i]:
		return -1
	default:
		return 1
	}
}

func (x nat) bitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*_W + bits.Len32(x[i])
	}
	return 0
}

// trailingZeroBits returns the number of consecutive zero bits starting at
// the least significant end. It returns 0 for zero.
func (x nat) trailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i*_W + bits.TrailingZeros32(w))
		}
	}
	return 0
}

func (x nat) bit(i uint) uint {
	j := i / _W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j]>>(i%_W)) & 1
}

// lowWords returns the n least significant words of x, normalized. The
// result shares x's backing array and must not be written to.
func (x nat) lowWords(n int) nat {
	if n >= len(x) {
		return x
	}
	return x[:n].norm()
}

// highWords returns x >> (32*n), sharing x's backing array.
func (x nat) highWords(n int) nat {
	if n >= len(x) {
		return nil
	}
	return x[n:]
}

func (x nat) uint64() uint64 {
	var v uint64
	if len(x) > 1 {
		v = uint64(x[1]) << _W
	}
	if len(x) > 0 {
		v |= uint64(x[0])
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Add, Subtract
// ─────────────────────────────────────────────────────────────────────────────

func addNat(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return addNat(y, x)
	}
	if n == 0 {
		return x.clone()
	}
	z := makeNat(m + 1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// subNat returns x - y. It panics if x < y; public callers check first.
func subNat(x, y nat) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("natural: subtraction underflow")
	case n == 0:
		return x.clone()
	}
	z := makeNat(m)
	c := subVV(z[:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("natural: subtraction underflow")
	}
	return z.norm()
}

// absDiffNat returns |x - y| and the sign of x - y.
func absDiffNat(x, y nat) (nat, int) {
	switch c := x.cmp(y); c {
	case 0:
		return nil, 0
	case 1:
		return subNat(x, y), 1
	default:
		return subNat(y, x), -1
	}
}

func addWordNat(x nat, y uint32) nat {
	if len(x) == 0 {
		return natFromUint64(uint64(y))
	}
	z := makeNat(len(x) + 1)
	z[len(x)] = addVW(z[:len(x)], x, y)
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// shlNat returns x << s. Whole words are moved by slicing, the remaining
// 0..31 bits by a single pass over adjacent word pairs.
func shlNat(x nat, s uint) nat {
	m := len(x)
	if m == 0 {
		return nil
	}
	if s == 0 {
		return x.clone()
	}
	n := m + int(s/_W)
	z := makeNat(n + 1)
	z[n] = shlVU(z[n-m:n], x, s%_W)
	return z.norm()
}

func shrNat(x nat, s uint) nat {
	m := len(x)
	n := m - int(s/_W)
	if n <= 0 {
		return nil
	}
	if s == 0 {
		return x.clone()
	}
	z := makeNat(n)
	shrVU(z, x[m-n:], s%_W)
	return z.norm()
}

// shlWords returns x * 2^(32*n).
func shlWords(x nat, n int) nat {
	if len(x) == 0 {
		return nil
	}
	z := makeNat(len(x) + n)
	copy(z[n:], x)
	return z
}

// ─────────────────────────────────────────────────────────────────────────────
// Word Multiplication and Division
// ─────────────────────────────────────────────────────────────────────────────

// mulAddWW returns x*y + r.
func mulAddWW(x nat, y, r uint32) nat {
	m := len(x)
	if m == 0 || y == 0 {
		return natFromUint64(uint64(r))
	}
	z := makeNat(m + 1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// divW returns x / y and x % y for a single-word divisor y != 0.
func divW(x nat, y uint32) (q nat, r uint32) {
	m := len(x)
	switch {
	case y == 0:
		panic("natural: division by zero")
	case y == 1:
		return x.clone(), 0
	case m == 0:
		return nil, 0
	}
	q = makeNat(m)
	r = divWVW(q, 0, x, y)
	return q.norm(), r
}
