package natural

import "math/bits"

// mutNat is the mutable working form of a Natural. It lives inside a
// single division, GCD or inverse computation and never escapes it: the
// owner reads the result through value, which normalizes and copies, and
// then calls release.
//
// While an algorithm step runs, w may carry high zero words. normalize
// restores the no-leading-zero form.
type mutNat struct {
	buf []uint32 // pooled backing storage
	w   []uint32 // logical value, little-endian, a prefix of buf
}

// newMutNat returns an empty mutNat with room for capWords words.
func newMutNat(capWords int) *mutNat {
	buf := acquireScratch(max(capWords, 1))
	return &mutNat{buf: buf, w: buf[:0]}
}

// mutNatOf returns a mutable copy of x with extra words of headroom.
func mutNatOf(x nat, extra int) *mutNat {
	m := newMutNat(len(x) + extra)
	m.w = m.buf[:len(x)]
	copy(m.w, x)
	return m
}

func (m *mutNat) release() {
	releaseScratch(m.buf)
	m.buf, m.w = nil, nil
}

// grow makes room for n words, preserving the value.
func (m *mutNat) grow(n int) {
	if n <= cap(m.buf) {
		return
	}
	buf := acquireScratch(n)
	copy(buf, m.w)
	l := len(m.w)
	releaseScratch(m.buf)
	m.buf = buf
	m.w = buf[:l]
}

// resize sets the logical length to n words, zero-filling new words.
func (m *mutNat) resize(n int) {
	m.grow(n)
	old := len(m.w)
	m.w = m.buf[:n]
	if n > old {
		clear(m.w[old:])
	}
}

func (m *mutNat) normalize() {
	m.w = nat(m.w).norm()
}

func (m *mutNat) isZero() bool {
	m.normalize()
	return len(m.w) == 0
}

// value returns the normalized value as an independent nat.
func (m *mutNat) value() nat {
	m.normalize()
	return nat(m.w).clone()
}

func (m *mutNat) set(x nat) {
	m.resize(len(x))
	copy(m.w, x)
}

func (m *mutNat) cmp(y *mutNat) int {
	m.normalize()
	y.normalize()
	return nat(m.w).cmp(y.w)
}

// lowestSetBit returns the index of the lowest set bit, or -1 for zero.
func (m *mutNat) lowestSetBit() int {
	for i, w := range m.w {
		if w != 0 {
			return i*_W + bits.TrailingZeros32(w)
		}
	}
	return -1
}

// rsh shifts the value right by s bits in place.
func (m *mutNat) rsh(s uint) {
	m.normalize()
	words := int(s / _W)
	if words >= len(m.w) {
		m.w = m.w[:0]
		return
	}
	if words > 0 {
		copy(m.w, m.w[words:])
		m.w = m.w[:len(m.w)-words]
	}
	shrVU(m.w, m.w, s%_W)
	m.normalize()
}

// lsh shifts the value left by s bits in place.
func (m *mutNat) lsh(s uint) {
	m.normalize()
	n := len(m.w)
	if n == 0 || s == 0 {
		return
	}
	words := int(s / _W)
	m.resize(n + words + 1)
	copy(m.w[words:words+n], m.w[:n])
	clear(m.w[:words])
	m.w[words+n] = shlVU(m.w[words:words+n], m.w[words:words+n], s%_W)
	m.normalize()
}

// sub sets m -= y. It panics if y > m.
func (m *mutNat) sub(y nat) {
	m.normalize()
	if nat(m.w).cmp(y) < 0 {
		panic("natural: mutable subtraction underflow")
	}
	c := subVV(m.w[:len(y)], m.w, y)
	if len(m.w) > len(y) {
		subVW(m.w[len(y):], m.w[len(y):], c)
	}
	m.normalize()
}

// addShifted sets m += x << (32*words).
func (m *mutNat) addShifted(x nat, words int) {
	if len(x) == 0 {
		return
	}
	m.normalize()
	n := max(len(m.w), words+len(x)) + 1
	m.resize(n)
	seg := m.w[words:]
	c := addVV(seg[:len(x)], seg, x)
	if len(seg) > len(x) {
		addVW(seg[len(x):], seg[len(x):], c)
	}
	m.normalize()
}

// difference replaces the larger of u and v by their difference and
// reports which one changed: +1 for u, -1 for v, 0 if they were equal.
func difference(u, v *mutNat) int {
	switch u.cmp(v) {
	case 0:
		return 0
	case 1:
		u.sub(v.w)
		return 1
	default:
		v.sub(u.w)
		return -1
	}
}
