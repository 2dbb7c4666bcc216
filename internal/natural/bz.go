package natural

import "math/bits"

// divBurnikelZiegler implements the recursive division of Burnikel and
// Ziegler, "Fast Recursive Division", MPI-I-98-1-022.
//
// The divisor is shifted so its length is a multiple n of a power of two
// with the high bit set. The dividend, shifted by the same amount, is
// cut into t blocks of n words and divided two blocks at a time by
// divide2n1n, schoolbook fashion, with each remainder carried into the
// next block.
func divBurnikelZiegler(a, b nat, t *Thresholds) (q, r nat) {
	s := len(b)
	if len(a) < s {
		return nil, a.clone()
	}

	m := 1 << bits.Len(uint(s/t.BurnikelZiegler))
	j := (s + m - 1) / m
	n := j * m
	n32 := uint64(n) * _W
	var sigma uint
	if bl := uint64(b.bitLen()); n32 > bl {
		sigma = uint(n32 - bl)
	}
	bShifted := shlNat(b, sigma)
	aShifted := shlNat(a, sigma)

	// One extra bit guarantees the top block is smaller than the divisor.
	blocks := int((uint64(aShifted.bitLen()) + n32) / n32)
	if blocks < 2 {
		blocks = 2
	}

	z := joinBlocks(
		getBlock(aShifted, blocks-2, blocks, n),
		getBlock(aShifted, blocks-1, blocks, n),
		n)

	quotient := newMutNat(len(a) + 1)
	defer quotient.release()

	var qi, ri nat
	for i := blocks - 2; i > 0; i-- {
		qi, ri = divide2n1n(z, bShifted, t)
		z = joinBlocks(getBlock(aShifted, i-1, blocks, n), ri, n)
		quotient.addShifted(qi, i*n)
	}
	qi, ri = divide2n1n(z, bShifted, t)
	quotient.addShifted(qi, 0)

	return quotient.value(), shrNat(ri, sigma)
}

// divide2n1n divides a < b*2^(32n) by the n-word divisor b. Odd or small
// n falls back to Algorithm D; otherwise the dividend is viewed as four
// half blocks [a1,a2,a3,a4] and reduced by two 3n/2n divisions.
func divide2n1n(a, b nat, t *Thresholds) (q, r nat) {
	n := len(b)
	if n%2 != 0 || n < t.BurnikelZiegler {
		return knuthDivRem(a, b, t)
	}
	half := n / 2

	q1, r1 := divide3n2n(a.highWords(half), b, t)
	q2, r2 := divide3n2n(joinBlocks(a.lowWords(half), r1, half), b, t)
	return joinBlocks(q2, q1, half), r2
}

// divide3n2n divides a = [a1,a2,a3] by b = [b1,b2], each piece n words,
// where a < b*2^(32n). The quotient is estimated from [a1,a2]/b1 and then
// corrected by adding b back at most twice.
func divide3n2n(a, b nat, t *Thresholds) (q, r nat) {
	n := len(b) / 2
	a12 := a.highWords(n)
	b1 := b.highWords(n)
	b2 := b.lowWords(n)

	var d nat
	if a.cmpShifted(b1, 2*n) < 0 {
		// a1 < b1
		q, r = divide2n1n(a12, b1, t)
		d = mulNat(q, b2, t)
	} else {
		// q = 2^(32n) - 1, r = a12 - b1*2^(32n) + b1
		q = ones(n)
		r = subNat(addNat(a12, b1), shlWords(b1, n))
		d = subNat(shlWords(b2, n), b2)
	}

	// r*2^(32n) + a3 - d, keeping r non-negative until the corrections
	// are done.
	r = joinBlocks(a.lowWords(n), r, n)
	for r.cmp(d) < 0 {
		r = addNat(r, b)
		q = subNat(q, nat{1})
	}
	return q, subNat(r, d)
}

// getBlock returns block index of x cut into numBlocks blocks of n words,
// counted from the least significant end. The top block holds whatever
// lies above the others. The result shares x's backing array.
func getBlock(x nat, index, numBlocks, n int) nat {
	start := index * n
	if start >= len(x) {
		return nil
	}
	end := len(x)
	if index < numBlocks-1 {
		end = min(start+n, len(x))
	}
	return x[start:end].norm()
}

// joinBlocks returns lo + hi*2^(32n) for lo < 2^(32n).
func joinBlocks(lo, hi nat, n int) nat {
	if len(hi) == 0 {
		return lo.clone()
	}
	z := makeNat(n + len(hi))
	copy(z, lo)
	copy(z[n:], hi)
	return z
}

// cmpShifted compares x with y*2^(32*words).
func (x nat) cmpShifted(y nat, words int) int {
	if len(y) == 0 {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	yl := len(y) + words
	if len(x) != yl {
		if len(x) < yl {
			return -1
		}
		return 1
	}
	if c := x[words:].cmp(y); c != 0 {
		return c
	}
	for _, w := range x[:words] {
		if w != 0 {
			return 1
		}
	}
	return 0
}

// ones returns 2^(32n) - 1.
func ones(n int) nat {
	z := makeNat(n)
	for i := range z {
		z[i] = _M
	}
	return z
}
