// This file implements multiplication: schoolbook, Karatsuba and
// Toom-Cook-3, selected by operand length.

package natural

// Mul returns x * y. It fails with an overflow error when the product
// could exceed the configured MaxWords; the check runs before any work
// is done, so a failure never leaves partial results behind.
func (x Natural) Mul(y Natural) (Natural, error) {
	xl, yl := len(x.w), len(y.w)
	if xl == 0 || yl == 0 {
		return Natural{}, nil
	}
	t := limits()
	if sameWords(x.w, y.w) && xl > t.MulSquare {
		return x.Square()
	}
	if err := checkBits("natural.Mul", uint64(x.w.bitLen())+uint64(y.w.bitLen()), t.MaxWords); err != nil {
		return Natural{}, err
	}
	return Natural{mulNat(x.w, y.w, t)}, nil
}

// MulUint32 returns x * y.
func (x Natural) MulUint32(y uint32) Natural {
	return Natural{mulAddWW(x.w, y, 0)}
}

// MulUint64 returns x * y.
func (x Natural) MulUint64(y uint64) Natural {
	if y>>_W == 0 {
		return x.MulUint32(uint32(y))
	}
	return Natural{mulSchool(x.w, natFromUint64(y))}
}

// sameWords reports whether x and y are the same vector, the Go
// counterpart of calling x.Mul(x).
func sameWords(x, y nat) bool {
	return len(x) == len(y) && len(x) > 0 && &x[0] == &y[0]
}

// mulNat picks the multiplication algorithm by operand length.
func mulNat(x, y nat, t *Thresholds) nat {
	xl, yl := len(x), len(y)
	switch {
	case xl == 0 || yl == 0:
		return nil
	case xl < t.KaratsubaMul || yl < t.KaratsubaMul:
		return mulSchool(x, y)
	case xl < t.ToomCookMul && yl < t.ToomCookMul:
		return mulKaratsuba(x, y, t)
	default:
		return mulToomCook3(x, y, t)
	}
}

// mulSchool is the O(m*n) long multiplication.
func mulSchool(x, y nat) nat {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z := makeNat(m + n)
	for i, yi := range y {
		if yi != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, yi)
		}
	}
	return z.norm()
}

// mulKaratsuba splits both operands at half the longer length:
//
//	x = xh*B + xl, y = yh*B + yl, B = 2^(32*half)
//	x*y = p1*B² + (p3 - p1 - p2)*B + p2
//
// with p1 = xh*yh, p2 = xl*yl and p3 = (xh+xl)*(yh+yl).
func mulKaratsuba(x, y nat, t *Thresholds) nat {
	half := (max(len(x), len(y)) + 1) / 2

	xl, xh := x.lowWords(half), x.highWords(half)
	yl, yh := y.lowWords(half), y.highWords(half)

	p1 := mulNat(xh, yh, t)
	p2 := mulNat(xl, yl, t)
	p3 := mulNat(addNat(xh, xl), addNat(yh, yl), t)

	mid := subNat(subNat(p3, p1), p2)
	z := addNat(shlWords(p1, half), mid)
	return addNat(shlWords(z, half), p2)
}

// mulToomCook3 evaluates both operands, split into three pieces, at the
// points 0, 1, -1, 2 and infinity, multiplies pointwise and interpolates
// the five coefficients of the product. Only the value at -1 can be
// negative; its sign is tracked separately.
func mulToomCook3(a, b nat, t *Thresholds) nat {
	largest := max(len(a), len(b))
	k := (largest + 2) / 3

	a0, a1, a2 := toomSlices(a, k)
	b0, b1, b2 := toomSlices(b, k)

	v0 := mulNat(a0, b0, t)
	da1 := addNat(a2, a0)
	db1 := addNat(b2, b0)
	da, sa := absDiffNat(da1, a1)
	db, sb := absDiffNat(db1, b1)
	vm1 := mulNat(da, db, t)
	vm1Neg := sa*sb < 0
	da1 = addNat(da1, a1)
	db1 = addNat(db1, b1)
	v1 := mulNat(da1, db1, t)
	v2 := mulNat(
		subNat(shlNat(addNat(da1, a2), 1), a0),
		subNat(shlNat(addNat(db1, b2), 1), b0),
		t)
	vinf := mulNat(a2, b2, t)

	var t2, tm1 nat
	if vm1Neg {
		t2 = exactDivideBy3(addNat(v2, vm1))
		tm1 = shrNat(addNat(v1, vm1), 1)
	} else {
		t2 = exactDivideBy3(subNat(v2, vm1))
		tm1 = shrNat(subNat(v1, vm1), 1)
	}
	return toomInterpolate(v0, v1, t2, tm1, vinf, k)
}

// toomInterpolate finishes the Toom-Cook-3 interpolation shared by
// multiplication and squaring, given t2 = (v2 - v(-1))/3 and
// tm1 = (v1 - v(-1))/2. Every intermediate is non-negative.
func toomInterpolate(v0, v1, t2, tm1, vinf nat, k int) nat {
	t1 := subNat(v1, v0)
	t2 = shrNat(subNat(t2, t1), 1)
	t1 = subNat(subNat(t1, tm1), vinf)
	t2 = subNat(t2, shlNat(vinf, 1))
	tm1 = subNat(tm1, t2)

	z := addNat(shlWords(vinf, k), t2)
	z = addNat(shlWords(z, k), t1)
	z = addNat(shlWords(z, k), tm1)
	return addNat(shlWords(z, k), v0)
}

// toomSlices splits x into its k least significant words, the next k
// words and everything above, each normalized.
func toomSlices(x nat, k int) (lo, mid, hi nat) {
	lo = x.lowWords(k)
	mid = x.highWords(k).lowWords(k)
	hi = x.highWords(2 * k)
	return lo, mid, hi
}

// exactDivideBy3 returns x/3 for an x known to be a multiple of 3. It
// multiplies by the inverse of 3 mod 2^32 (0xAAAAAAAB) word by word,
// propagating the borrow that exact division implies.
func exactDivideBy3(x nat) nat {
	z := makeNat(len(x))
	var borrow uint32
	for i, xi := range x {
		w := xi - borrow
		if borrow > xi {
			borrow = 1
		} else {
			borrow = 0
		}
		q := w * 0xAAAAAAAB
		z[i] = q
		if q >= 0x55555556 {
			borrow++
			if q >= 0xAAAAAAAB {
				borrow++
			}
		}
	}
	return z.norm()
}
