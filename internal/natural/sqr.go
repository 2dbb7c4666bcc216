package natural

import "math/bits"

// Square returns x * x. Like Mul it fails up front when the result could
// exceed the configured MaxWords.
func (x Natural) Square() (Natural, error) {
	if len(x.w) == 0 {
		return Natural{}, nil
	}
	t := limits()
	if err := checkBits("natural.Square", 2*uint64(x.w.bitLen()), t.MaxWords); err != nil {
		return Natural{}, err
	}
	return Natural{sqrNat(x.w, t)}, nil
}

func sqrNat(x nat, t *Thresholds) nat {
	switch n := len(x); {
	case n == 0:
		return nil
	case n < t.KaratsubaSquare:
		return sqrSchool(x)
	case n < t.ToomCookSquare:
		return sqrKaratsuba(x, t)
	default:
		return sqrToomCook3(x, t)
	}
}

// sqrSchool accumulates every cross product x[i]*x[j], i < j, once,
// doubles the sum with a one-bit shift and adds the diagonal squares.
func sqrSchool(x nat) nat {
	n := len(x)
	z := makeNat(2 * n)
	for i := 0; i < n-1; i++ {
		z[n+i] = addMulVVW(z[2*i+1:n+i], x[i+1:], x[i])
	}
	shlVU(z, z, 1)

	d := makeNat(2 * n)
	for i, xi := range x {
		d[2*i+1], d[2*i] = bits.Mul32(xi, xi)
	}
	addVV(z, z, d)
	return z.norm()
}

// sqrKaratsuba uses
//
//	x² = xh²*B² + ((xl+xh)² - xh² - xl²)*B + xl²
//
// with B = 2^(32*half).
func sqrKaratsuba(x nat, t *Thresholds) nat {
	half := (len(x) + 1) / 2
	xl, xh := x.lowWords(half), x.highWords(half)

	xhs := sqrNat(xh, t)
	xls := sqrNat(xl, t)
	mid := subNat(sqrNat(addNat(xl, xh), t), addNat(xhs, xls))

	z := addNat(shlWords(xhs, half), mid)
	return addNat(shlWords(z, half), xls)
}

// sqrToomCook3 is mulToomCook3 with both operands equal; the value at -1
// is a square and therefore never negative.
func sqrToomCook3(a nat, t *Thresholds) nat {
	k := (len(a) + 2) / 3
	a0, a1, a2 := toomSlices(a, k)

	v0 := sqrNat(a0, t)
	da1 := addNat(a2, a0)
	dm, _ := absDiffNat(da1, a1)
	vm1 := sqrNat(dm, t)
	da1 = addNat(da1, a1)
	v1 := sqrNat(da1, t)
	vinf := sqrNat(a2, t)
	v2 := sqrNat(subNat(shlNat(addNat(da1, a2), 1), a0), t)

	t2 := exactDivideBy3(subNat(v2, vm1))
	tm1 := shrNat(subNat(v1, vm1), 1)
	return toomInterpolate(v0, v1, t2, tm1, vinf, k)
}
