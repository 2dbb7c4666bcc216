package natural

import "math"

// Sqrt returns the integer square root of x, the largest r with r*r <= x.
//
// Newton's iteration x' = (x + n/x) / 2 decreases monotonically towards
// the root from any starting point at or above it, so the seed is taken
// from a float64 estimate rounded up, and the loop stops at the first
// step that fails to decrease.
func (x Natural) Sqrt() Natural {
	switch {
	case len(x.w) == 0:
		return Zero()
	case x.CmpUint64(4) < 0:
		return One()
	}

	if x.w.bitLen() <= 63 {
		v := x.w.uint64()
		xk := uint64(math.Sqrt(float64(v))) + 1
		for {
			xk1 := (xk + v/xk) / 2
			if xk1 >= xk {
				return FromUint64(xk)
			}
			xk = xk1
		}
	}

	t := limits()
	shift := uint(x.w.bitLen() - 63)
	if shift%2 == 1 {
		shift++
	}
	hi := shrNat(x.w, shift).uint64()
	seed := uint64(math.Ceil(math.Sqrt(float64(hi)))) + 2
	xk := shlNat(natFromUint64(seed), shift/2)
	for {
		q, _ := divRemNat(x.w, xk, t)
		xk1 := shrNat(addNat(xk, q), 1)
		if xk1.cmp(xk) >= 0 {
			return Natural{xk}
		}
		xk = xk1
	}
}
