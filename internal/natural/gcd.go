package natural

import (
	"math/bits"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// GCD returns the greatest common divisor of x and y. GCD(x, 0) is x, and
// GCD(0, 0) is 0.
func (x Natural) GCD(y Natural) Natural {
	switch {
	case len(y.w) == 0:
		return x
	case len(x.w) == 0:
		return y
	}
	return Natural{gcdNat(x.w, y.w, limits())}
}

// ReduceRatio returns n/g and d/g where g = GCD(n, d), so the ratio n/d
// is in lowest terms. A zero denominator is a division by zero.
func ReduceRatio(n, d Natural) (Natural, Natural, error) {
	if len(d.w) == 0 {
		return Natural{}, Natural{}, apperrors.DivisionByZeroError{Op: "natural.ReduceRatio"}
	}
	if len(n.w) == 0 {
		return Natural{}, One(), nil
	}

	// Common powers of two come off by shifting.
	if tz := min(n.w.trailingZeroBits(), d.w.trailingZeroBits()); tz > 0 {
		n, d = n.Rsh(tz), d.Rsh(tz)
	}
	g := n.GCD(d)
	if g.IsOne() {
		return n, d, nil
	}
	t := limits()
	nq, _ := divRemNat(n.w, g.w, t)
	dq, _ := divRemNat(d.w, g.w, t)
	return Natural{nq}, Natural{dq}, nil
}

// gcdNat alternates Euclidean remainder steps, which shrink operands of
// very different lengths quickly, with the binary algorithm once the
// lengths are within a word of each other.
func gcdNat(a, b nat, t *Thresholds) nat {
	if a.cmp(b) < 0 {
		a, b = b, a
	}
	for len(b) != 0 {
		if len(a)-len(b) < 2 {
			return binaryGCD(a, b)
		}
		_, r := divRemNat(a, b, t)
		a, b = b, r
	}
	return a.clone()
}

// binaryGCD is Algorithm B of Knuth, TAOCP vol. 2, section 4.5.2, run in
// place on two scratch values. a and b must be non-zero.
func binaryGCD(a, b nat) nat {
	u := mutNatOf(a, 1)
	defer u.release()
	v := mutNatOf(b, 1)
	defer v.release()

	s1, s2 := u.lowestSetBit(), v.lowestSetBit()
	k := uint(min(s1, s2))
	u.rsh(k)
	v.rsh(k)

	// Whichever of u and v is now even (or either, if both are odd after
	// removing the common power) is reduced first.
	t := u
	if uint(s1) == k {
		t = v
	}
loop:
	for {
		lb := t.lowestSetBit()
		if lb < 0 {
			break
		}
		t.rsh(uint(lb))

		if len(u.w) < 2 && len(v.w) < 2 {
			g := binaryGCDWord(u.w[0], v.w[0])
			return shlNat(nat{g}, k)
		}

		switch difference(u, v) {
		case 0:
			break loop
		case 1:
			t = u
		default:
			t = v
		}
	}
	u.lsh(k)
	return u.value()
}

// binaryGCDWord is the single-word binary GCD.
func binaryGCDWord(a, b uint32) uint32 {
	switch {
	case b == 0:
		return a
	case a == 0:
		return b
	}
	az, bz := bits.TrailingZeros32(a), bits.TrailingZeros32(b)
	a >>= az
	b >>= bz
	for a != b {
		if a > b {
			a -= b
			a >>= bits.TrailingZeros32(a)
		} else {
			b -= a
			b >>= bits.TrailingZeros32(b)
		}
	}
	return a << min(az, bz)
}
