package natural

import apperrors "github.com/agbru/exactsum/internal/errors"

// inverseMod32 returns the inverse of the odd word v modulo 2^32. The seed
// v is its own inverse modulo 8, and every Newton step t = t*(2 - v*t)
// doubles the number of correct low bits: 3, 6, 12, 24, 48.
func inverseMod32(v uint32) uint32 {
	t := v
	t *= 2 - v*t
	t *= 2 - v*t
	t *= 2 - v*t
	t *= 2 - v*t
	return t
}

// inverseMod64 lifts inverseMod32 to 64 bits with one more Newton step.
func inverseMod64(v uint64) uint64 {
	t := uint64(inverseMod32(uint32(v)))
	t *= 2 - v*t
	return t
}

// ModInverse2k returns the inverse of x modulo 2^k. Only odd values are
// invertible modulo a power of two.
func (x Natural) ModInverse2k(k uint) (Natural, error) {
	if x.w.bit(0) == 0 {
		return Natural{}, apperrors.PreconditionError{Op: "natural.ModInverse2k", Reason: "even value is not invertible modulo a power of two"}
	}
	if err := checkBits("natural.ModInverse2k", uint64(k), limits().MaxWords); err != nil {
		return Natural{}, err
	}
	if k == 0 {
		return Natural{}, nil
	}

	y := natFromUint64(inverseMod64(x.w.uint64()))
	if k <= 64 {
		return Natural{maskBits(y, k)}, nil
	}

	t := limits()
	for b := uint(64); b < k; {
		b = min(2*b, k)
		// x*y = 1 + e (mod 2^b), and y*(2 - x*y) = y - y*e.
		e := subNat(maskBits(mulNat(maskBits(x.w, b), y, t), b), nat{1})
		ye := maskBits(mulNat(y, e, t), b)
		if y.cmp(ye) < 0 {
			y = addNat(y, shlNat(nat{1}, b))
		}
		y = subNat(y, ye)
	}
	return Natural{y}, nil
}

// maskBits returns x mod 2^k.
func maskBits(x nat, k uint) nat {
	words := int(k / _W)
	if words >= len(x) {
		return x.clone()
	}
	z := makeNat(words + 1)
	copy(z, x[:words+1])
	if r := k % _W; r != 0 {
		z[words] &= 1<<r - 1
	} else {
		z[words] = 0
	}
	return z.norm()
}

// InversePow2Mod returns c * 2^-k mod p for odd p. It is the fixup step
// of Montgomery reduction: every round adds the multiple of p that clears
// the low word of c and then drops that word, so c stays below 2p and a
// single conditional subtraction finishes.
func (c Natural) InversePow2Mod(k uint, p Natural) (Natural, error) {
	switch {
	case len(p.w) == 0:
		return Natural{}, apperrors.DivisionByZeroError{Op: "natural.InversePow2Mod"}
	case p.w[0]&1 == 0:
		return Natural{}, apperrors.PreconditionError{Op: "natural.InversePow2Mod", Reason: "modulus must be odd"}
	}
	t := limits()
	cw := c.w
	if cw.cmp(p.w) >= 0 {
		_, cw = divRemNat(cw, p.w, t)
	}

	pw := p.w
	r := -inverseMod32(pw[0]) // p*r = -1 (mod 2^32)
	m := mutNatOf(cw, len(pw)+2)
	defer m.release()

	addMultiple := func(v uint32) {
		m.resize(max(len(m.w), len(pw)) + 2)
		carry := addMulVVW(m.w[:len(pw)], pw, v)
		addVW(m.w[len(pw):], m.w[len(pw):], carry)
	}
	for i := uint(0); i < k/_W; i++ {
		m.normalize()
		if len(m.w) == 0 {
			break
		}
		addMultiple(r * m.w[0])
		m.rsh(_W)
	}
	if rest := k % _W; rest != 0 {
		m.normalize()
		if len(m.w) != 0 {
			addMultiple((r * m.w[0]) & (1<<rest - 1))
			m.rsh(rest)
		}
	}

	m.normalize()
	for nat(m.w).cmp(pw) >= 0 {
		m.sub(pw)
	}
	return Natural{m.value()}, nil
}
