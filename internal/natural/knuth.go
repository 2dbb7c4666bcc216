package natural

import "math/bits"

// knuthDivRem handles the trivial cases, the one-word divisor and common
// powers of two before running Algorithm D.
func knuthDivRem(a, b nat, t *Thresholds) (q, r nat) {
	switch a.cmp(b) {
	case -1:
		return nil, a.clone()
	case 0:
		return nat{1}, nil
	}
	if len(b) == 1 {
		q, rw := divW(a, b[0])
		return q, natFromUint64(uint64(rw))
	}

	// Cancel a power of two common to both operands when it spans
	// enough whole words to shorten the main loop.
	if len(a) >= t.KnuthPow2Len {
		tz := min(a.trailingZeroBits(), b.trailingZeroBits())
		if tz >= uint(t.KnuthPow2Zeros*_W) {
			q, r = knuthDivRem(shrNat(a, tz), shrNat(b, tz), t)
			return q, shlNat(r, tz)
		}
	}
	return divKnuth(a, b)
}

// divKnuth is Algorithm D of Knuth, TAOCP vol. 2, section 4.3.1. It
// requires len(v) >= 2 and u >= v.
//
// The divisor is shifted so its top word has the high bit set, which
// bounds every quotient estimate qhat to at most two too large. Each
// estimate is refined against the second divisor word, then qhat*v is
// subtracted from the running remainder in place. If that borrows, v
// is added back and qhat decremented.
func divKnuth(u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n
	shift := uint(bits.LeadingZeros32(v[n-1]))

	vn := acquireScratch(n)
	defer releaseScratch(vn)
	shlVU(vn, v, shift)

	rem := newMutNat(len(u) + 1)
	defer rem.release()
	rem.resize(len(u) + 1)
	un := rem.w
	un[len(u)] = shlVU(un[:len(u)], u, shift)

	qhatv := acquireScratch(n + 1)
	defer releaseScratch(qhatv)

	q = makeNat(m + 1)
	vn1, vn2 := vn[n-1], vn[n-2]
	for j := m; j >= 0; j-- {
		qhat := uint32(_M)
		if ujn := un[j+n]; ujn != vn1 {
			var rhat uint32
			qhat, rhat = bits.Div32(ujn, un[j+n-1], vn1)

			x1, x2 := bits.Mul32(qhat, vn2)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vn1
				if rhat < prev {
					break // rhat no longer fits a word
				}
				x1, x2 = bits.Mul32(qhat, vn2)
			}
		}

		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv); c != 0 {
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	rem.w = un[:n]
	rem.rsh(shift)
	return q.norm(), rem.value()
}
