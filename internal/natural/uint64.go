// This file holds the mixed Natural/uint64 operations. They avoid
// materializing the uint64 operand (or its shifted form) as a Natural
// in the common accumulation paths.

package natural

import (
	"math/bits"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// FromUint64Shifted returns v << upShift.
func FromUint64Shifted(v uint64, upShift uint) (Natural, error) {
	return FromUint64(v).Lsh(upShift)
}

// AddUint64 returns x + v.
func (x Natural) AddUint64(v uint64) Natural {
	return Natural{addNat(x.w, natFromUint64(v))}
}

// AddShiftedUint64 returns x + (v << upShift).
func (x Natural) AddShiftedUint64(v uint64, upShift uint) (Natural, error) {
	if v == 0 {
		return x, nil
	}
	s, err := FromUint64Shifted(v, upShift)
	if err != nil {
		return Natural{}, err
	}
	return Natural{addNat(x.w, s.w)}, nil
}

// SubUint64 returns x - v. It fails when v > x.
func (x Natural) SubUint64(v uint64) (Natural, error) {
	return x.Sub(FromUint64(v))
}

// SubShiftedUint64 returns x - (v << upShift). It fails when the
// shifted value exceeds x.
func (x Natural) SubShiftedUint64(v uint64, upShift uint) (Natural, error) {
	s, err := FromUint64Shifted(v, upShift)
	if err != nil {
		return Natural{}, err
	}
	return x.Sub(s)
}

// SubFromUint64 returns v - x. It fails when x > v.
func (x Natural) SubFromUint64(v uint64) (Natural, error) {
	if x.CmpUint64(v) > 0 {
		return Natural{}, apperrors.PreconditionError{Op: "natural.SubFromUint64", Reason: "negative difference"}
	}
	return FromUint64(v - x.Uint64()), nil
}

// AbsDiffUint64 returns |x - v|.
func (x Natural) AbsDiffUint64(v uint64) Natural {
	return x.AbsDiff(FromUint64(v))
}

// CmpUint64 compares x with v.
func (x Natural) CmpUint64(v uint64) int {
	return x.w.cmp(natFromUint64(v))
}

// CmpShiftedUint64 compares x with v << upShift without building the
// shifted value.
func (x Natural) CmpShiftedUint64(v uint64, upShift uint) int {
	if v == 0 {
		if len(x.w) == 0 {
			return 0
		}
		return 1
	}
	xb := uint64(x.w.bitLen())
	vb := uint64(bits.Len64(v)) + uint64(upShift)
	switch {
	case xb < vb:
		return -1
	case xb > vb:
		return 1
	}
	// Equal bit lengths: compare the top bits, then whatever x has below
	// the shifted operand.
	if c := cmpUint64(x.ShiftedUint64(upShift), v); c != 0 {
		return c
	}
	if x.w.trailingZeroBits() < upShift {
		return 1
	}
	return 0
}

// ShiftedUint64 returns the low 64 bits of x >> n.
func (x Natural) ShiftedUint64(n uint) uint64 {
	j := int(n / _W)
	if j >= len(x.w) {
		return 0
	}
	s := n % _W
	var a [3]uint64
	for i := range a {
		if j+i < len(x.w) {
			a[i] = uint64(x.w[j+i])
		}
	}
	lo := a[0] | a[1]<<_W
	if s == 0 {
		return lo
	}
	return lo>>s | a[2]<<(2*_W-s)
}

// ShiftedUint32 returns the low 32 bits of x >> n.
func (x Natural) ShiftedUint32(n uint) uint32 {
	return uint32(x.ShiftedUint64(n))
}

// ProductUint64 returns the exact 128-bit product a*b.
func ProductUint64(a, b uint64) Natural {
	hi, lo := bits.Mul64(a, b)
	z := nat{uint32(lo), uint32(lo >> _W), uint32(hi), uint32(hi >> _W)}
	return Natural{z.norm()}
}

// SquareUint64 returns the exact 128-bit square a*a.
func SquareUint64(a uint64) Natural { return ProductUint64(a, a) }

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
