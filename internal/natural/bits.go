package natural

import (
	"math/bits"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Bit returns the value of the i'th bit of x.
func (x Natural) Bit(i uint) uint { return x.w.bit(i) }

// TestBit reports whether the i'th bit of x is set.
func (x Natural) TestBit(i uint) bool { return x.w.bit(i) == 1 }

// LowestSetBit returns the index of the lowest set bit of x, or -1 for zero.
func (x Natural) LowestSetBit() int {
	if len(x.w) == 0 {
		return -1
	}
	return int(x.w.trailingZeroBits())
}

// TrailingZeroBits returns the number of consecutive zero bits at the
// least significant end of x. It is 0 for zero.
func (x Natural) TrailingZeroBits() uint { return x.w.trailingZeroBits() }

// BitCount returns the number of set bits in x.
func (x Natural) BitCount() int {
	n := 0
	for _, w := range x.w {
		n += bits.OnesCount32(w)
	}
	return n
}

// SetBit returns x with bit i set. It fails when bit i lies beyond the
// configured MaxWords.
func (x Natural) SetBit(i uint) (Natural, error) {
	if err := checkBitIndex("natural.SetBit", x, i); err != nil {
		return Natural{}, err
	}
	return x.withBit(i, func(w, m uint32) uint32 { return w | m }), nil
}

// ClearBit returns x with bit i cleared.
func (x Natural) ClearBit(i uint) Natural {
	if x.w.bit(i) == 0 {
		return x
	}
	return x.withBit(i, func(w, m uint32) uint32 { return w &^ m })
}

// FlipBit returns x with bit i inverted. It fails under the same
// condition as SetBit.
func (x Natural) FlipBit(i uint) (Natural, error) {
	if err := checkBitIndex("natural.FlipBit", x, i); err != nil {
		return Natural{}, err
	}
	return x.withBit(i, func(w, m uint32) uint32 { return w ^ m }), nil
}

// checkBitIndex rejects an index that would grow x past MaxWords.
// Indices inside x never fail.
func checkBitIndex(op string, x Natural, i uint) error {
	if uint64(i) < uint64(len(x.w))*_W {
		return nil
	}
	if maxWords := limits().MaxWords; uint64(i) >= uint64(maxWords)*_W {
		return apperrors.NewOverflowError(op, "bit %d exceeds the limit of %d words", i, maxWords)
	}
	return nil
}

func (x Natural) withBit(i uint, op func(w, mask uint32) uint32) Natural {
	j := int(i / _W)
	n := len(x.w)
	if j >= n {
		n = j + 1
	}
	z := make(nat, n)
	copy(z, x.w)
	z[j] = op(z[j], 1<<(i%_W))
	return Natural{z.norm()}
}
