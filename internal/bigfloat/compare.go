package bigfloat

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Cmp compares x and y and returns -1, 0 or +1.
func (x BigFloat) Cmp(y BigFloat) int {
	sx, sy := x.Sign(), y.Sign()
	switch {
	case sx != sy:
		if sx < sy {
			return -1
		}
		return 1
	case sx == 0:
		return 0
	}
	c := cmpMagnitude(x, y)
	if x.negative {
		return -c
	}
	return c
}

// cmpMagnitude compares |x| and |y| for non-zero x and y. Values whose
// top bits sit at different positions compare by position; otherwise
// the significand with the larger exponent is aligned to the other,
// which cannot make it longer than the other significand.
func cmpMagnitude(x, y BigFloat) int {
	tx := int64(x.exponent) + int64(x.significand.BitLen())
	ty := int64(y.exponent) + int64(y.significand.BitLen())
	switch {
	case tx < ty:
		return -1
	case tx > ty:
		return 1
	}
	switch de := int64(x.exponent) - int64(y.exponent); {
	case de > 0:
		xs, _ := x.significand.Lsh(uint(de))
		return xs.Cmp(y.significand)
	case de < 0:
		ys, _ := y.significand.Lsh(uint(-de))
		return x.significand.Cmp(ys)
	}
	return x.significand.Cmp(y.significand)
}

// Equal reports whether x and y denote the same number.
func (x BigFloat) Equal(y BigFloat) bool {
	rx, ry := x.Reduce(), y.Reduce()
	return rx.negative == ry.negative && rx.exponent == ry.exponent && rx.significand.Equal(ry.significand)
}

// Hash returns a 64-bit hash of the number x denotes; equal values hash
// equally whatever their form.
func (x BigFloat) Hash() uint64 {
	r := x.Reduce()
	var head [5]byte
	if r.negative {
		head[0] = 1
	}
	binary.BigEndian.PutUint32(head[1:], uint32(r.exponent))

	d := xxhash.New()
	_, _ = d.Write(head[:])
	_, _ = d.Write(r.significand.Bytes())
	return d.Sum64()
}

// String returns the reduced form as "[-]0x<hex significand>p<exponent>".
func (x BigFloat) String() string {
	r := x.Reduce()
	sign := ""
	if r.negative {
		sign = "-"
	}
	return fmt.Sprintf("%s0x%sp%d", sign, r.significand.String(), r.exponent)
}
