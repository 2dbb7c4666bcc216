package bigfloat

import (
	"math"

	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/natural"
)

// add returns (-1)^!p0 * t0 * 2^e0 + (-1)^!p1 * t1 * 2^e1. The operand
// with the larger exponent is shifted down to the smaller one, so the
// result exponent is min(e0, e1) and no bits are lost.
func add(p0 bool, t0 natural.Natural, e0 int32, p1 bool, t1 natural.Natural, e1 int32) (BigFloat, error) {
	switch {
	case t1.IsZero():
		return New(p0, t0, e0), nil
	case t0.IsZero():
		return New(p1, t1, e1), nil
	}
	if e0 > e1 {
		p0, t0, e0, p1, t1, e1 = p1, t1, e1, p0, t0, e0
	}
	shifted, err := t1.Lsh(uint(int64(e1) - int64(e0)))
	if err != nil {
		return BigFloat{}, err
	}
	if p0 == p1 {
		return New(p0, t0.Add(shifted), e0), nil
	}
	switch t0.Cmp(shifted) {
	case 0:
		return BigFloat{}, nil
	case 1:
		d, _ := t0.Sub(shifted)
		return New(p0, d, e0), nil
	default:
		d, _ := shifted.Sub(t0)
		return New(p1, d, e0), nil
	}
}

// addParts adds a decomposed float to x.
func (x BigFloat) addParts(p parts) (BigFloat, error) {
	if p.isZero() {
		return x, nil
	}
	return add(!x.negative, x.significand, x.exponent, p.nonNegative, natural.FromUint64(p.significand), p.exponent)
}

// Add returns x + y.
func (x BigFloat) Add(y BigFloat) (BigFloat, error) {
	return add(!x.negative, x.significand, x.exponent, !y.negative, y.significand, y.exponent)
}

// Sub returns x - y.
func (x BigFloat) Sub(y BigFloat) (BigFloat, error) {
	return x.Add(y.Neg())
}

// AddFloat64 returns x + z.
func (x BigFloat) AddFloat64(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.AddFloat64", z)
	if err != nil {
		return BigFloat{}, err
	}
	return x.addParts(p)
}

// SubFloat64 returns x - z.
func (x BigFloat) SubFloat64(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.SubFloat64", z)
	if err != nil {
		return BigFloat{}, err
	}
	return x.addParts(p.neg())
}

// AddFloat32 returns x + z.
func (x BigFloat) AddFloat32(z float32) (BigFloat, error) {
	p, err := float32Parts("bigfloat.AddFloat32", z)
	if err != nil {
		return BigFloat{}, err
	}
	return x.addParts(p)
}

// exponentSum returns e0 + e1, or an overflow error when it leaves the
// int32 range.
func exponentSum(op string, e0, e1 int64) (int32, error) {
	e := e0 + e1
	if e < math.MinInt32 || e > math.MaxInt32 {
		return 0, apperrors.NewOverflowError(op, "exponent %d out of range", e)
	}
	return int32(e), nil
}

// Mul returns x * y.
func (x BigFloat) Mul(y BigFloat) (BigFloat, error) {
	if x.IsZero() || y.IsZero() {
		return BigFloat{}, nil
	}
	e, err := exponentSum("bigfloat.Mul", int64(x.exponent), int64(y.exponent))
	if err != nil {
		return BigFloat{}, err
	}
	t, err := x.significand.Mul(y.significand)
	if err != nil {
		return BigFloat{}, err
	}
	return New(x.negative == y.negative, t, e), nil
}

// MulFloat64 returns x * z.
func (x BigFloat) MulFloat64(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.MulFloat64", z)
	if err != nil {
		return BigFloat{}, err
	}
	return x.Mul(fromParts(p))
}

// Square returns x * x.
func (x BigFloat) Square() (BigFloat, error) {
	if x.IsZero() {
		return BigFloat{}, nil
	}
	e, err := exponentSum("bigfloat.Square", int64(x.exponent), int64(x.exponent))
	if err != nil {
		return BigFloat{}, err
	}
	t, err := x.significand.Square()
	if err != nil {
		return BigFloat{}, err
	}
	return New(true, t, e), nil
}
