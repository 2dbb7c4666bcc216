// This file holds the accumulation identities: each adds an exactly
// computed term (a square, a product, an absolute difference) built from
// float64 inputs without rounding.

package bigfloat

import (
	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/natural"
)

// square returns p*p as a decomposed term. The significand of a float64
// has at most 53 bits, so the square always fits in 128 bits.
func (p parts) square() (bool, natural.Natural, int32) {
	return true, natural.SquareUint64(p.significand), 2 * p.exponent
}

// product returns p*q as a decomposed term.
func (p parts) product(q parts) (bool, natural.Natural, int32) {
	return p.nonNegative == q.nonNegative, natural.ProductUint64(p.significand, q.significand), p.exponent + q.exponent
}

// addTerm adds a term given as sign, significand and exponent.
func (x BigFloat) addTerm(p bool, t natural.Natural, e int32) (BigFloat, error) {
	return add(!x.negative, x.significand, x.exponent, p, t, e)
}

// Add2 returns x + z².
func (x BigFloat) Add2(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.Add2", z)
	if err != nil || p.isZero() {
		return x, err
	}
	return x.addTerm(p.square())
}

// AddAbs returns x + |z|.
func (x BigFloat) AddAbs(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.AddAbs", z)
	if err != nil {
		return BigFloat{}, err
	}
	return x.addParts(p.abs())
}

// AddProduct returns x + z0*z1.
func (x BigFloat) AddProduct(z0, z1 float64) (BigFloat, error) {
	p0, p1, err := pairParts("bigfloat.AddProduct", z0, z1)
	if err != nil || p0.isZero() || p1.isZero() {
		return x, err
	}
	return x.addTerm(p0.product(p1))
}

// addProductTwice returns x + 2*z0*z1.
func (x BigFloat) addProductTwice(p0, p1 parts) (BigFloat, error) {
	if p0.isZero() || p1.isZero() {
		return x, nil
	}
	nn, t, e := p0.product(p1)
	return x.addTerm(nn, t, e+1)
}

// AddL1 returns x + |z0 - z1|.
func (x BigFloat) AddL1(z0, z1 float64) (BigFloat, error) {
	p0, p1, err := pairParts("bigfloat.AddL1", z0, z1)
	if err != nil {
		return x, err
	}
	switch {
	case z0 > z1:
		return x.addPair(p0, p1.neg())
	case z0 < z1:
		return x.addPair(p0.neg(), p1)
	}
	return x, nil
}

// AddL2 returns x + (z0 - z1)², expanded as z0² + z1² - 2*z0*z1 so that
// every term is exact.
func (x BigFloat) AddL2(z0, z1 float64) (BigFloat, error) {
	p0, p1, err := pairParts("bigfloat.AddL2", z0, z1)
	if err != nil {
		return x, err
	}
	s := x
	if !p0.isZero() {
		if s, err = s.addTerm(p0.square()); err != nil {
			return BigFloat{}, err
		}
	}
	if !p1.isZero() {
		if s, err = s.addTerm(p1.square()); err != nil {
			return BigFloat{}, err
		}
	}
	return s.addProductTwice(p0, p1.neg())
}

// Difference returns the exact value of z0 - z1.
func Difference(z0, z1 float64) (BigFloat, error) {
	p0, p1, err := pairParts("bigfloat.Difference", z0, z1)
	if err != nil {
		return BigFloat{}, err
	}
	return BigFloat{}.addPair(p0, p1.neg())
}

// Axpy returns the exact value of a*x + y, a fused multiply-add without
// the final rounding.
func Axpy(a, x, y float64) (BigFloat, error) {
	s, err := FromFloat64(y)
	if err != nil {
		return BigFloat{}, err
	}
	return s.AddProduct(a, x)
}

// AxpyBigFloat returns a*x + y for an exact x.
func AxpyBigFloat(a float64, x BigFloat, y float64) (BigFloat, error) {
	ax, err := x.MulFloat64(a)
	if err != nil {
		return BigFloat{}, err
	}
	return ax.AddFloat64(y)
}

// AxpyAll returns a[i]*x[i] + y[i] for every i. The slices must have the
// same length.
func AxpyAll(a, x, y []float64) ([]BigFloat, error) {
	if len(a) != len(x) || len(a) != len(y) {
		return nil, lengthError("bigfloat.AxpyAll", len(a), len(x), len(y))
	}
	out := make([]BigFloat, len(a))
	for i := range a {
		v, err := Axpy(a[i], x[i], y[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (x BigFloat) addPair(p0, p1 parts) (BigFloat, error) {
	s, err := x.addParts(p0)
	if err != nil {
		return BigFloat{}, err
	}
	return s.addParts(p1)
}

func pairParts(op string, z0, z1 float64) (parts, parts, error) {
	p0, err := float64Parts(op, z0)
	if err != nil {
		return parts{}, parts{}, err
	}
	p1, err := float64Parts(op, z1)
	if err != nil {
		return parts{}, parts{}, err
	}
	return p0, p1, nil
}

func lengthError(op string, lengths ...int) error {
	return apperrors.NewPreconditionError(op, "mismatched lengths %v", lengths)
}

// ─────────────────────────────────────────────────────────────────────────────
// Array Forms
// ─────────────────────────────────────────────────────────────────────────────

// AddAll returns x + sum(zs).
func (x BigFloat) AddAll(zs []float64) (BigFloat, error) {
	return fold(x, zs, BigFloat.AddFloat64)
}

// AddAbsAll returns x + sum(|zs[i]|).
func (x BigFloat) AddAbsAll(zs []float64) (BigFloat, error) {
	return fold(x, zs, BigFloat.AddAbs)
}

// Add2All returns x + sum(zs[i]²).
func (x BigFloat) Add2All(zs []float64) (BigFloat, error) {
	return fold(x, zs, BigFloat.Add2)
}

// AddProducts returns x + sum(z0[i]*z1[i]).
func (x BigFloat) AddProducts(z0, z1 []float64) (BigFloat, error) {
	return fold2(x, "bigfloat.AddProducts", z0, z1, BigFloat.AddProduct)
}

// AddL1Distance returns x + sum(|z0[i] - z1[i]|).
func (x BigFloat) AddL1Distance(z0, z1 []float64) (BigFloat, error) {
	return fold2(x, "bigfloat.AddL1Distance", z0, z1, BigFloat.AddL1)
}

// AddL2Distance returns x + sum((z0[i] - z1[i])²).
func (x BigFloat) AddL2Distance(z0, z1 []float64) (BigFloat, error) {
	return fold2(x, "bigfloat.AddL2Distance", z0, z1, BigFloat.AddL2)
}

func fold(x BigFloat, zs []float64, step func(BigFloat, float64) (BigFloat, error)) (BigFloat, error) {
	var err error
	for _, z := range zs {
		if x, err = step(x, z); err != nil {
			return BigFloat{}, err
		}
	}
	return x, nil
}

func fold2(x BigFloat, op string, z0, z1 []float64, step func(BigFloat, float64, float64) (BigFloat, error)) (BigFloat, error) {
	if len(z0) != len(z1) {
		return BigFloat{}, lengthError(op, len(z0), len(z1))
	}
	var err error
	for i := range z0 {
		if x, err = step(x, z0[i], z1[i]); err != nil {
			return BigFloat{}, err
		}
	}
	return x, nil
}
