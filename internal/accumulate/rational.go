package accumulate

import (
	"math/big"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// RationalName is the registry name of Rational.
const RationalName = "rational"

// Rational accumulates exactly in math/big rationals. It is an
// independent exact reference for cross-checking Exact.
type Rational struct {
	v big.Rat
}

// NewRational returns a cleared rational accumulator.
func NewRational() *Rational { return &Rational{} }

// Name returns the registry name.
func (a *Rational) Name() string { return RationalName }

// IsExact reports true.
func (a *Rational) IsExact() bool { return true }

// NoOverflow reports true.
func (a *Rational) NoOverflow() bool { return true }

// Clear resets the running value to zero.
func (a *Rational) Clear() { a.v.SetInt64(0) }

func rat(op string, z float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(z)
	if r == nil {
		return nil, apperrors.NewPreconditionError(op, "non-finite input %v", z)
	}
	return r, nil
}

// terms converts every input before anything is added.
func terms(op string, zs []float64) ([]*big.Rat, error) {
	rs := make([]*big.Rat, len(zs))
	for i, z := range zs {
		r, err := rat(op, z)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}

func (a *Rational) apply(op string, zs []float64, term func(rs []*big.Rat) *big.Rat) error {
	rs, err := terms(op, zs)
	if err != nil {
		return err
	}
	a.v.Add(&a.v, term(rs))
	return nil
}

// Add adds z.
func (a *Rational) Add(z float64) error {
	return a.apply("accumulate.Add", []float64{z}, func(rs []*big.Rat) *big.Rat { return rs[0] })
}

// Add2 adds z*z.
func (a *Rational) Add2(z float64) error {
	return a.apply("accumulate.Add2", []float64{z}, func(rs []*big.Rat) *big.Rat {
		return rs[0].Mul(rs[0], rs[0])
	})
}

// AddAbs adds |z|.
func (a *Rational) AddAbs(z float64) error {
	return a.apply("accumulate.AddAbs", []float64{z}, func(rs []*big.Rat) *big.Rat { return rs[0].Abs(rs[0]) })
}

// AddProduct adds z0*z1.
func (a *Rational) AddProduct(z0, z1 float64) error {
	return a.apply("accumulate.AddProduct", []float64{z0, z1}, func(rs []*big.Rat) *big.Rat {
		return rs[0].Mul(rs[0], rs[1])
	})
}

// AddL1 adds |z0-z1|.
func (a *Rational) AddL1(z0, z1 float64) error {
	return a.apply("accumulate.AddL1", []float64{z0, z1}, func(rs []*big.Rat) *big.Rat {
		d := rs[0].Sub(rs[0], rs[1])
		return d.Abs(d)
	})
}

// AddL2 adds (z0-z1)^2.
func (a *Rational) AddL2(z0, z1 float64) error {
	return a.apply("accumulate.AddL2", []float64{z0, z1}, func(rs []*big.Rat) *big.Rat {
		d := rs[0].Sub(rs[0], rs[1])
		return d.Mul(d, d)
	})
}

func (a *Rational) fold(op string, zs []float64, term func(r *big.Rat) *big.Rat) error {
	return a.apply(op, zs, func(rs []*big.Rat) *big.Rat {
		s := new(big.Rat)
		for _, r := range rs {
			s.Add(s, term(r))
		}
		return s
	})
}

func (a *Rational) fold2(op string, z0, z1 []float64, term func(x, y *big.Rat) *big.Rat) error {
	if err := checkLengths(op, z0, z1); err != nil {
		return err
	}
	n := len(z0)
	both := append(append(make([]float64, 0, 2*n), z0...), z1...)
	return a.apply(op, both, func(rs []*big.Rat) *big.Rat {
		s := new(big.Rat)
		for i := 0; i < n; i++ {
			s.Add(s, term(rs[i], rs[n+i]))
		}
		return s
	})
}

// AddAll adds every element of zs. A non-finite element rejects the
// whole call and leaves the running value unchanged.
func (a *Rational) AddAll(zs []float64) error {
	return a.fold("accumulate.AddAll", zs, func(r *big.Rat) *big.Rat { return r })
}

// AddAbsAll adds the absolute value of every element of zs.
func (a *Rational) AddAbsAll(zs []float64) error {
	return a.fold("accumulate.AddAbsAll", zs, func(r *big.Rat) *big.Rat { return r.Abs(r) })
}

// Add2All adds the square of every element of zs.
func (a *Rational) Add2All(zs []float64) error {
	return a.fold("accumulate.Add2All", zs, func(r *big.Rat) *big.Rat { return r.Mul(r, r) })
}

// AddProducts adds the dot product of z0 and z1, which must have
// equal length.
func (a *Rational) AddProducts(z0, z1 []float64) error {
	return a.fold2("accumulate.AddProducts", z0, z1, func(x, y *big.Rat) *big.Rat { return x.Mul(x, y) })
}

// AddL1Distance adds the L1 distance between z0 and z1.
func (a *Rational) AddL1Distance(z0, z1 []float64) error {
	return a.fold2("accumulate.AddL1Distance", z0, z1, func(x, y *big.Rat) *big.Rat {
		d := x.Sub(x, y)
		return d.Abs(d)
	})
}

// AddL2Distance adds the squared L2 distance between z0 and z1.
func (a *Rational) AddL2Distance(z0, z1 []float64) error {
	return a.fold2("accumulate.AddL2Distance", z0, z1, func(x, y *big.Rat) *big.Rat {
		d := x.Sub(x, y)
		return d.Mul(d, d)
	})
}

// Float64 returns the running value rounded to the nearest float64.
func (a *Rational) Float64() float64 {
	f, _ := a.v.Float64()
	return f
}

// Float32 returns the running value rounded to the nearest float32.
func (a *Rational) Float32() float32 {
	f, _ := a.v.Float32()
	return f
}

// Value returns a copy of the running *big.Rat.
func (a *Rational) Value() any { return new(big.Rat).Set(&a.v) }
