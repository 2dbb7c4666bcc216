package accumulate

import (
	"github.com/agbru/exactsum/internal/bigfloat"
)

// ExactName is the registry name of Exact.
const ExactName = "exact"

// Exact accumulates into a BigFloat, so every running value is the exact
// mathematical result of its inputs. Rounding happens only in Float64
// and Float32.
type Exact struct {
	v bigfloat.BigFloat
}

// NewExact returns a cleared exact accumulator.
func NewExact() *Exact { return &Exact{} }

// Name returns the registry name.
func (a *Exact) Name() string { return ExactName }

// IsExact reports true: running values are never rounded.
func (a *Exact) IsExact() bool { return true }

// NoOverflow reports true: no input sequence makes Exact overflow.
func (a *Exact) NoOverflow() bool { return true }

// Clear resets the running value to zero.
func (a *Exact) Clear() { a.v = bigfloat.Zero() }

// BigFloat returns the running value.
func (a *Exact) BigFloat() bigfloat.BigFloat { return a.v }

// AddBigFloat adds an exact value.
func (a *Exact) AddBigFloat(x bigfloat.BigFloat) error {
	return a.set(a.v.Add(x))
}

func (a *Exact) set(v bigfloat.BigFloat, err error) error {
	if err != nil {
		return err
	}
	a.v = v
	return nil
}

// Add adds z.
func (a *Exact) Add(z float64) error { return a.set(a.v.AddFloat64(z)) }

// Add2 adds z*z.
func (a *Exact) Add2(z float64) error { return a.set(a.v.Add2(z)) }

// AddAbs adds |z|.
func (a *Exact) AddAbs(z float64) error { return a.set(a.v.AddAbs(z)) }

// AddProduct adds z0*z1.
func (a *Exact) AddProduct(z0, z1 float64) error { return a.set(a.v.AddProduct(z0, z1)) }

// AddL1 adds |z0-z1|.
func (a *Exact) AddL1(z0, z1 float64) error { return a.set(a.v.AddL1(z0, z1)) }

// AddL2 adds (z0-z1)^2.
func (a *Exact) AddL2(z0, z1 float64) error { return a.set(a.v.AddL2(z0, z1)) }

// AddAll adds every element of zs. A non-finite element rejects the
// whole call and leaves the running value unchanged.
func (a *Exact) AddAll(zs []float64) error { return a.set(a.v.AddAll(zs)) }

// AddAbsAll adds the absolute value of every element of zs.
func (a *Exact) AddAbsAll(zs []float64) error { return a.set(a.v.AddAbsAll(zs)) }

// Add2All adds the square of every element of zs.
func (a *Exact) Add2All(zs []float64) error { return a.set(a.v.Add2All(zs)) }

// AddProducts adds the dot product of z0 and z1, which must have
// equal length.
func (a *Exact) AddProducts(z0, z1 []float64) error {
	return a.set(a.v.AddProducts(z0, z1))
}

// AddL1Distance adds the L1 distance between z0 and z1.
func (a *Exact) AddL1Distance(z0, z1 []float64) error {
	return a.set(a.v.AddL1Distance(z0, z1))
}

// AddL2Distance adds the squared L2 distance between z0 and z1.
func (a *Exact) AddL2Distance(z0, z1 []float64) error {
	return a.set(a.v.AddL2Distance(z0, z1))
}

// Float64 returns the running value rounded to nearest-even.
func (a *Exact) Float64() float64 { return a.v.Float64() }

// Float32 is like Float64 but rounds to float32 directly, without
// double rounding through float64.
func (a *Exact) Float32() float32 { return a.v.Float32() }

// Value returns the running bigfloat.BigFloat.
func (a *Exact) Value() any { return a.v }
