package accumulate

import (
	"math"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Names of the float64 accumulators.
const (
	NaiveName = "naive"
	KahanName = "kahan"
)

// summer is a float64 running sum.
type summer interface {
	add(x float64)
	sum() float64
}

// naiveSum adds with plain float64 rounding at every step.
type naiveSum struct{ s float64 }

func (n *naiveSum) add(x float64) { n.s += x }
func (n *naiveSum) sum() float64  { return n.s }

// neumaierSum is Kahan summation with Neumaier's branch, which also
// compensates when the addend is larger than the running sum.
type neumaierSum struct{ s, c float64 }

func (k *neumaierSum) add(x float64) {
	t := k.s + x
	if math.Abs(k.s) >= math.Abs(x) {
		k.c += (k.s - t) + x
	} else {
		k.c += (x - t) + k.s
	}
	k.s = t
}

func (k *neumaierSum) sum() float64 { return k.s + k.c }

// Float accumulates in float64 arithmetic. Terms such as squares and
// products are computed in float64 before being added, so the result is
// approximate and may overflow.
type Float struct {
	name  string
	fresh func() summer
	s     summer
}

// NewNaive returns a plain float64 accumulator.
func NewNaive() *Float {
	return newFloat(NaiveName, func() summer { return &naiveSum{} })
}

// NewKahan returns a compensated float64 accumulator.
func NewKahan() *Float {
	return newFloat(KahanName, func() summer { return &neumaierSum{} })
}

func newFloat(name string, fresh func() summer) *Float {
	return &Float{name: name, fresh: fresh, s: fresh()}
}

// Name returns the registry name.
func (a *Float) Name() string { return a.name }

// IsExact reports false.
func (a *Float) IsExact() bool { return false }

// NoOverflow reports false: float64 terms and sums can overflow.
func (a *Float) NoOverflow() bool { return false }

// Clear resets the running value to zero.
func (a *Float) Clear() { a.s = a.fresh() }

func finite(op string, zs ...float64) error {
	for _, z := range zs {
		if math.IsInf(z, 0) || math.IsNaN(z) {
			return apperrors.NewPreconditionError(op, "non-finite input %v", z)
		}
	}
	return nil
}

// Add adds z.
func (a *Float) Add(z float64) error {
	if err := finite("accumulate.Add", z); err != nil {
		return err
	}
	a.s.add(z)
	return nil
}

// Add2 adds z*z.
func (a *Float) Add2(z float64) error {
	if err := finite("accumulate.Add2", z); err != nil {
		return err
	}
	a.s.add(z * z)
	return nil
}

// AddAbs adds |z|.
func (a *Float) AddAbs(z float64) error {
	if err := finite("accumulate.AddAbs", z); err != nil {
		return err
	}
	a.s.add(math.Abs(z))
	return nil
}

// AddProduct adds z0*z1.
func (a *Float) AddProduct(z0, z1 float64) error {
	if err := finite("accumulate.AddProduct", z0, z1); err != nil {
		return err
	}
	a.s.add(z0 * z1)
	return nil
}

// AddL1 adds |z0-z1|.
func (a *Float) AddL1(z0, z1 float64) error {
	if err := finite("accumulate.AddL1", z0, z1); err != nil {
		return err
	}
	a.s.add(math.Abs(z0 - z1))
	return nil
}

// AddL2 adds (z0-z1)^2.
func (a *Float) AddL2(z0, z1 float64) error {
	if err := finite("accumulate.AddL2", z0, z1); err != nil {
		return err
	}
	d := z0 - z1
	a.s.add(d * d)
	return nil
}

// each validates the whole input first so a rejected call applies
// nothing.
func (a *Float) each(op string, zs []float64, term func(z float64) float64) error {
	if err := finite(op, zs...); err != nil {
		return err
	}
	for _, z := range zs {
		a.s.add(term(z))
	}
	return nil
}

func (a *Float) each2(op string, z0, z1 []float64, term func(x, y float64) float64) error {
	if err := checkLengths(op, z0, z1); err != nil {
		return err
	}
	if err := finite(op, z0...); err != nil {
		return err
	}
	if err := finite(op, z1...); err != nil {
		return err
	}
	for i := range z0 {
		a.s.add(term(z0[i], z1[i]))
	}
	return nil
}

// AddAll adds every element of zs. A non-finite element rejects the
// whole call and leaves the running value unchanged.
func (a *Float) AddAll(zs []float64) error {
	return a.each("accumulate.AddAll", zs, func(z float64) float64 { return z })
}

// AddAbsAll adds the absolute value of every element of zs.
func (a *Float) AddAbsAll(zs []float64) error {
	return a.each("accumulate.AddAbsAll", zs, math.Abs)
}

// Add2All adds the square of every element of zs.
func (a *Float) Add2All(zs []float64) error {
	return a.each("accumulate.Add2All", zs, func(z float64) float64 { return z * z })
}

// AddProducts adds the dot product of z0 and z1, which must have
// equal length.
func (a *Float) AddProducts(z0, z1 []float64) error {
	return a.each2("accumulate.AddProducts", z0, z1, func(x, y float64) float64 { return x * y })
}

// AddL1Distance adds the L1 distance between z0 and z1.
func (a *Float) AddL1Distance(z0, z1 []float64) error {
	return a.each2("accumulate.AddL1Distance", z0, z1, func(x, y float64) float64 { return math.Abs(x - y) })
}

// AddL2Distance adds the squared L2 distance between z0 and z1.
func (a *Float) AddL2Distance(z0, z1 []float64) error {
	return a.each2("accumulate.AddL2Distance", z0, z1, func(x, y float64) float64 {
		d := x - y
		return d * d
	})
}

// Float64 returns the running sum.
func (a *Float) Float64() float64 { return a.s.sum() }

// Float32 returns the running sum converted to float32.
func (a *Float) Float32() float32 { return float32(a.s.sum()) }

// Value returns the running float64.
func (a *Float) Value() any { return a.s.sum() }
