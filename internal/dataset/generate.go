package dataset

import (
	"math"
	"math/rand/v2"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Distribution names a generator of test values.
type Distribution string

// Built-in distributions.
const (
	Uniform     Distribution = "uniform"
	Gaussian    Distribution = "gaussian"
	Laplace     Distribution = "laplace"
	Exponential Distribution = "exponential"
	// Finite draws random bit patterns over the whole finite range,
	// subnormals included.
	Finite Distribution = "finite"
	// Cancelling yields pairs that sum to exactly zero, shuffled.
	Cancelling Distribution = "cancelling"
)

// Distributions lists the generator names.
func Distributions() []Distribution {
	return []Distribution{Uniform, Gaussian, Laplace, Exponential, Finite, Cancelling}
}

// Generate returns n values drawn from dist. The same seed always yields
// the same values.
func Generate(dist Distribution, n int, seed uint64) ([]float64, error) {
	if n < 0 {
		return nil, apperrors.ValidationError{Field: "n", Message: "must not be negative"}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	xs := make([]float64, n)
	var draw func() float64
	switch dist {
	case Uniform:
		draw = func() float64 { return 2*r.Float64() - 1 }
	case Gaussian:
		draw = r.NormFloat64
	case Laplace:
		draw = func() float64 {
			e := r.ExpFloat64()
			if r.IntN(2) == 0 {
				return -e
			}
			return e
		}
	case Exponential:
		draw = r.ExpFloat64
	case Finite:
		draw = func() float64 {
			for {
				v := math.Float64frombits(r.Uint64())
				if !math.IsInf(v, 0) && !math.IsNaN(v) {
					return v
				}
			}
		}
	case Cancelling:
		for i := 0; i+1 < n; i += 2 {
			v := math.Ldexp(2*r.Float64()-1, r.IntN(600)-300)
			xs[i], xs[i+1] = v, -v
		}
		r.Shuffle(n, func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		return xs, nil
	default:
		return nil, apperrors.NewConfigError("unknown distribution %q (available: %v)", dist, Distributions())
	}
	for i := range xs {
		xs[i] = draw()
	}
	return xs, nil
}
