package bigfloat

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// finiteFloat64 generates finite doubles across the whole exponent
// range, subnormals included.
func finiteFloat64() gopter.Gen {
	return gen.UInt64().Map(func(b uint64) float64 {
		z := math.Float64frombits(b)
		if math.IsInf(z, 0) || math.IsNaN(z) {
			return math.Float64frombits(b &^ (1 << 62))
		}
		return z
	})
}

func TestRoundingProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("float64 round-trips exactly", prop.ForAll(
		func(z float64) bool {
			x, err := FromFloat64(z)
			return err == nil && x.Float64() == z
		},
		finiteFloat64(),
	))

	properties.Property("float32 round-trips exactly", prop.ForAll(
		func(b uint32) bool {
			z := math.Float32frombits(b &^ (1 << 30))
			x, err := FromFloat32(z)
			return err == nil && x.Float32() == z
		},
		gen.UInt32(),
	))

	properties.Property("sum of two rounds like math/big", prop.ForAll(
		func(a, b float64) bool {
			s, err := MustFromFloat64(a).AddFloat64(b)
			if err != nil {
				return false
			}
			want := new(big.Rat).Add(ratOf(a), ratOf(b))
			return s.Float64() == ratFloat64(want) && s.Float32() == ratFloat32(want)
		},
		finiteFloat64(), finiteFloat64(),
	))

	properties.Property("product rounds like math/big", prop.ForAll(
		func(a, b float64) bool {
			s, err := Zero().AddProduct(a, b)
			if err != nil {
				return false
			}
			want := new(big.Rat).Mul(ratOf(a), ratOf(b))
			return s.Float64() == ratFloat64(want)
		},
		finiteFloat64(), finiteFloat64(),
	))

	properties.Property("addition commutes and cancels", prop.ForAll(
		func(a, b float64) bool {
			x, y := MustFromFloat64(a), MustFromFloat64(b)
			xy, err1 := x.Add(y)
			yx, err2 := y.Add(x)
			back, err3 := xy.Sub(y)
			return err1 == nil && err2 == nil && err3 == nil &&
				xy.Equal(yx) && xy.Hash() == yx.Hash() && back.Equal(x)
		},
		finiteFloat64(), finiteFloat64(),
	))

	properties.Property("Cmp agrees with float64 order", prop.ForAll(
		func(a, b float64) bool {
			want := 0
			switch {
			case a < b:
				want = -1
			case a > b:
				want = 1
			}
			return MustFromFloat64(a).Cmp(MustFromFloat64(b)) == want
		},
		finiteFloat64(), finiteFloat64(),
	))

	properties.TestingRun(t)
}
