package bigfloat

import (
	"math/big"
)

// toRat returns the exact value of x as a big.Rat.
func toRat(x BigFloat) *big.Rat {
	t := new(big.Int).SetBytes(x.significand.Bytes())
	if x.negative {
		t.Neg(t)
	}
	r := new(big.Rat).SetInt(t)
	if x.exponent >= 0 {
		return r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(x.exponent))))
	}
	return r.Quo(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(-int64(x.exponent)))))
}

func ratOf(z float64) *big.Rat { return new(big.Rat).SetFloat64(z) }

// ratFloat64 rounds r to the nearest float64, ties to even.
func ratFloat64(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func ratFloat32(r *big.Rat) float32 {
	f, _ := r.Float32()
	return f
}
