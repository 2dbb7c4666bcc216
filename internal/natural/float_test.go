package natural

import (
	"math"
	"math/big"
	"testing"
)

func TestFloat64Rounding(t *testing.T) {
	t.Parallel()
	two53 := uint64(1) << 53
	tests := []struct {
		name string
		x    Natural
		want float64
	}{
		{"zero", Zero(), 0},
		{"exact", FromUint64(two53 - 1), float64(two53 - 1)},
		{"tie to even down", FromUint64(two53 + 1), float64(two53)},
		{"tie to even up", FromUint64(two53 + 3), float64(two53 + 4)},
		{"max uint64", FromUint64(math.MaxUint64), 18446744073709551615.0},
	}
	for _, tt := range tests {
		if got := tt.x.Float64(); got != tt.want {
			t.Errorf("%s: Float64(%v) = %g, want %g", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestFloat64AgainstBig(t *testing.T) {
	t.Parallel()
	rng := newTestRand(67)
	for i := 0; i < 300; i++ {
		x := Natural{sparseNat(rng, 1+rng.IntN(33))}
		want, _ := new(big.Float).SetInt(toBig(x)).Float64()
		if got := x.Float64(); got != want {
			t.Fatalf("Float64(%v) = %g, want %g", x, got, want)
		}
		want32, _ := new(big.Float).SetInt(toBig(x)).Float32()
		if got := x.Float32(); got != want32 {
			t.Fatalf("Float32(%v) = %g, want %g", x, got, want32)
		}
	}
}

func TestFloatOverflowToInfinity(t *testing.T) {
	t.Parallel()
	big1024, _ := One().Lsh(1024)
	if got := big1024.Float64(); !math.IsInf(got, 1) {
		t.Errorf("Float64(2^1024) = %g, want +Inf", got)
	}
	// The largest finite double plus half an ulp rounds to infinity.
	maxPlusHalf, _ := FromUint64(1<<54 - 1).Lsh(1024 - 54)
	if got := maxPlusHalf.Float64(); !math.IsInf(got, 1) {
		t.Errorf("Float64(max + half ulp) = %g, want +Inf", got)
	}
	big128, _ := One().Lsh(128)
	if got := big128.Float32(); !math.IsInf(float64(got), 1) {
		t.Errorf("Float32(2^128) = %g, want +Inf", got)
	}
}
