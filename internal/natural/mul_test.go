package natural

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

// TestMulThresholdBoundaries multiplies operands on both sides of each
// algorithm switch and checks the product against math/big.
func TestMulThresholdBoundaries(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	lengths := []int{1, 2, 19, 20, 21, 79, 80, 81, 160, 239, 240, 241, 500}
	rng := newTestRand(7)
	for _, n := range lengths {
		for _, m := range []int{n, n/2 + 1, 80} {
			t.Run(fmt.Sprintf("%dx%d", n, m), func(t *testing.T) {
				x, y := randNat(rng, n), sparseNat(rng, m)
				got := mulNat(x, y, &th)
				want := new(big.Int).Mul(natBig(x), natBig(y))
				if natBig(got).Cmp(want) != 0 {
					t.Fatalf("mulNat(%d words, %d words) disagrees with math/big", n, m)
				}
			})
		}
	}
}

// TestMulAlgorithmsAgree runs each multiplication algorithm directly, so
// Karatsuba and Toom-Cook-3 are checked on lengths where the selector
// would not pick them.
func TestMulAlgorithmsAgree(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	th.KaratsubaMul = minKaratsuba
	th.ToomCookMul = minToomCook
	rng := newTestRand(11)
	for _, n := range []int{12, 13, 14, 30, 79, 80, 81, 239, 240, 241} {
		x, y := randNat(rng, n), randNat(rng, n-n/3)
		school := mulSchool(x, y)
		if k := mulKaratsuba(x, y, &th); k.cmp(school) != 0 {
			t.Errorf("Karatsuba differs from schoolbook at %d words", n)
		}
		if tc := mulToomCook3(x, y, &th); tc.cmp(school) != 0 {
			t.Errorf("Toom-Cook-3 differs from schoolbook at %d words", n)
		}
	}
}

func TestSquareThresholdBoundaries(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	rng := newTestRand(13)
	for _, n := range []int{1, 2, 127, 128, 129, 215, 216, 217, 400} {
		x := randNat(rng, n)
		want := new(big.Int).Mul(natBig(x), natBig(x))
		if got := sqrNat(x, &th); natBig(got).Cmp(want) != 0 {
			t.Errorf("sqrNat(%d words) disagrees with math/big", n)
		}
		if got := sqrSchool(x); natBig(got).Cmp(want) != 0 {
			t.Errorf("sqrSchool(%d words) disagrees with math/big", n)
		}
	}
}

func TestSquareAlgorithmsAgree(t *testing.T) {
	t.Parallel()
	th := DefaultThresholds()
	th.KaratsubaSquare = minKaratsuba
	th.ToomCookSquare = minToomCook
	rng := newTestRand(17)
	for _, n := range []int{12, 13, 50, 128, 216, 217} {
		x := sparseNat(rng, n)
		school := sqrSchool(x)
		if got := sqrKaratsuba(x, &th); got.cmp(school) != 0 {
			t.Errorf("sqrKaratsuba differs at %d words", n)
		}
		if got := sqrToomCook3(x, &th); got.cmp(school) != 0 {
			t.Errorf("sqrToomCook3 differs at %d words", n)
		}
	}
}

func TestMulSelfRoutesToSquare(t *testing.T) {
	t.Parallel()
	rng := newTestRand(19)
	x := Natural{randNat(rng, 300)}
	p, err := x.Mul(x)
	if err != nil {
		t.Fatal(err)
	}
	s, err := x.Square()
	if err != nil {
		t.Fatal(err)
	}
	if !p.Equal(s) {
		t.Fatal("x.Mul(x) != x.Square()")
	}
}

func TestMulSmall(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    Natural
		y    uint64
		want string
	}{
		{"by zero", MustParse("ffffffffffffffff", 16), 0, "0"},
		{"by one", MustParse("123", 16), 1, "123"},
		{"word carry", MustParse("ffffffff", 16), 0xffffffff, "fffffffe00000001"},
		{"two words", MustParse("ffffffffffffffff", 16), 0xffffffffffffffff, "fffffffffffffffe0000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.x.MulUint64(tt.y).String(); got != tt.want {
				t.Errorf("MulUint64 = %s, want %s", got, tt.want)
			}
		})
	}
}

// withThresholds installs th for the duration of a test. Tests using it
// must not call t.Parallel.
func withThresholds(t *testing.T, th Thresholds) {
	t.Helper()
	old := Current()
	if err := Configure(th); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	t.Cleanup(func() { _ = Configure(old) })
}

func TestMulOverflowCheckedUpFront(t *testing.T) {
	th := DefaultThresholds()
	th.MaxWords = 8
	withThresholds(t, th)

	x := FromWords([]uint32{1, 0, 0, 0})
	if _, err := x.Square(); err != nil {
		t.Fatalf("Square of a 4-word value: %v", err)
	}
	y := FromWords([]uint32{1, 0, 0, 0, 0})
	if _, err := y.Square(); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("Square error = %v, want overflow", err)
	}
	if _, err := y.Mul(y.AddUint64(1)); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("Mul error = %v, want overflow", err)
	}
	if _, err := One().Lsh(8 * 32); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("Lsh error = %v, want overflow", err)
	}
	if top, err := One().SetBit(8*32 - 1); err != nil || top.BitLen() != 8*32 {
		t.Errorf("SetBit at the top bit = %v, %v", top, err)
	}
	if _, err := One().SetBit(8 * 32); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("SetBit error = %v, want overflow", err)
	}
	if _, err := One().FlipBit(8 * 32); !errors.Is(err, apperrors.ErrOverflow) {
		t.Errorf("FlipBit error = %v, want overflow", err)
	}
}

func TestExactDivideBy3(t *testing.T) {
	t.Parallel()
	rng := newTestRand(23)
	for i := 0; i < 100; i++ {
		q := randNat(rng, 1+rng.IntN(20))
		x := mulAddWW(q, 3, 0)
		if got := exactDivideBy3(x); got.cmp(q) != 0 {
			t.Fatalf("exactDivideBy3(3*%v) = %v", Natural{q}, Natural{got})
		}
	}
}
