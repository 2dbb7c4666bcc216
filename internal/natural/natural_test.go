package natural

import (
	"errors"
	"math"
	"math/big"
	"slices"
	"testing"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

func TestWordsAreMostSignificantFirst(t *testing.T) {
	t.Parallel()
	got := FromUint64(0xFFFFFFFF).Add(One()).Words()
	if want := []uint32{1, 0}; !slices.Equal(got, want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
}

func TestFromWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		words []uint32
		want  uint64
		len   int
	}{
		{"empty", nil, 0, 0},
		{"leading zeros", []uint32{0, 0, 7}, 7, 1},
		{"two words", []uint32{1, 2}, 1<<32 | 2, 2},
		{"all zero", []uint32{0, 0}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x := FromWords(tt.words)
			if x.Uint64() != tt.want || x.Len() != tt.len {
				t.Errorf("FromWords(%v) = %d (len %d), want %d (len %d)", tt.words, x.Uint64(), x.Len(), tt.want, tt.len)
			}
		})
	}
}

func TestBytesRoundTrip(t *testing.T) {
	t.Parallel()
	tests := [][]byte{
		{},
		{1},
		{0x80, 0, 0, 0, 0},
		{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02},
	}
	for _, b := range tests {
		got := FromBytes(b).Bytes()
		if !slices.Equal(got, b) {
			t.Errorf("FromBytes(%x).Bytes() = %x", b, got)
		}
	}
	if got := FromBytes([]byte{0, 0, 5}).Bytes(); !slices.Equal(got, []byte{5}) {
		t.Errorf("leading zero bytes not stripped: %x", got)
	}
}

func TestSmallValueCache(t *testing.T) {
	t.Parallel()
	for v := uint64(0); v <= 16; v++ {
		if got := FromUint64(v).Uint64(); got != v {
			t.Errorf("FromUint64(%d) = %d", v, got)
		}
	}
	if !Zero().IsZero() || !One().IsOne() {
		t.Error("Zero/One constants are wrong")
	}
	var zero Natural
	if !zero.Equal(Zero()) || zero.BitLen() != 0 || zero.LowestSetBit() != -1 {
		t.Error("zero value is not the number 0")
	}
}

func TestAddSub(t *testing.T) {
	t.Parallel()
	rng := newTestRand(1)
	for i := 0; i < 200; i++ {
		x := Natural{randNat(rng, rng.IntN(12))}
		y := Natural{randNat(rng, rng.IntN(12))}
		sum := x.Add(y)
		if toBig(sum).Cmp(new(big.Int).Add(toBig(x), toBig(y))) != 0 {
			t.Fatalf("%v + %v = %v", x, y, sum)
		}
		back, err := sum.Sub(y)
		if err != nil || !back.Equal(x) {
			t.Fatalf("(%v + %v) - %v = %v, %v", x, y, y, back, err)
		}
		if !x.AbsDiff(y).Equal(y.AbsDiff(x)) {
			t.Fatalf("AbsDiff is not symmetric for %v, %v", x, y)
		}
	}
}

func TestSubNegativeIsPrecondition(t *testing.T) {
	t.Parallel()
	_, err := FromUint64(3).Sub(FromUint64(4))
	if !errors.Is(err, apperrors.ErrPrecondition) {
		t.Fatalf("Sub error = %v, want precondition", err)
	}
	_, err = FromUint64(3).SubFromUint64(2)
	if !errors.Is(err, apperrors.ErrPrecondition) {
		t.Fatalf("SubFromUint64 error = %v, want precondition", err)
	}
}

func TestShifts(t *testing.T) {
	t.Parallel()
	x := MustParse("123456789abcdef0123456789", 16)
	for _, s := range []uint{0, 1, 31, 32, 33, 64, 100} {
		l, err := x.Lsh(s)
		if err != nil {
			t.Fatal(err)
		}
		if want := new(big.Int).Lsh(toBig(x), s); toBig(l).Cmp(want) != 0 {
			t.Errorf("Lsh(%d) = %v, want %x", s, l, want)
		}
		if !l.Rsh(s).Equal(x) {
			t.Errorf("Rsh(Lsh(x, %d), %d) != x", s, s)
		}
	}
	if !x.Rsh(1000).IsZero() {
		t.Error("Rsh past the top must be zero")
	}
}

func TestLshOverflow(t *testing.T) {
	t.Parallel()
	_, err := One().Lsh(uint(DefaultMaxWords) * 32)
	var oe apperrors.OverflowError
	if !errors.As(err, &oe) || oe.Op != "natural.Lsh" {
		t.Fatalf("Lsh error = %v, want OverflowError", err)
	}
}

func TestBits(t *testing.T) {
	t.Parallel()
	x := FromUint64(0b1011000)
	if x.LowestSetBit() != 3 || x.TrailingZeroBits() != 3 || x.BitCount() != 3 || x.BitLen() != 7 {
		t.Errorf("bit queries of %b are wrong", x.Uint64())
	}
	if !x.TestBit(4) || x.TestBit(5) || x.Bit(6) != 1 {
		t.Error("Bit/TestBit disagree with the value")
	}
	got, err := x.SetBit(100)
	if err != nil || got.BitLen() != 101 || !got.ClearBit(100).Equal(x) {
		t.Errorf("SetBit/ClearBit at 100 = %v, %v", got, err)
	}
	once, err := x.FlipBit(6)
	if err != nil {
		t.Fatal(err)
	}
	if twice, _ := once.FlipBit(6); !twice.Equal(x) || once.TestBit(6) {
		t.Errorf("FlipBit twice = %v", twice)
	}
	if got := x.ClearBit(5); !got.Equal(x) {
		t.Error("clearing a clear bit changed the value")
	}
}

func TestBitIndexOverflow(t *testing.T) {
	t.Parallel()
	limit := uint(DefaultMaxWords) * 32
	tests := []struct {
		name string
		op   string
		fn   func(uint) (Natural, error)
	}{
		{"set", "natural.SetBit", One().SetBit},
		{"flip", "natural.FlipBit", One().FlipBit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, i := range []uint{limit, limit + 1, ^uint(0)} {
				_, err := tt.fn(i)
				var oe apperrors.OverflowError
				if !errors.As(err, &oe) || oe.Op != tt.op {
					t.Errorf("%s(%d) error = %v, want OverflowError", tt.op, i, err)
				}
			}
		})
	}
}

func TestUint64Helpers(t *testing.T) {
	t.Parallel()
	x := MustParse("fedcba9876543210fedcba98", 16)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"CmpUint64 greater", x.CmpUint64(math.MaxUint64), 1},
		{"CmpUint64 equal", FromUint64(42).CmpUint64(42), 0},
		{"CmpShifted equal", x.CmpShiftedUint64(0xfedcba9876543210, 32), 1},
		{"CmpShifted exact", MustParse("fedcba987654321000000000", 16).CmpShiftedUint64(0xfedcba9876543210, 32), 0},
		{"CmpShifted less", FromUint64(1).CmpShiftedUint64(1, 1), -1},
		{"CmpShifted zero", Zero().CmpShiftedUint64(0, 10), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if got := x.ShiftedUint64(32); got != 0xfedcba9876543210 {
		t.Errorf("ShiftedUint64(32) = %x", got)
	}
	if got := x.ShiftedUint64(4); got != 0x876543210fedcba9 {
		t.Errorf("ShiftedUint64(4) = %x", got)
	}
	if got := x.ShiftedUint32(200); got != 0 {
		t.Errorf("ShiftedUint32 past the top = %x", got)
	}

	p := ProductUint64(math.MaxUint64, math.MaxUint64)
	want := new(big.Int).Mul(new(big.Int).SetUint64(math.MaxUint64), new(big.Int).SetUint64(math.MaxUint64))
	if toBig(p).Cmp(want) != 0 || !SquareUint64(math.MaxUint64).Equal(p) {
		t.Errorf("ProductUint64 = %v", p)
	}

	s, err := x.AddShiftedUint64(3, 40)
	if err != nil {
		t.Fatal(err)
	}
	back, err := s.SubShiftedUint64(3, 40)
	if err != nil || !back.Equal(x) {
		t.Errorf("AddShifted/SubShifted round trip = %v, %v", back, err)
	}
	if got := FromUint64(10).AbsDiffUint64(25).Uint64(); got != 15 {
		t.Errorf("AbsDiffUint64 = %d", got)
	}
	if got, _ := FromUint64(10).SubFromUint64(25); got.Uint64() != 15 {
		t.Errorf("SubFromUint64 = %v", got)
	}
}

func TestHash(t *testing.T) {
	t.Parallel()
	x := FromWords([]uint32{2, 3})
	if got, want := x.Hash(), uint32(31*2+3); got != want {
		t.Errorf("Hash() = %d, want %d", got, want)
	}
	if Zero().Hash() != 0 {
		t.Error("Hash(0) != 0")
	}
	if FromWords([]uint32{0, 2, 3}).Hash() != x.Hash() {
		t.Error("leading zero words changed the hash")
	}
}

func TestWord(t *testing.T) {
	t.Parallel()
	x := FromWords([]uint32{9, 8, 7})
	if x.Word(0) != 7 || x.Word(2) != 9 || x.Word(3) != 0 || x.Word(-1) != 0 {
		t.Errorf("Word() returned wrong values for %v", x)
	}
	if x.IsUint64() || !FromWords([]uint32{8, 7}).IsUint64() {
		t.Error("IsUint64 is wrong")
	}
}
