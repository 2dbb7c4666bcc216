package bigfloat

import (
	"math"
	"math/bits"

	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/natural"
)

// IEEE-754 layout constants. The minimum exponents apply to the integral
// significand form, value = significand * 2^exponent; normal doubles
// reach up to 2^971 and normal floats up to 2^104 in that form.
const (
	float64SignificandBits = 53
	float64MinExponent     = -1074
	float64Bias            = 1075 // -float64MinExponent + 1

	float32SignificandBits = 24
	float32MinExponent     = -149
	float32Bias            = 150
)

// parts is a finite float decomposed into sign, integer significand and
// exponent, with the trailing zeros of the significand removed.
type parts struct {
	nonNegative bool
	significand uint64
	exponent    int32
}

func (p parts) isZero() bool { return p.significand == 0 }

func (p parts) neg() parts {
	p.nonNegative = !p.nonNegative
	return p
}

func (p parts) abs() parts {
	p.nonNegative = true
	return p
}

// stripped moves the trailing zeros of significand into exponent.
func stripped(nonNegative bool, significand uint64, exponent int32) parts {
	if significand == 0 {
		return parts{nonNegative: true}
	}
	s := bits.TrailingZeros64(significand)
	return parts{nonNegative, significand >> s, exponent + int32(s)}
}

// float64Parts decomposes a finite z. Subnormals have no implicit bit and
// the minimum exponent. Infinities and NaN are a precondition error.
func float64Parts(op string, z float64) (parts, error) {
	b := math.Float64bits(z)
	be := int32(b>>52) & 0x7ff
	frac := b & (1<<52 - 1)
	if be == 0x7ff {
		return parts{}, apperrors.NewPreconditionError(op, "non-finite value %v", z)
	}
	nonNeg := b>>63 == 0
	if be == 0 {
		return stripped(nonNeg, frac, float64MinExponent), nil
	}
	return stripped(nonNeg, frac|1<<52, be-float64Bias), nil
}

func float32Parts(op string, z float32) (parts, error) {
	b := math.Float32bits(z)
	be := int32(b>>23) & 0xff
	frac := uint64(b & (1<<23 - 1))
	if be == 0xff {
		return parts{}, apperrors.NewPreconditionError(op, "non-finite value %v", z)
	}
	nonNeg := b>>31 == 0
	if be == 0 {
		return stripped(nonNeg, frac, float32MinExponent), nil
	}
	return stripped(nonNeg, frac|1<<23, be-float32Bias), nil
}

func fromParts(p parts) BigFloat {
	return New(p.nonNegative, natural.FromUint64(p.significand), p.exponent)
}

// FromFloat64 returns the exact value of z. Both zeros map to the
// canonical zero.
func FromFloat64(z float64) (BigFloat, error) {
	p, err := float64Parts("bigfloat.FromFloat64", z)
	if err != nil {
		return BigFloat{}, err
	}
	return fromParts(p), nil
}

// FromFloat32 returns the exact value of z.
func FromFloat32(z float32) (BigFloat, error) {
	p, err := float32Parts("bigfloat.FromFloat32", z)
	if err != nil {
		return BigFloat{}, err
	}
	return fromParts(p), nil
}

// FromUint64 returns v as a BigFloat.
func FromUint64(v uint64) BigFloat { return fromParts(stripped(true, v, 0)) }

// FromInt64 returns v as a BigFloat.
func FromInt64(v int64) BigFloat {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	return fromParts(stripped(false, uint64(-(v+1))+1, 0))
}

// MustFromFloat64 is like FromFloat64 but panics on a non-finite value.
// It is intended for constants in tests and tables.
func MustFromFloat64(z float64) BigFloat {
	x, err := FromFloat64(z)
	if err != nil {
		panic(err)
	}
	return x
}
