// This file is the entry point of the division engine. Operand sizes
// alone decide between Knuth's Algorithm D and Burnikel-Ziegler; both
// return identical quotients and remainders.

package natural

import (
	apperrors "github.com/agbru/exactsum/internal/errors"
)

// DivRem returns the quotient and remainder of x / y, with
// x = y*q + r and 0 <= r < y. It fails when y is zero.
func (x Natural) DivRem(y Natural) (q, r Natural, err error) {
	if len(y.w) == 0 {
		return Natural{}, Natural{}, apperrors.DivisionByZeroError{Op: "natural.DivRem"}
	}
	qn, rn := divRemNat(x.w, y.w, limits())
	return Natural{qn}, Natural{rn}, nil
}

// Div returns x / y rounded down.
func (x Natural) Div(y Natural) (Natural, error) {
	if len(y.w) == 0 {
		return Natural{}, apperrors.DivisionByZeroError{Op: "natural.Div"}
	}
	q, _ := divRemNat(x.w, y.w, limits())
	return Natural{q}, nil
}

// Rem returns x mod y.
func (x Natural) Rem(y Natural) (Natural, error) {
	if len(y.w) == 0 {
		return Natural{}, apperrors.DivisionByZeroError{Op: "natural.Rem"}
	}
	_, r := divRemNat(x.w, y.w, limits())
	return Natural{r}, nil
}

// DivRemUint32 divides x by a single word.
func (x Natural) DivRemUint32(y uint32) (Natural, uint32, error) {
	if y == 0 {
		return Natural{}, 0, apperrors.DivisionByZeroError{Op: "natural.DivRemUint32"}
	}
	q, r := divW(x.w, y)
	return Natural{q}, r, nil
}

// useKnuth reports whether a division of an a-word dividend by a b-word
// divisor stays with Algorithm D.
func useKnuth(aLen, bLen int, t *Thresholds) bool {
	return bLen < t.BurnikelZiegler || aLen-bLen < t.BurnikelZieglerOffset
}

func divRemNat(a, b nat, t *Thresholds) (q, r nat) {
	if useKnuth(len(a), len(b), t) {
		return knuthDivRem(a, b, t)
	}
	return divBurnikelZiegler(a, b, t)
}

// DivUint32 returns x / y for a single-word divisor.
func (x Natural) DivUint32(y uint32) (Natural, error) {
	q, _, err := x.DivRemUint32(y)
	return q, err
}
