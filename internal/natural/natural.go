package natural

import (
	apperrors "github.com/agbru/exactsum/internal/errors"
)

// Natural is an immutable arbitrary-precision non-negative integer.
//
// The zero value is the number 0 and is ready to use. Every operation
// returns a new Natural; operands are never modified, so Naturals may be
// shared freely between goroutines.
type Natural struct {
	w nat
}

// smallNaturals caches 0..16, the values the radix parser and the
// accumulation code ask for most often.
var smallNaturals = func() (t [17]Natural) {
	for i := range t {
		t[i] = Natural{natFromUint64(uint64(i))}
	}
	return t
}()

// Zero returns the Natural 0.
func Zero() Natural { return Natural{} }

// One returns the Natural 1.
func One() Natural { return smallNaturals[1] }

// FromUint64 returns v as a Natural.
func FromUint64(v uint64) Natural {
	if v < uint64(len(smallNaturals)) {
		return smallNaturals[v]
	}
	return Natural{natFromUint64(v)}
}

// FromUint32 returns v as a Natural.
func FromUint32(v uint32) Natural { return FromUint64(uint64(v)) }

// FromWords returns the Natural whose 32-bit words, most significant
// first, are words. Leading zero words are ignored.
func FromWords(words []uint32) Natural {
	n := len(words)
	z := make(nat, n)
	for i, w := range words {
		z[n-1-i] = w
	}
	return Natural{z.norm()}
}

// FromBytes interprets b as a big-endian unsigned integer.
func FromBytes(b []byte) Natural {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) == 0 {
		return Natural{}
	}
	z := make(nat, (len(b)+3)/4)
	for i, j := len(b)-1, 0; i >= 0; i, j = i-1, j+1 {
		z[j/4] |= uint32(b[i]) << (8 * uint(j%4))
	}
	return Natural{z.norm()}
}

// Words returns the 32-bit words of x, most significant first. The
// result has no leading zero word and is empty for zero. It is a copy.
func (x Natural) Words() []uint32 {
	n := len(x.w)
	words := make([]uint32, n)
	for i, w := range x.w {
		words[n-1-i] = w
	}
	return words
}

// Bytes returns the minimal big-endian encoding of x. Zero encodes as an
// empty slice.
func (x Natural) Bytes() []byte {
	n := (x.w.bitLen() + 7) / 8
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[n-1-i] = byte(x.w[i/4] >> (8 * uint(i%4)))
	}
	return b
}

// IsZero reports whether x == 0.
func (x Natural) IsZero() bool { return len(x.w) == 0 }

// IsOne reports whether x == 1.
func (x Natural) IsOne() bool { return len(x.w) == 1 && x.w[0] == 1 }

// Len returns the number of 32-bit words in x.
func (x Natural) Len() int { return len(x.w) }

// Word returns the i'th word of x counting from the least significant
// end, or 0 beyond the top.
func (x Natural) Word(i int) uint32 {
	if i < 0 || i >= len(x.w) {
		return 0
	}
	return x.w[i]
}

// BitLen returns the position of the highest set bit plus one, that is
// the minimal number of bits needed to represent x. It is 0 for zero.
func (x Natural) BitLen() int { return x.w.bitLen() }

// Uint64 returns the low 64 bits of x.
func (x Natural) Uint64() uint64 { return x.w.uint64() }

// IsUint64 reports whether x fits in a uint64.
func (x Natural) IsUint64() bool { return len(x.w) <= 2 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Natural) Cmp(y Natural) int { return x.w.cmp(y.w) }

// Equal reports whether x == y.
func (x Natural) Equal(y Natural) bool { return x.w.cmp(y.w) == 0 }

// Hash returns a hash of x. The words are folded most significant
// first with h = 31*h + word.
func (x Natural) Hash() uint32 {
	var h uint32
	for i := len(x.w) - 1; i >= 0; i-- {
		h = 31*h + x.w[i]
	}
	return h
}

// ─────────────────────────────────────────────────────────────────────────────
// Add, Subtract
// ─────────────────────────────────────────────────────────────────────────────

// Add returns x + y.
func (x Natural) Add(y Natural) Natural { return Natural{addNat(x.w, y.w)} }

// Sub returns x - y. It fails with a precondition error when y > x,
// since the difference is not a Natural.
func (x Natural) Sub(y Natural) (Natural, error) {
	if x.w.cmp(y.w) < 0 {
		return Natural{}, apperrors.PreconditionError{Op: "natural.Sub", Reason: "negative difference"}
	}
	return Natural{subNat(x.w, y.w)}, nil
}

// AbsDiff returns |x - y|.
func (x Natural) AbsDiff(y Natural) Natural {
	d, _ := absDiffNat(x.w, y.w)
	return Natural{d}
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

// Lsh returns x << n. It fails when the result would exceed the
// configured MaxWords.
func (x Natural) Lsh(n uint) (Natural, error) {
	if len(x.w) == 0 || n == 0 {
		return x, nil
	}
	if err := checkBits("natural.Lsh", uint64(x.w.bitLen())+uint64(n), limits().MaxWords); err != nil {
		return Natural{}, err
	}
	return Natural{shlNat(x.w, n)}, nil
}

// Rsh returns x >> n.
func (x Natural) Rsh(n uint) Natural {
	if len(x.w) == 0 || n == 0 {
		return x
	}
	return Natural{shrNat(x.w, n)}
}

// checkBits fails when a value of the given bit length would need more
// than maxWords words.
func checkBits(op string, bitLen uint64, maxWords int) error {
	if bitLen > uint64(maxWords)*_W {
		return apperrors.NewOverflowError(op, "%d bits exceeds the limit of %d words", bitLen, maxWords)
	}
	return nil
}
