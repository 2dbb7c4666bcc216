package natural

import (
	"math/big"
	"math/rand/v2"
)

// toBig converts x to a *big.Int, the reference implementation for these
// tests.
func toBig(x Natural) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// fromBig converts a non-negative b to a Natural.
func fromBig(b *big.Int) Natural {
	return FromBytes(b.Bytes())
}

// randNat returns a random normalized nat of exactly n words.
func randNat(rng *rand.Rand, n int) nat {
	if n == 0 {
		return nil
	}
	z := make(nat, n)
	for i := range z {
		z[i] = rng.Uint32()
	}
	if z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}

// sparseNat returns a random n-word value whose words are mostly zero or
// all ones, which exercises the carry and borrow paths.
func sparseNat(rng *rand.Rand, n int) nat {
	z := make(nat, n)
	for i := range z {
		switch rng.IntN(3) {
		case 0:
			z[i] = 0
		case 1:
			z[i] = _M
		default:
			z[i] = rng.Uint32()
		}
	}
	z[n-1] |= 1 << 31
	return z
}

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func natBig(x nat) *big.Int { return toBig(Natural{x}) }
