//go:build gmp

// This file cross-checks multiplication and division against GMP. It is
// compiled only with the "gmp" build tag and needs libgmp installed:
//
//	go test -tags=gmp ./internal/natural/

package natural

import (
	"bytes"
	"testing"

	"github.com/ncw/gmp"
)

func toGMP(x Natural) *gmp.Int {
	return new(gmp.Int).SetBytes(x.Bytes())
}

func TestMulDivAgainstGMP(t *testing.T) {
	t.Parallel()
	rng := newTestRand(73)
	for _, sizes := range [][2]int{{3, 2}, {90, 85}, {250, 245}, {800, 300}, {2000, 700}} {
		x := Natural{randNat(rng, sizes[0])}
		y := Natural{sparseNat(rng, sizes[1])}
		gx, gy := toGMP(x), toGMP(y)

		p, err := x.Mul(y)
		if err != nil {
			t.Fatal(err)
		}
		if want := new(gmp.Int).Mul(gx, gy); !bytes.Equal(p.Bytes(), want.Bytes()) {
			t.Errorf("Mul(%d, %d words) disagrees with GMP", sizes[0], sizes[1])
		}

		s, err := x.Square()
		if err != nil {
			t.Fatal(err)
		}
		if want := new(gmp.Int).Mul(gx, gx); !bytes.Equal(s.Bytes(), want.Bytes()) {
			t.Errorf("Square(%d words) disagrees with GMP", sizes[0])
		}

		q, r, err := p.AddUint64(12345).DivRem(y)
		if err != nil {
			t.Fatal(err)
		}
		gp := new(gmp.Int).Add(new(gmp.Int).Mul(gx, gy), gmp.NewInt(12345))
		wq, wr := new(gmp.Int).QuoRem(gp, gy, new(gmp.Int))
		if !bytes.Equal(q.Bytes(), wq.Bytes()) || !bytes.Equal(r.Bytes(), wr.Bytes()) {
			t.Errorf("DivRem(%d, %d words) disagrees with GMP", sizes[0]+sizes[1], sizes[1])
		}
	}
}
