package accumulate

import (
	"iter"
)

// Partials is a lazy sequence of running values. Each call to Next
// applies one more input element to the accumulator and reports its
// Float64 snapshot. A Partials can be drained only once.
type Partials struct {
	acc  Accumulator
	n    int
	i    int
	step func(i int) error
	err  error
}

func newPartials(acc Accumulator, n int, step func(i int) error) *Partials {
	acc.Clear()
	return &Partials{acc: acc, n: n, step: step}
}

// Len returns the total number of values the sequence produces.
func (p *Partials) Len() int { return p.n }

// Next applies the next element and returns the running value. It
// returns false once the input is exhausted or an element was rejected;
// Err distinguishes the two.
func (p *Partials) Next() (float64, bool) {
	if p.err != nil || p.i >= p.n {
		return 0, false
	}
	if err := p.step(p.i); err != nil {
		p.err = err
		return 0, false
	}
	p.i++
	return p.acc.Float64(), true
}

// Err returns the error that stopped the sequence, if any.
func (p *Partials) Err() error { return p.err }

// Collect drains the remaining values into a slice.
func (p *Partials) Collect() ([]float64, error) {
	out := make([]float64, 0, p.n-p.i)
	for {
		v, ok := p.Next()
		if !ok {
			return out, p.err
		}
		out = append(out, v)
	}
}

// All returns an iterator over (index, running value) pairs. Breaking out
// of the loop leaves the remaining elements for a later Next.
func (p *Partials) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for {
			i := p.i
			v, ok := p.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// PartialSums yields z[0], z[0]+z[1], ...
func PartialSums(acc Accumulator, zs []float64) *Partials {
	return newPartials(acc, len(zs), func(i int) error { return acc.Add(zs[i]) })
}

// PartialL1s yields the running sums of |z[i]|.
func PartialL1s(acc Accumulator, zs []float64) *Partials {
	return newPartials(acc, len(zs), func(i int) error { return acc.AddAbs(zs[i]) })
}

// PartialL2s yields the running sums of z[i]².
func PartialL2s(acc Accumulator, zs []float64) *Partials {
	return newPartials(acc, len(zs), func(i int) error { return acc.Add2(zs[i]) })
}

// PartialDots yields the running sums of z0[i]*z1[i].
func PartialDots(acc Accumulator, z0, z1 []float64) (*Partials, error) {
	if err := checkLengths("accumulate.PartialDots", z0, z1); err != nil {
		return nil, err
	}
	return newPartials(acc, len(z0), func(i int) error { return acc.AddProduct(z0[i], z1[i]) }), nil
}

// PartialL1Distances yields the running sums of |z0[i]-z1[i]|.
func PartialL1Distances(acc Accumulator, z0, z1 []float64) (*Partials, error) {
	if err := checkLengths("accumulate.PartialL1Distances", z0, z1); err != nil {
		return nil, err
	}
	return newPartials(acc, len(z0), func(i int) error { return acc.AddL1(z0[i], z1[i]) }), nil
}

// PartialL2Distances yields the running sums of (z0[i]-z1[i])².
func PartialL2Distances(acc Accumulator, z0, z1 []float64) (*Partials, error) {
	if err := checkLengths("accumulate.PartialL2Distances", z0, z1); err != nil {
		return nil, err
	}
	return newPartials(acc, len(z0), func(i int) error { return acc.AddL2(z0[i], z1[i]) }), nil
}
