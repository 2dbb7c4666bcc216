package accumulate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/exactsum/internal/bigfloat"
)

// checkEvery is how many elements a worker processes between context
// checks.
const checkEvery = 1 << 12

// ParallelSum returns the exact sum of xs, computed by up to workers
// goroutines over contiguous chunks. A non-positive workers uses
// GOMAXPROCS. The result does not depend on the worker count.
func ParallelSum(ctx context.Context, xs []float64, workers int) (bigfloat.BigFloat, error) {
	return parallelReduce(ctx, len(xs), workers, func(acc *Exact, lo, hi int) error {
		return acc.AddAll(xs[lo:hi])
	})
}

// ParallelDot returns the exact dot product of x and y.
func ParallelDot(ctx context.Context, x, y []float64, workers int) (bigfloat.BigFloat, error) {
	if err := checkLengths("accumulate.ParallelDot", x, y); err != nil {
		return bigfloat.BigFloat{}, err
	}
	return parallelReduce(ctx, len(x), workers, func(acc *Exact, lo, hi int) error {
		return acc.AddProducts(x[lo:hi], y[lo:hi])
	})
}

// ParallelL2Distance returns the exact squared Euclidean distance
// between x and y.
func ParallelL2Distance(ctx context.Context, x, y []float64, workers int) (bigfloat.BigFloat, error) {
	if err := checkLengths("accumulate.ParallelL2Distance", x, y); err != nil {
		return bigfloat.BigFloat{}, err
	}
	return parallelReduce(ctx, len(x), workers, func(acc *Exact, lo, hi int) error {
		return acc.AddL2Distance(x[lo:hi], y[lo:hi])
	})
}

// parallelReduce gives each goroutine its own Exact accumulator and adds
// the partial results exactly once all of them finish.
func parallelReduce(ctx context.Context, n, workers int, chunk func(acc *Exact, lo, hi int) error) (bigfloat.BigFloat, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = max(n, 1)
	}
	partials := make([]*Exact, workers)
	size := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo, hi := w*size, min((w+1)*size, n)
		acc := NewExact()
		partials[w] = acc
		g.Go(func() error {
			for start := lo; start < hi; start += checkEvery {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := chunk(acc, start, min(start+checkEvery, hi)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return bigfloat.BigFloat{}, err
	}

	total := NewExact()
	for _, p := range partials {
		if err := total.AddBigFloat(p.BigFloat()); err != nil {
			return bigfloat.BigFloat{}, err
		}
	}
	return total.BigFloat(), nil
}
