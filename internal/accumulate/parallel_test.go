package accumulate

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

func randomValues(n int, seed uint64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = (r.Float64() - 0.5) * math.Ldexp(1, r.IntN(200)-100)
	}
	return xs
}

func TestParallelSumMatchesSequential(t *testing.T) {
	t.Parallel()
	xs := randomValues(10000, 1)
	seq := NewExact()
	require.NoError(t, seq.AddAll(xs))

	for _, workers := range []int{0, 1, 3, 8, 50000} {
		got, err := ParallelSum(context.Background(), xs, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.True(t, got.Equal(seq.BigFloat()), "workers=%d", workers)
	}
}

func TestParallelDotAndL2Distance(t *testing.T) {
	t.Parallel()
	x, y := randomValues(5000, 2), randomValues(5000, 3)

	dot := NewExact()
	require.NoError(t, dot.AddProducts(x, y))
	gotDot, err := ParallelDot(context.Background(), x, y, 4)
	require.NoError(t, err)
	assert.True(t, gotDot.Equal(dot.BigFloat()))

	l2 := NewExact()
	require.NoError(t, l2.AddL2Distance(x, y))
	gotL2, err := ParallelL2Distance(context.Background(), x, y, 4)
	require.NoError(t, err)
	assert.True(t, gotL2.Equal(l2.BigFloat()))

	_, err = ParallelDot(context.Background(), x, y[:1], 4)
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
}

func TestParallelSumEmpty(t *testing.T) {
	t.Parallel()
	got, err := ParallelSum(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParallelSumCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ParallelSum(ctx, randomValues(100, 4), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelSumRejectsNonFinite(t *testing.T) {
	t.Parallel()
	xs := randomValues(100, 5)
	xs[77] = math.NaN()
	_, err := ParallelSum(context.Background(), xs, 3)
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
}
