package accumulate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

func TestPartialL2Distances(t *testing.T) {
	t.Parallel()
	p, err := PartialL2Distances(NewExact(), []float64{1, 2}, []float64{0, 0})
	require.NoError(t, err)
	got, err := p.Collect()
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, 5}, got); diff != "" {
		t.Errorf("partial L2 distances (-want +got):\n%s", diff)
	}
}

func TestPartialSequences(t *testing.T) {
	t.Parallel()
	z0 := []float64{1, -2, 3}
	z1 := []float64{0.5, 2, -1}
	tests := []struct {
		name string
		make func(Accumulator) (*Partials, error)
		want []float64
	}{
		{"sums", func(a Accumulator) (*Partials, error) { return PartialSums(a, z0), nil }, []float64{1, -1, 2}},
		{"l1s", func(a Accumulator) (*Partials, error) { return PartialL1s(a, z0), nil }, []float64{1, 3, 6}},
		{"l2s", func(a Accumulator) (*Partials, error) { return PartialL2s(a, z0), nil }, []float64{1, 5, 14}},
		{"dots", func(a Accumulator) (*Partials, error) { return PartialDots(a, z0, z1) }, []float64{0.5, -3.5, -6.5}},
		{"l1 distances", func(a Accumulator) (*Partials, error) { return PartialL1Distances(a, z0, z1) }, []float64{0.5, 4.5, 8.5}},
		{"l2 distances", func(a Accumulator) (*Partials, error) { return PartialL2Distances(a, z0, z1) }, []float64{0.25, 16.25, 32.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, acc := range allAccumulators() {
				p, err := tt.make(acc)
				require.NoError(t, err)
				assert.Equal(t, len(tt.want), p.Len())
				got, err := p.Collect()
				require.NoError(t, err)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("%s (-want +got):\n%s", acc.Name(), diff)
				}
			}
		})
	}
}

func TestPartialsClearFirst(t *testing.T) {
	t.Parallel()
	acc := NewExact()
	require.NoError(t, acc.Add(100))
	got, err := PartialSums(acc, []float64{1}).Collect()
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, got)
}

func TestPartialsAreNotRestartable(t *testing.T) {
	t.Parallel()
	p := PartialSums(NewExact(), []float64{1, 2, 3})
	v, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	rest, err := p.Collect()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, rest)

	_, ok = p.Next()
	assert.False(t, ok)
	again, err := p.Collect()
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestPartialsAll(t *testing.T) {
	t.Parallel()
	p := PartialL2s(NewKahan(), []float64{1, 2, 3, 4})
	var idx []int
	var vals []float64
	for i, v := range p.All() {
		idx = append(idx, i)
		vals = append(vals, v)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []float64{1, 5}, vals)

	for i, v := range p.All() {
		assert.Equal(t, 2, i)
		assert.Equal(t, 14.0, v)
		break
	}
}

func TestPartialsStopOnError(t *testing.T) {
	t.Parallel()
	p := PartialSums(NewExact(), []float64{1, math.Inf(-1), 2})
	got, err := p.Collect()
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
	assert.Equal(t, []float64{1}, got)
	assert.ErrorIs(t, p.Err(), apperrors.ErrPrecondition)
}

func TestPartialLengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := PartialDots(NewExact(), []float64{1}, nil)
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
	_, err = PartialL1Distances(NewExact(), nil, []float64{1})
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
	_, err = PartialL2Distances(NewExact(), []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)
}
