package accumulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/exactsum/internal/errors"
)

func TestParseOp(t *testing.T) {
	t.Parallel()
	for _, op := range Ops() {
		got, err := ParseOp(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := ParseOp("axpy")
	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestOpApplyMatchesPartials(t *testing.T) {
	t.Parallel()
	x := []float64{3, -1.5, 1e-3, 2}
	y := []float64{-1, 0.5, 1e-3, 8}
	for _, op := range Ops() {
		t.Run(string(op), func(t *testing.T) {
			t.Parallel()
			total := NewExact()
			require.NoError(t, op.Apply(total, x, y))

			p, err := op.Partials(NewExact(), x, y)
			require.NoError(t, err)
			vals, err := p.Collect()
			require.NoError(t, err)
			require.Len(t, vals, len(x))
			assert.Equal(t, total.Float64(), vals[len(vals)-1])
		})
	}
}

func TestOpBinary(t *testing.T) {
	t.Parallel()
	assert.False(t, OpSum.Binary())
	assert.False(t, OpL2.Binary())
	assert.True(t, OpDot.Binary())
	assert.True(t, OpL2Dist.Binary())
}
