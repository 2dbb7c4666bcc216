package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/exactsum/internal/accumulate"
	"github.com/agbru/exactsum/internal/accumulate/mocks"
	"github.com/agbru/exactsum/internal/dataset"
	apperrors "github.com/agbru/exactsum/internal/errors"
)

// stubPresenter records what it was asked to present.
type stubPresenter struct {
	table    []ComparisonResult
	result   *ComparisonResult
	partials []float64
}

func (s *stubPresenter) PresentComparisonTable(results []ComparisonResult, _ io.Writer) {
	s.table = results
}

func (s *stubPresenter) PresentResult(result ComparisonResult, _ PresentationOptions, _ io.Writer) {
	s.result = &result
}

func (s *stubPresenter) PresentPartials(_ string, values []float64, _ io.Writer) {
	s.partials = values
}

func (s *stubPresenter) HandleError(error, time.Duration, io.Writer) int {
	return apperrors.ExitErrorGeneric
}

func TestExecuteComparisons(t *testing.T) {
	t.Parallel()
	data := dataset.Dataset{X: []float64{1e100, 1, -1e100}}
	reg := accumulate.DefaultRegistry()
	accs, err := reg.Select("all")
	require.NoError(t, err)

	results := ExecuteComparisons(context.Background(), accs, data, Options{Op: accumulate.OpSum}, NullProgressReporter{}, io.Discard)
	require.Len(t, results, 4)

	byName := map[string]ComparisonResult{}
	for _, r := range results {
		require.NoError(t, r.Err, r.Name)
		byName[r.Name] = r
	}
	assert.Equal(t, 1.0, byName["exact"].Value)
	assert.Equal(t, "0x1p0", byName["exact"].Text)
	assert.Equal(t, 1.0, byName["rational"].Value)
	assert.Equal(t, "1", byName["rational"].Text)
	assert.Equal(t, 0.0, byName["naive"].Value)
	assert.True(t, math.IsNaN(byName["naive"].ULPs), "ULPs are set by the analysis")
}

func TestExecuteComparisonsWithMock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockAccumulator(ctrl)
	failing.EXPECT().Name().Return("broken").AnyTimes()
	failing.EXPECT().IsExact().Return(false).AnyTimes()
	failing.EXPECT().Clear()
	failing.EXPECT().AddProducts(gomock.Any(), gomock.Any()).Return(apperrors.NewPreconditionError("mock", "rejected"))

	ok := mocks.NewMockAccumulator(ctrl)
	ok.EXPECT().Name().Return("fixed").AnyTimes()
	ok.EXPECT().IsExact().Return(false).AnyTimes()
	ok.EXPECT().Clear()
	ok.EXPECT().AddProducts([]float64{1, 2}, []float64{3, 4}).Return(nil)
	ok.EXPECT().Float64().Return(11.0)
	ok.EXPECT().Value().Return(11.0)

	data := dataset.Dataset{X: []float64{1, 2}, Y: []float64{3, 4}}
	results := ExecuteComparisons(context.Background(), []accumulate.Accumulator{failing, ok}, data,
		Options{Op: accumulate.OpDot}, NullProgressReporter{}, io.Discard)

	require.Len(t, results, 2)
	var calcErr apperrors.CalculationError
	require.ErrorAs(t, results[0].Err, &calcErr)
	assert.Equal(t, "broken", calcErr.Accumulator)
	assert.ErrorIs(t, results[0].Err, apperrors.ErrPrecondition)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 11.0, results[1].Value)
}

func TestExecuteComparisonsParallelExact(t *testing.T) {
	t.Parallel()
	x, err := dataset.Generate(dataset.Gaussian, 3*chunkRows+17, 11)
	require.NoError(t, err)
	y, err := dataset.Generate(dataset.Laplace, len(x), 12)
	require.NoError(t, err)
	data := dataset.Dataset{X: x, Y: y}

	for _, op := range accumulate.Ops() {
		seq := ExecuteComparisons(context.Background(), []accumulate.Accumulator{accumulate.NewExact()}, data,
			Options{Op: op, Workers: 1}, NullProgressReporter{}, io.Discard)
		par := ExecuteComparisons(context.Background(), []accumulate.Accumulator{accumulate.NewExact()}, data,
			Options{Op: op, Workers: 4}, NullProgressReporter{}, io.Discard)
		require.NoError(t, seq[0].Err, op)
		require.NoError(t, par[0].Err, op)
		assert.Equal(t, seq[0].Text, par[0].Text, op)
	}
}

func TestExecuteComparisonsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	data := dataset.Dataset{X: make([]float64, 10)}
	results := ExecuteComparisons(ctx, []accumulate.Accumulator{accumulate.NewKahan()}, data,
		Options{Op: accumulate.OpSum}, NullProgressReporter{}, io.Discard)
	assert.True(t, apperrors.IsContextError(results[0].Err))
}

func TestExecuteComparisonsReportsProgress(t *testing.T) {
	t.Parallel()
	var last atomic.Uint64
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		assert.Equal(t, 1, n)
		for u := range ch {
			last.Store(math.Float64bits(u.Value))
		}
	})
	data := dataset.Dataset{X: make([]float64, 10)}
	ExecuteComparisons(context.Background(), []accumulate.Accumulator{accumulate.NewNaive()}, data,
		Options{Op: accumulate.OpL2}, reporter, io.Discard)
	assert.Equal(t, 1.0, math.Float64frombits(last.Load()))
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	next := math.Nextafter(1, 2)
	tests := []struct {
		name     string
		results  []ComparisonResult
		status   int
		refName  string
		wantULPs map[string]float64
	}{
		{
			name: "exact agree, naive measured",
			results: []ComparisonResult{
				{Name: "naive", Value: next, Duration: time.Microsecond},
				{Name: "exact", Exact: true, Value: 1, Duration: time.Millisecond},
				{Name: "rational", Exact: true, Value: 1, Duration: 2 * time.Millisecond},
			},
			status:   apperrors.ExitSuccess,
			refName:  "exact",
			wantULPs: map[string]float64{"naive": 1, "exact": 0, "rational": 0},
		},
		{
			name: "exact accumulators disagree",
			results: []ComparisonResult{
				{Name: "exact", Exact: true, Value: 1},
				{Name: "rational", Exact: true, Value: next},
			},
			status: apperrors.ExitErrorMismatch,
		},
		{
			name: "all failed",
			results: []ComparisonResult{
				{Name: "exact", Exact: true, Err: errors.New("fail")},
				{Name: "naive", Err: errors.New("fail")},
			},
			status: apperrors.ExitErrorGeneric,
		},
		{
			name: "exact failed, rational is the reference",
			results: []ComparisonResult{
				{Name: "exact", Exact: true, Err: errors.New("fail")},
				{Name: "rational", Exact: true, Value: 2},
				{Name: "kahan", Value: 2},
			},
			status:   apperrors.ExitSuccess,
			refName:  "rational",
			wantULPs: map[string]float64{"kahan": 0},
		},
		{
			name: "no exact accumulator",
			results: []ComparisonResult{
				{Name: "kahan", Value: 2, ULPs: math.NaN()},
			},
			status:  apperrors.ExitSuccess,
			refName: "kahan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &stubPresenter{}
			var out bytes.Buffer
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, p, p, &out)
			assert.Equal(t, tt.status, status)
			assert.Len(t, p.table, len(tt.results))
			if tt.refName != "" {
				require.NotNil(t, p.result)
				assert.Equal(t, tt.refName, p.result.Name)
			}
			for _, r := range tt.results {
				if want, ok := tt.wantULPs[r.Name]; ok {
					assert.Equal(t, want, r.ULPs, r.Name)
				}
			}
		})
	}
}

func TestAnalyzeSortsSuccessesAndExactFirst(t *testing.T) {
	t.Parallel()
	results := []ComparisonResult{
		{Name: "broken", Err: errors.New("x")},
		{Name: "naive", Value: 1, Duration: time.Nanosecond},
		{Name: "exact", Exact: true, Value: 1, Duration: time.Second},
	}
	p := &stubPresenter{}
	AnalyzeComparisonResults(results, PresentationOptions{}, p, p, io.Discard)
	names := []string{p.table[0].Name, p.table[1].Name, p.table[2].Name}
	assert.Equal(t, []string{"exact", "naive", "broken"}, names)
}

func TestRunPartials(t *testing.T) {
	t.Parallel()
	data := dataset.Dataset{X: []float64{1, 2}, Y: []float64{0, 0}}
	got, err := RunPartials(context.Background(), accumulate.NewExact(), data, accumulate.OpL2Dist)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 5}, got)

	_, err = RunPartials(context.Background(), accumulate.NewExact(), dataset.Dataset{X: []float64{1}}, accumulate.OpDot)
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunPartials(ctx, accumulate.NewExact(), data, accumulate.OpSum)
	assert.ErrorIs(t, err, context.Canceled)
}
