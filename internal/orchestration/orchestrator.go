package orchestration

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/exactsum/internal/accumulate"
	"github.com/agbru/exactsum/internal/bigfloat"
	"github.com/agbru/exactsum/internal/dataset"
	apperrors "github.com/agbru/exactsum/internal/errors"
	"github.com/agbru/exactsum/internal/format"
)

const tracerName = "github.com/agbru/exactsum/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per accumulator.
// Updates are dropped rather than blocking a run when it is full.
const ProgressBufferMultiplier = 5

// chunkRows is how many rows a run consumes between progress updates and
// cancellation checks.
const chunkRows = 1 << 14

// Options configures ExecuteComparisons.
type Options struct {
	// Op is the reduction every accumulator computes.
	Op accumulate.Op
	// Workers, when above 1, lets the exact accumulator split sum, dot
	// and l2dist reductions across goroutines.
	Workers int
	// Logger receives one debug entry per run. The zero value discards.
	Logger zerolog.Logger
}

// ExecuteComparisons runs every accumulator over data concurrently and
// returns one result per accumulator, in input order. Each accumulator is
// cleared before its run. A failing run does not stop the others.
func ExecuteComparisons(ctx context.Context, accs []accumulate.Accumulator, data dataset.Dataset, opts Options, progressReporter ProgressReporter, out io.Writer) []ComparisonResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]ComparisonResult, len(accs))
	progressChan := make(chan ProgressUpdate, len(accs)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(accs), out)

	tracer := otel.Tracer(tracerName)
	for i, acc := range accs {
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "accumulate."+acc.Name(), trace.WithAttributes(
				attribute.String("accumulator", acc.Name()),
				attribute.String("op", string(opts.Op)),
				attribute.Int("rows", data.Len()),
			))
			defer span.End()

			start := time.Now()
			err := run(spanCtx, acc, data, opts, func(p float64) {
				select {
				case progressChan <- ProgressUpdate{AccumulatorIndex: i, Value: p}:
				default:
				}
			})
			results[i] = newResult(acc, time.Since(start), err)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			opts.Logger.Debug().
				Str("accumulator", acc.Name()).
				Str("op", string(opts.Op)).
				Dur("duration", results[i].Duration).
				Err(err).
				Msg("accumulator finished")
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func newResult(acc accumulate.Accumulator, d time.Duration, err error) ComparisonResult {
	res := ComparisonResult{Name: acc.Name(), Exact: acc.IsExact(), ULPs: math.NaN(), Duration: d}
	if err != nil {
		res.Err = apperrors.CalculationError{Accumulator: acc.Name(), Cause: err}
		return res
	}
	res.Value = acc.Float64()
	res.Text = valueText(acc.Value())
	return res
}

func valueText(v any) string {
	switch v := v.(type) {
	case bigfloat.BigFloat:
		return v.String()
	case *big.Rat:
		return v.RatString()
	case float64:
		return format.FormatHexFloat(v)
	}
	return fmt.Sprint(v)
}

// run applies op chunk by chunk, reporting the consumed fraction.
func run(ctx context.Context, acc accumulate.Accumulator, data dataset.Dataset, opts Options, report func(float64)) error {
	acc.Clear()
	if exact, ok := acc.(*accumulate.Exact); ok && opts.Workers > 1 {
		if done, err := runParallel(ctx, exact, data, opts); done {
			report(1)
			return err
		}
	}
	n := data.Len()
	for lo := 0; lo < n; lo += chunkRows {
		if err := ctx.Err(); err != nil {
			return err
		}
		hi := min(lo+chunkRows, n)
		var y []float64
		if opts.Op.Binary() {
			if len(data.Y) != n {
				return apperrors.NewPreconditionError("orchestration.run", "length mismatch: %d and %d", n, len(data.Y))
			}
			y = data.Y[lo:hi]
		}
		if err := opts.Op.Apply(acc, data.X[lo:hi], y); err != nil {
			return err
		}
		report(float64(hi) / float64(n))
	}
	report(1)
	return nil
}

// runParallel handles the reductions that have a parallel exact form. It
// reports false when op has none.
func runParallel(ctx context.Context, acc *accumulate.Exact, data dataset.Dataset, opts Options) (bool, error) {
	var v bigfloat.BigFloat
	var err error
	switch opts.Op {
	case accumulate.OpSum:
		v, err = accumulate.ParallelSum(ctx, data.X, opts.Workers)
	case accumulate.OpDot:
		v, err = accumulate.ParallelDot(ctx, data.X, data.Y, opts.Workers)
	case accumulate.OpL2Dist:
		v, err = accumulate.ParallelL2Distance(ctx, data.X, data.Y, opts.Workers)
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}
	return true, acc.AddBigFloat(v)
}

// RunPartials computes the running-value sequence of op with acc,
// checking ctx between rows.
func RunPartials(ctx context.Context, acc accumulate.Accumulator, data dataset.Dataset, op accumulate.Op) ([]float64, error) {
	p, err := op.Partials(acc, data.X, data.Y)
	if err != nil {
		return nil, err
	}
	values := make([]float64, 0, p.Len())
	for i, v := range p.All() {
		if i%chunkRows == 0 {
			if err := ctx.Err(); err != nil {
				return values, err
			}
		}
		values = append(values, v)
	}
	return values, p.Err()
}

// reference picks the result the others are measured against: the
// "exact" accumulator if it succeeded, else any successful exact one.
func reference(results []ComparisonResult) *ComparisonResult {
	var ref *ComparisonResult
	for i := range results {
		r := &results[i]
		if r.Err != nil || !r.Exact {
			continue
		}
		if r.Name == accumulate.ExactName {
			return r
		}
		if ref == nil {
			ref = r
		}
	}
	return ref
}

// AnalyzeComparisonResults fills in ULP distances, presents the table and
// returns an exit code. Two exact accumulators that disagree are a
// mismatch. Approximate accumulators are only measured.
func AnalyzeComparisonResults(results []ComparisonResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		if results[i].Exact != results[j].Exact {
			return results[i].Exact
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *ComparisonResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else if firstValid == nil {
			firstValid = &results[i]
		}
	}

	ref := reference(results)
	mismatch := false
	if ref != nil {
		for i := range results {
			if results[i].Err != nil {
				continue
			}
			results[i].ULPs = format.ULPDistance(results[i].Value, ref.Value)
			if results[i].Exact && results[i].ULPs != 0 {
				mismatch = true
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No accumulator completed the run.\n")
		return handler.HandleError(firstError, 0, out)
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Exact accumulators disagree.\n")
		return apperrors.ExitErrorMismatch
	}
	if ref == nil {
		fmt.Fprintf(out, "\nGlobal Status: Success. No exact reference was run; errors are not measured.\n")
		presenter.PresentResult(*firstValid, opts, out)
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nGlobal Status: Success. All exact results agree.\n")
	presenter.PresentResult(*ref, opts, out)
	return apperrors.ExitSuccess
}
