package orchestration

import (
	"io"
	"sync"
	"time"
)

// ComparisonResult is the outcome of one accumulator run. It is the
// shared domain type between orchestration and presentation.
type ComparisonResult struct {
	// Name identifies the accumulator (e.g., "exact").
	Name string
	// Exact reports whether the accumulator is exact.
	Exact bool
	// Value is the result rounded to float64. It is zero if Err is set.
	Value float64
	// Text renders the accumulator's native value. For exact
	// accumulators it shows every bit.
	Text string
	// ULPs is the distance from the exact reference, set by
	// AnalyzeComparisonResults. It is NaN when there is no reference.
	ULPs float64
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is the error that stopped the run, if any.
	Err error
}

// PresentationOptions configures how results are presented.
type PresentationOptions struct {
	Op      string
	Rows    int
	Verbose bool
}

// ProgressUpdate reports the fraction of rows one accumulator has
// consumed.
type ProgressUpdate struct {
	AccumulatorIndex int
	Value            float64
}

// ProgressReporter displays progress while accumulators run.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAccumulators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAccumulators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numAccumulators int, out io.Writer) {
	f(wg, progressChan, numAccumulators, out)
}

// NullProgressReporter drains the progress channel without output. It is
// used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter formats results for the user.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per accumulator.
	PresentComparisonTable(results []ComparisonResult, out io.Writer)
	// PresentResult displays the reference result.
	PresentResult(result ComparisonResult, opts PresentationOptions, out io.Writer)
	// PresentPartials displays a running-value sequence.
	PresentPartials(name string, values []float64, out io.Writer)
}

// ErrorHandler maps a run error to an exit code, reporting it on out.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
