package orchestration

import (
	"time"

	"github.com/agbru/exactsum/internal/format"
)

// ProgressAggregator averages the progress of several accumulator runs
// and estimates the remaining time.
type ProgressAggregator struct {
	state           *format.ProgressWithETA
	numAccumulators int
}

// NewProgressAggregator returns an aggregator for numAccumulators runs,
// or nil if numAccumulators <= 0.
func NewProgressAggregator(numAccumulators int) *ProgressAggregator {
	if numAccumulators <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:           format.NewProgressWithETA(numAccumulators),
		numAccumulators: numAccumulators,
	}
}

// AggregatedProgress is the view after one update.
type AggregatedProgress struct {
	AccumulatorIndex int
	Value            float64
	AverageProgress  float64
	ETA              time.Duration
}

// Update applies one update.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.AccumulatorIndex, update.Value)
	return AggregatedProgress{
		AccumulatorIndex: update.AccumulatorIndex,
		Value:            update.Value,
		AverageProgress:  avg,
		ETA:              eta,
	}
}

// CalculateAverage returns the current average without updating.
func (a *ProgressAggregator) CalculateAverage() float64 { return a.state.CalculateAverage() }

// GetETA returns the current estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

// NumAccumulators returns the number of tracked runs.
func (a *ProgressAggregator) NumAccumulators() int { return a.numAccumulators }

// IsMultiAccumulator reports whether more than one run is tracked.
func (a *ProgressAggregator) IsMultiAccumulator() bool { return a.numAccumulators > 1 }

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
