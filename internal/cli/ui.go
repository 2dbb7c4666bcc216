package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/exactsum/internal/format"
	"github.com/agbru/exactsum/internal/orchestration"
	"github.com/agbru/exactsum/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with the average progress of all
// running accumulators until progressChan is closed. It calls wg.Done
// on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numAccumulators int, out io.Writer) {
	defer wg.Done()
	if numAccumulators <= 0 {
		orchestration.DrainChannel(progressChan)
		return
	}

	agg := orchestration.NewProgressAggregator(numAccumulators)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(agg.NumAccumulators(), 0, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix(agg.NumAccumulators(), 1, 0))
				return
			}
			last = agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(agg.NumAccumulators(), last.AverageProgress, last.ETA))
		}
	}
}

func progressSuffix(n int, progress float64, eta time.Duration) string {
	label := "Accumulating"
	if n > 1 {
		label = fmt.Sprintf("Comparing %d accumulators", n)
	}
	return fmt.Sprintf(" %s%s%s %s",
		ui.ColorBlue(), label, ui.ColorReset(),
		format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}
