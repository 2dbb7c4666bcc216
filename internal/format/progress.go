package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the estimate shown to the user.
const maxETA = 24 * time.Hour

// rateSmoothing is the weight of the newest observation in the
// exponential moving average of the progress rate.
const rateSmoothing = 0.3

// ProgressState tracks the progress of several concurrent accumulator
// runs and averages them into one value.
type ProgressState struct {
	progresses      []float64
	numAccumulators int
}

// NewProgressState returns a state tracking numAccumulators runs.
func NewProgressState(numAccumulators int) *ProgressState {
	return &ProgressState{
		progresses:      make([]float64, max(numAccumulators, 0)),
		numAccumulators: numAccumulators,
	}
}

// Update records the progress of run index, clamped to [0, 1]. Unknown
// indices are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the mean progress across all runs.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numAccumulators <= 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numAccumulators)
}

// ProgressWithETA adds a smoothed completion estimate to ProgressState.
type ProgressWithETA struct {
	*ProgressState
	numAccumulators int
	startTime       time.Time
	lastUpdate      time.Time
	progressRate    float64 // average progress per second
}

// NewProgressWithETA returns a tracker whose clock starts now.
func NewProgressWithETA(numAccumulators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState:   NewProgressState(numAccumulators),
		numAccumulators: numAccumulators,
		startTime:       now,
		lastUpdate:      now,
	}
}

// UpdateWithETA records an update and returns the new average progress
// with the estimated time remaining.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	now := time.Now()
	if elapsed := now.Sub(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		instant := avg / elapsed
		if p.progressRate == 0 {
			p.progressRate = instant
		} else {
			p.progressRate = rateSmoothing*instant + (1-rateSmoothing)*p.progressRate
		}
	}
	p.lastUpdate = now
	return avg, p.GetETA()
}

// GetETA returns the current estimate, or 0 while there is no rate yet
// or once everything is done.
func (p *ProgressWithETA) GetETA() time.Duration {
	avg := p.CalculateAverage()
	if p.progressRate <= 0 || avg >= 1 {
		return 0
	}
	seconds := (1 - avg) / p.progressRate
	if seconds > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(seconds * float64(time.Second))
}

// FormatETA renders an estimate compactly (e.g., "2m30s", "1h15m").
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress as a bar of the given width.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	var b strings.Builder
	b.Grow(length * 3)
	for i := range length {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA renders percentage, bar and estimate on one
// line.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", min(max(progress, 0), 1)*100, ProgressBar(progress, width), FormatETA(eta))
}

// FormatNumberString inserts thousands separators into a decimal
// integer string.
func FormatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
