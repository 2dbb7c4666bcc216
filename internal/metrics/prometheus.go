package metrics

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "exactsum"

// Recorder holds the run collectors, registered on one registry.
type Recorder struct {
	accumulations *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	ulpError      *prometheus.GaugeVec
	inputValues   prometheus.Counter
	failures      *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		accumulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accumulations_total",
			Help:      "Completed accumulator runs.",
		}, []string{"accumulator", "op"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "accumulation_duration_seconds",
			Help:      "Wall time of one accumulator run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"accumulator"}),
		ulpError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accumulator_ulp_error",
			Help:      "Distance in units in the last place between an accumulator and the exact result.",
		}, []string{"accumulator"}),
		inputValues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_values_total",
			Help:      "Input rows consumed.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accumulation_failures_total",
			Help:      "Accumulator runs that returned an error.",
		}, []string{"accumulator", "op"}),
	}
	for _, c := range []prometheus.Collector{r.accumulations, r.duration, r.ulpError, r.inputValues, r.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveInput counts consumed input rows.
func (r *Recorder) ObserveInput(rows int) {
	r.inputValues.Add(float64(rows))
}

// ObserveRun records one finished accumulator run.
func (r *Recorder) ObserveRun(accumulator, op string, d time.Duration, err error) {
	if err != nil {
		r.failures.WithLabelValues(accumulator, op).Inc()
		return
	}
	r.accumulations.WithLabelValues(accumulator, op).Inc()
	r.duration.WithLabelValues(accumulator).Observe(d.Seconds())
}

// ObserveError records an accumulator's distance from the exact result.
// An infinite distance is stored as -1, since the gauge is kept finite
// for textfile consumers.
func (r *Recorder) ObserveError(accumulator string, ulps float64) {
	if math.IsInf(ulps, 0) || math.IsNaN(ulps) {
		ulps = -1
	}
	r.ulpError.WithLabelValues(accumulator).Set(ulps)
}

// WriteTextfile writes every metric gathered by g to path in the
// Prometheus text format, for the node exporter textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
