// Package metrics exposes Prometheus collectors for coloring searches.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mapcolor/coloring"
)

// Outcome label values.
const (
	OutcomeSolved    = "solved"
	OutcomeUnsolved  = "unsolved"
	OutcomeStepLimit = "step_limit"
	OutcomeCanceled  = "canceled"
	OutcomeError     = "error"
)

// Recorder owns a private registry and the search collectors.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	reg      *prometheus.Registry
	solves   *prometheus.CounterVec
	trials   *prometheus.CounterVec
	undos    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	trace    prometheus.Histogram
}

// New registers the collectors, plus the Go and process collectors, on a
// fresh registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapcolor_solves_total",
				Help: "Searches run, by caller and outcome",
			},
			[]string{"source", "outcome"},
		),
		trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapcolor_trials_total",
				Help: "Color trials recorded across all searches",
			},
			[]string{"source"},
		),
		undos: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mapcolor_undos_total",
				Help: "Backtracking undo steps recorded across all searches",
			},
			[]string{"source"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mapcolor_solve_duration_seconds",
				Help:    "Wall time of one search",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"source"},
		),
		trace: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mapcolor_trace_steps",
			Help:    "Trace length of one search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
	r.reg.MustRegister(
		r.solves, r.trials, r.undos, r.duration, r.trace,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Observe records one finished search. res may be nil when err is set.
func (r *Recorder) Observe(source string, res *coloring.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.solves.WithLabelValues(source, Outcome(res, err)).Inc()
	r.duration.WithLabelValues(source).Observe(elapsed.Seconds())
	if res == nil {
		return
	}
	r.trials.WithLabelValues(source).Add(float64(res.Stats.Trials))
	r.undos.WithLabelValues(source).Add(float64(res.Stats.Undos))
	r.trace.Observe(float64(len(res.Trace)))
}

// Outcome classifies a search result for the outcome label.
func Outcome(res *coloring.Result, err error) string {
	switch {
	case errors.Is(err, coloring.ErrStepLimit):
		return OutcomeStepLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case err != nil:
		return OutcomeError
	case res != nil && res.Solved:
		return OutcomeSolved
	default:
		return OutcomeUnsolved
	}
}

// Registry returns the private registry (tests, extra collectors).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
