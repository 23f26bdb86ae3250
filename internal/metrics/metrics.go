// Package metrics exposes search activity as Prometheus metrics. A Recorder
// wraps the result and progress callbacks of a search, so the search code
// itself stays free of instrumentation.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/seedsearch/frame"
	"github.com/katalvlaran/seedsearch/search"
	"github.com/katalvlaran/seedsearch/wondercard"
)

const namespace = "seedsearch"

// Outcomes recorded by Finish.
const (
	OutcomeCompleted = "completed"
	OutcomeStopped   = "stopped"
	OutcomeFailed    = "failed"
)

// Recorder holds the search metrics registered on one registry.
type Recorder struct {
	SeedsScanned prometheus.Counter
	SeedsTotal   prometheus.Gauge
	Progress     prometheus.Gauge
	Results      *prometheus.CounterVec
	Runs         *prometheus.CounterVec
	Duration     prometheus.Histogram

	mu       sync.Mutex
	lastDone uint64
}

// New registers the search metrics on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		SeedsScanned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeds_scanned_total",
			Help:      "Seeds whose frame window has been fully scanned.",
		}),
		SeedsTotal: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "seeds",
			Help:      "Seeds in the current search space.",
		}),
		Progress: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "progress_ratio",
			Help:      "Fraction of the current search space scanned.",
		}),
		Results: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Matching frames, by nature.",
		}, []string{"nature"}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished searches, by outcome.",
		}, []string{"outcome"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of finished searches.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
	}
}

// WrapResult counts every result before handing it to next. next may be nil.
func (r *Recorder) WrapResult(next wondercard.ResultFunc) wondercard.ResultFunc {
	return func(f frame.WonderCard) {
		r.Results.WithLabelValues(f.Nature.String()).Inc()
		if next != nil {
			next(f)
		}
	}
}

// WrapProgress records progress before handing it to next. next may be nil,
// in which case the search is never stopped.
func (r *Recorder) WrapProgress(next wondercard.ProgressFunc) wondercard.ProgressFunc {
	return func(p search.Progress) bool {
		r.mu.Lock()
		if p.Done > r.lastDone {
			r.SeedsScanned.Add(float64(p.Done - r.lastDone))
			r.lastDone = p.Done
		}
		r.mu.Unlock()

		r.SeedsTotal.Set(float64(p.Total))
		r.Progress.Set(p.Fraction())
		if next == nil {
			return true
		}
		return next(p)
	}
}

// Finish records a finished run and resets the per-run progress state.
func (r *Recorder) Finish(outcome string, elapsed time.Duration) {
	r.mu.Lock()
	r.lastDone = 0
	r.mu.Unlock()

	r.Runs.WithLabelValues(outcome).Inc()
	r.Duration.Observe(elapsed.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
