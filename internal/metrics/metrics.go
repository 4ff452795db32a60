// Package metrics instruments facet query sessions with Prometheus.
//
// A Recorder satisfies search.Observer: attach it to a session with
// search.WithObserver and every recomputation and cache hit is counted.
// Metrics are registered on the Registerer passed to NewRecorder so tests
// can use an isolated registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "tagfacet"
	subsystem = "search"
)

type Recorder struct {
	// Evaluations counts full recomputations of a session's result list.
	Evaluations prometheus.Counter

	// CacheHits counts reads served from the cached result list.
	CacheHits prometheus.Counter

	// EvaluationDuration measures how long a recomputation takes.
	EvaluationDuration prometheus.Histogram

	// ResultSize records how many photos an evaluation matched.
	ResultSize prometheus.Histogram

	// CatalogReloads counts catalog reloads by outcome (success, error).
	CatalogReloads *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		Evaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluations_total",
			Help:      "Total number of result list recomputations",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cache_hits_total",
			Help:      "Total number of reads served from the cached result list",
		}),
		EvaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Result list recomputation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
		ResultSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "result_size",
			Help:      "Number of photos matched per evaluation",
			Buckets:   []float64{0, 1, 10, 20, 50, 100, 500, 1000, 5000},
		}),
		CatalogReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "reloads_total",
			Help:      "Total catalog reloads by outcome",
		}, []string{"status"}),
	}
}

func (r *Recorder) ObserveEvaluation(d time.Duration, results int) {
	r.Evaluations.Inc()
	r.EvaluationDuration.Observe(d.Seconds())
	r.ResultSize.Observe(float64(results))
}

func (r *Recorder) ObserveCacheHit() {
	r.CacheHits.Inc()
}

func (r *Recorder) ObserveReload(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.CatalogReloads.WithLabelValues(status).Inc()
}
