package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the NDBC feeds.
type Metrics struct {
	FeedRequests *prometheus.CounterVec   // labels: feed={registry,observation}, outcome={success,error,not_found}
	FeedDuration *prometheus.HistogramVec // labels: feed={registry,observation}
	CacheLookups *prometheus.CounterVec   // labels: result={hit,miss}
}

const (
	FeedRegistry    = "registry"
	FeedObservation = "observation"

	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

func newMetrics() *Metrics {
	return &Metrics{
		FeedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ndbc",
			Name:      "feed_requests_total",
			Help:      "NDBC feed requests by feed and outcome.",
		}, []string{"feed", "outcome"}),
		FeedDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ndbc",
			Name:      "feed_request_duration_seconds",
			Help:      "Duration of NDBC feed requests.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"feed"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ndbc",
			Name:      "directory_cache_lookups_total",
			Help:      "Station directory cache lookups by result.",
		}, []string{"result"}),
	}
}

var (
	defaultMetrics *Metrics
	defaultOnce    sync.Once
)

// Default returns the shared metrics set, registering it with the default
// Prometheus registry exactly once.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = newMetrics()
		prometheus.MustRegister(
			defaultMetrics.FeedRequests,
			defaultMetrics.FeedDuration,
			defaultMetrics.CacheLookups,
		)
	})
	return defaultMetrics
}

// NewMetricsForTesting creates an unregistered metrics set so tests can
// observe counters without touching the default registry.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
