package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Search outcomes recorded in the searches counter
const (
	resultOK             = "ok"
	resultInvalidPattern = "invalid_pattern"
	resultBadRequest     = "bad_request"
)

type metrics struct {
	registry  *prometheus.Registry
	searches  *prometheus.CounterVec
	matches   prometheus.Histogram
	cacheHits prometheus.Counter
}

// newMetrics registers the service collectors on a private registry so that
// several servers can coexist in one process.
func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luni",
			Name:      "search_requests_total",
			Help:      "Search requests by result.",
		}, []string{"result"}),
		matches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luni",
			Name:      "search_matches",
			Help:      "Number of characters returned per successful search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "luni",
			Name:      "pattern_cache_hits_total",
			Help:      "Searches served with an already compiled pattern.",
		}),
	}

	m.registry.MustRegister(m.searches, m.matches, m.cacheHits)
	return m
}
