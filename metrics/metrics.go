// Package metrics exposes Prometheus instrumentation for the wage-impact
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalculationsTotal counts engine invocations by operation.
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wage_impact_calculations_total",
			Help: "Total number of impact calculations by operation",
		},
		[]string{"operation"},
	)

	// CacheHits counts scenario-comparison cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wage_impact_cache_hits_total",
			Help: "Total number of scenario comparison cache hits",
		},
	)

	// CacheMisses counts scenario-comparison cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wage_impact_cache_misses_total",
			Help: "Total number of scenario comparison cache misses",
		},
	)

	// RequestDuration tracks HTTP handler latency.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wage_impact_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"path", "method", "status"},
	)
)
