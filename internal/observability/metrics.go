package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "raayan", Name: "comparisons_total", Help: "Comparisons run, by category"},
		[]string{"category"},
	)
	SearchCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "raayan", Name: "search_cache_hits_total", Help: "Search cache hits, by category"},
		[]string{"category"},
	)
	SearchCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "raayan", Name: "search_cache_misses_total", Help: "Search cache misses, by category"},
		[]string{"category"},
	)
	ProviderSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "raayan", Name: "provider_searches_total", Help: "Live search provider calls, by category and outcome"},
		[]string{"category", "outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "raayan", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "raayan",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
