package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache read outcomes.
const (
	CacheFresh     = "fresh"
	CacheRefreshed = "refreshed"
	CacheStale     = "stale"
	CacheEmpty     = "empty"
)

var (
	// CacheReads counts RateCache reads per source and outcome.
	CacheReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byrates_cache_reads_total",
			Help: "Rate cache reads by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// UpstreamRequests counts calls to external feeds.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byrates_upstream_requests_total",
			Help: "Requests to upstream rate feeds by feed and result",
		},
		[]string{"feed", "result"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "byrates_upstream_request_duration_seconds",
			Help:    "Upstream rate feed latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"feed"},
	)

	// Conversions counts conversions by path and result.
	Conversions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byrates_conversions_total",
			Help: "Currency conversions by path and result",
		},
		[]string{"path", "result"},
	)

	ScrapeRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byrates_scrape_runs_total",
			Help: "Bank snapshot scrape runs by result",
		},
		[]string{"result"},
	)

	SnapshotBanks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "byrates_snapshot_banks",
			Help: "Number of banks written by the last successful scrape",
		},
	)
)

func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
