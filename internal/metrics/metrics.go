// Package metrics defines Prometheus metrics for watch-price-tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wpt"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	}, []string{"path"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Pipeline metrics.
var (
	RowsProcessedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_rows_processed_total",
		Help:      "Total number of input rows run through the extraction pipeline.",
	})

	RowsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_rows_accepted_total",
		Help:      "Total number of rows that produced a record.",
	})

	RowsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_rows_rejected_total",
		Help:      "Total number of rows dropped, by reason.",
	}, []string{"reason"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_duration_seconds",
		Help:      "Duration of pipeline batch runs in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	ParseCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_cache_hits_total",
		Help:      "Total number of parse requests answered from the cache.",
	})

	ParseCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_cache_misses_total",
		Help:      "Total number of parse requests that ran the pipeline.",
	})
)

// Upload metrics.
var (
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of uploads, by final status.",
	}, []string{"status"})

	UploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_duration_seconds",
		Help:      "Duration of upload ingestion in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ListingsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_saved_total",
		Help:      "Total number of listings persisted.",
	})

	AmountsCappedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amounts_capped_total",
		Help:      "Total number of records whose amounts exceeded the ceiling and were cleared.",
	})
)

// Scheduler metrics.
var (
	CleanupDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cleanup_deleted_total",
		Help:      "Total number of listings removed by the retention job.",
	})

	CleanupLastSuccessTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cleanup_last_success_timestamp",
		Help:      "Unix timestamp of the last successful retention run.",
	})

	SchedulerNextCleanupTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_cleanup_timestamp",
		Help:      "Unix timestamp of the next scheduled retention run.",
	})
)
