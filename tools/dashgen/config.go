package main

import "errors"

// KnownMetrics is the set of metric names exported by watch-price-tracker
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"wpt_http_request_duration_seconds_bucket": true,
	"wpt_http_requests_total":                  true,
	"wpt_http_rate_limited_total":              true,

	// Health metrics.
	"wpt_healthz_up": true,
	"wpt_readyz_up":  true,

	// Pipeline metrics.
	"wpt_pipeline_rows_processed_total":    true,
	"wpt_pipeline_rows_accepted_total":     true,
	"wpt_pipeline_rows_rejected_total":     true,
	"wpt_pipeline_duration_seconds_bucket": true,
	"wpt_parse_cache_hits_total":           true,
	"wpt_parse_cache_misses_total":         true,

	// Upload metrics.
	"wpt_uploads_total":                  true,
	"wpt_upload_duration_seconds_bucket": true,
	"wpt_listings_saved_total":           true,
	"wpt_amounts_capped_total":           true,

	// Retention metrics.
	"wpt_cleanup_deleted_total":            true,
	"wpt_cleanup_last_success_timestamp":   true,
	"wpt_scheduler_next_cleanup_timestamp": true,

	// Recording rules.
	"wpt:http_requests:rate5m":     true,
	"wpt:http_errors:rate5m":       true,
	"wpt:pipeline_rows:rate5m":     true,
	"wpt:pipeline_accepted:rate5m": true,
	"wpt:upload_failures:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
