package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// watch-price-tracker operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "wpt-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "wpt-alerts",
					Rules: []Rule{
						{
							Alert: "WptDown",
							Expr:  `absent(up{job="watch-price-tracker"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Watch Price Tracker is down",
								"description": "The watch-price-tracker job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "WptReadinessDown",
							Expr:  `wpt_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Watch Price Tracker readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "WptHighErrorRate",
							Expr:  `wpt:http_errors:rate5m / wpt:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Watch Price Tracker",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "WptUploadFailures",
							Expr:  `wpt:upload_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Uploads are failing",
								"description": "At least one upload has failed in each of the last 5 minutes.",
							},
						},
						{
							Alert: "WptLowAcceptRatio",
							Expr:  `wpt:pipeline_accepted:rate5m / wpt:pipeline_rows:rate5m < 0.2`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Extraction pipeline is rejecting most rows",
								"description": "Fewer than 20% of processed rows were accepted over the last 15 minutes. Check the vocabulary and input format.",
							},
						},
						{
							Alert: "WptCleanupStale",
							Expr:  `time() - wpt_cleanup_last_success_timestamp > 2 * 86400`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Retention cleanup has not succeeded in two days",
								"description": "Expired listings are not being removed. Check the cleanup job history.",
							},
						},
					},
				},
			},
		},
	}
}
