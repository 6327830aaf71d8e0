package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "wpt-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "wpt-recording",
					Rules: []Rule{
						{
							Record: "wpt:http_requests:rate5m",
							Expr:   `sum(rate(wpt_http_requests_total[5m]))`,
						},
						{
							Record: "wpt:http_errors:rate5m",
							Expr:   `sum(rate(wpt_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "wpt:pipeline_rows:rate5m",
							Expr:   `sum(rate(wpt_pipeline_rows_processed_total[5m]))`,
						},
						{
							Record: "wpt:pipeline_accepted:rate5m",
							Expr:   `sum(rate(wpt_pipeline_rows_accepted_total[5m]))`,
						},
						{
							Record: "wpt:upload_failures:rate5m",
							Expr:   `sum(rate(wpt_uploads_total{status="failed"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
