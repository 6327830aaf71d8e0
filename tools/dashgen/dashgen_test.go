package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/watch-price-tracker/tools/dashgen/dashboards"
	"github.com/donaldgifford/watch-price-tracker/tools/dashgen/rules"
	"github.com/donaldgifford/watch-price-tracker/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "wpt-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "WPT Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 5)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 18, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "wpt-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "wpt-recording", group.Name)

	expectedRecords := []string{
		"wpt:http_requests:rate5m",
		"wpt:http_errors:rate5m",
		"wpt:pipeline_rows:rate5m",
		"wpt:pipeline_accepted:rate5m",
		"wpt:upload_failures:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "recording rule %s not in KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "wpt-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "wpt-alerts", group.Name)

	expectedAlerts := []string{
		"WptDown",
		"WptReadinessDown",
		"WptHighErrorRate",
		"WptUploadFailures",
		"WptLowAcceptRatio",
		"WptCleanupStale",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestValidate_Failures(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "bad",
		Rules: []rules.Rule{
			{Record: "syntax", Expr: `sum(rate(wpt_uploads_total[5m]`},
			{Record: "unknown", Expr: `rate(wpt_unknown_total[5m])`},
		},
	}}}}

	result := validate.Rules(cr, KnownMetrics)
	require.False(t, result.Ok())
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "invalid PromQL")
	assert.Contains(t, result.Errors[1], `unknown metric "wpt_unknown_total"`)
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	expr, err := parser.ParseExpr(`wpt:http_errors:rate5m / wpt:http_requests:rate5m > 0.05`)
	require.NoError(t, err)
	assert.Equal(t, []string{"wpt:http_errors:rate5m", "wpt:http_requests:rate5m"}, validate.MetricNames(expr))
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, false))

	dash, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "wpt-overview.json"))
	require.NoError(t, err)
	assert.Contains(t, string(dash), `"uid": "wpt-overview"`)

	alerts, err := os.ReadFile(filepath.Join(dir, "prometheus", "wpt-alerts.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(alerts), generatedHeader))
}

func TestRun_ValidateOnlyWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	require.NoError(t, run(cfg, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
