package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RowsRate returns a timeseries panel showing processed and accepted rows
// per minute.
func RowsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rows / min").
		Description("Rows processed and accepted by the extraction pipeline").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`wpt:pipeline_rows:rate5m * 60`, "processed", "A")).
		WithTarget(PromQuery(`wpt:pipeline_accepted:rate5m * 60`, "accepted", "B")).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RejectionsByReason returns a stacked timeseries panel of rejected rows
// per minute split by rejection reason.
func RejectionsByReason() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejections by Reason").
		Description("Rejected rows per minute by the stage that rejected them").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (reason) (rate(wpt_pipeline_rows_rejected_total[5m])) * 60`,
			"{{reason}}", "A",
		)).
		FillOpacity(30).
		LineWidth(1).
		Stacking(common.NewStackingConfigBuilder().Mode(common.StackingModeNormal)).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PipelineDuration returns a timeseries panel showing p50 and p95 batch
// durations.
func PipelineDuration() *timeseries.PanelBuilder {
	const metric = "wpt_pipeline_duration_seconds"
	return timeseries.NewPanelBuilder().
		Title("Batch Duration").
		Description("Time to run one batch through every pipeline stage").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.50, metric), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, metric), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ParseCacheHitRatio returns a timeseries panel showing the parse endpoint
// cache hit ratio.
func ParseCacheHitRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Parse Cache Hit %").
		Description("Share of parse endpoint lines served from the result cache").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(wpt_parse_cache_hits_total[5m])) / (sum(rate(wpt_parse_cache_hits_total[5m])) + sum(rate(wpt_parse_cache_misses_total[5m]))) * 100`,
			"hit %", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
