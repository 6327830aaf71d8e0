package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UploadsByStatus returns a timeseries panel showing uploads per hour by
// outcome.
func UploadsByStatus() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Uploads / hour").
		Description("Completed and failed uploads per hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (status) (increase(wpt_uploads_total[1h]))`,
			"{{status}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// UploadDuration returns a timeseries panel showing the p95 upload
// duration, from request to stored listings.
func UploadDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Upload Duration (p95)").
		Description("95th percentile time to ingest one uploaded file").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(Quantile(0.95, "wpt_upload_duration_seconds"), "p95", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ListingsSaved returns a stat panel showing listings stored in the last
// 24 hours.
func ListingsSaved() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Listings Saved (24h)").
		Description("Listings written to the store in the last 24 hours").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(wpt_listings_saved_total[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}

// AmountsCapped returns a stat panel showing amounts dropped for exceeding
// the configured ceiling in the last 24 hours.
func AmountsCapped() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Amounts Capped (24h)").
		Description("Prices nulled because they exceeded the amount ceiling").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`sum(increase(wpt_amounts_capped_total[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 50)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
