package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// LastCleanup returns a stat panel showing time since the last successful
// retention cleanup.
func LastCleanup() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Last Cleanup").
		Description("Time since the last successful retention cleanup").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`time() - wpt_cleanup_last_success_timestamp{job="watch-price-tracker"}`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenYellowRed(26*3600, 50*3600)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// NextCleanup returns a stat panel showing time until the next scheduled
// cleanup.
func NextCleanup() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Cleanup").
		Description("Time until the next scheduled retention cleanup").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`wpt_scheduler_next_cleanup_timestamp{job="watch-price-tracker"} - time()`,
			"", "A",
		)).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}

// CleanupDeleted returns a timeseries panel showing listings removed by the
// retention cleanup per day.
func CleanupDeleted() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Listings Expired / day").
		Description("Listings deleted by the retention cleanup").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`increase(wpt_cleanup_deleted_total[1d])`, "deleted", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}
