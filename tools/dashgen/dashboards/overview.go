// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/watch-price-tracker/tools/dashgen/panels"
)

// BuildOverview constructs the WPT Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("WPT Overview").
		Uid("wpt-overview").
		Tags([]string{"wpt", "watch-price-tracker"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.AcceptRatioStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Pipeline.
	b.WithRow(dashboard.NewRowBuilder("Pipeline").
		WithPanel(panels.RowsRate()).
		WithPanel(panels.RejectionsByReason()).
		WithPanel(panels.PipelineDuration()).
		WithPanel(panels.ParseCacheHitRatio()))

	// Row 4: Uploads.
	b.WithRow(dashboard.NewRowBuilder("Uploads").
		WithPanel(panels.ListingsSaved()).
		WithPanel(panels.AmountsCapped()).
		WithPanel(panels.UploadsByStatus()).
		WithPanel(panels.UploadDuration()))

	// Row 5: Retention.
	b.WithRow(dashboard.NewRowBuilder("Retention").
		WithPanel(panels.LastCleanup()).
		WithPanel(panels.NextCleanup()).
		WithPanel(panels.CleanupDeleted()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
