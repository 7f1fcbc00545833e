// Package plot renders scenario sweep summaries as a self-contained HTML
// report: risk coverage per scenario, then fleet utilization with the total
// captured weight on a secondary axis.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Asiantown/GeoEvents/scenario"
)

// DefaultTitle and DefaultSubtitle head the report when the caller does not
// override them.
const (
	DefaultTitle    = "Scenario Comparison"
	DefaultSubtitle = "Patrol coverage and resource utilization"
)

// Render writes the HTML report for rows to w. Rows render in input order.
func Render(w io.Writer, rows []scenario.Summary, title, subtitle string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no summary rows to plot")
	}
	if title == "" {
		title = DefaultTitle
	}
	if subtitle == "" {
		subtitle = DefaultSubtitle
	}

	names := make([]string, len(rows))
	coverage := make([]opts.BarData, len(rows))
	avgUtil := make([]opts.BarData, len(rows))
	maxUtil := make([]opts.LineData, len(rows))
	weight := make([]opts.LineData, len(rows))
	for i, r := range rows {
		names[i] = r.Scenario
		coverage[i] = opts.BarData{Value: round1(r.RiskCoverageRatio * 100)}
		avgUtil[i] = opts.BarData{Value: round1(r.AvgUtilization * 100)}
		maxUtil[i] = opts.LineData{Value: round1(r.MaxUtilization * 100)}
		weight[i] = opts.LineData{Value: round1(r.TotalWeight)}
	}

	coverageBar := charts.NewBar()
	coverageBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Coverage (%)", Max: 100}),
	)
	coverageBar.SetXAxis(names).
		AddSeries("Risk Coverage (%)", coverage,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))

	utilBar := charts.NewBar()
	utilBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Fleet Utilization and Captured Weight"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Utilization (%)"}),
	)
	utilBar.ExtendYAxis(opts.YAxis{Name: "Total Weight", Type: "value"})
	utilBar.SetXAxis(names).AddSeries("Avg Utilization (%)", avgUtil)

	maxLine := charts.NewLine()
	maxLine.SetXAxis(names).AddSeries("Max Utilization (%)", maxUtil)
	weightLine := charts.NewLine()
	weightLine.SetXAxis(names).
		AddSeries("Total Weight", weight,
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1}))
	utilBar.Overlap(maxLine, weightLine)

	page := components.NewPage()
	page.AddCharts(coverageBar, utilBar)
	return page.Render(w)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
