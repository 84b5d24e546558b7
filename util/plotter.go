package util

import (
	"io"

	"github.com/MetisPrometheus/dashboard-trimmeriet/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderVisitorChart renders the merged actual+predicted series for one day
// as an HTML line chart. Slots where only a prediction exists leave a gap
// in the actual line, and vice versa.
func RenderVisitorChart(w io.Writer, date string, series []models.SeriesPoint) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Gym Visitors " + date,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Visitors on " + date,
			Subtitle: "Actual counts and same-day forecast",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	xAxis := make([]string, 0, len(series))
	actual := make([]opts.LineData, 0, len(series))
	predicted := make([]opts.LineData, 0, len(series))
	for _, point := range series {
		xAxis = append(xAxis, point.Time)
		if point.Visitors != nil {
			actual = append(actual, opts.LineData{Value: *point.Visitors})
		} else {
			actual = append(actual, opts.LineData{Value: nil})
		}
		if point.Predicted != nil {
			predicted = append(predicted, opts.LineData{Value: *point.Predicted})
		} else {
			predicted = append(predicted, opts.LineData{Value: nil})
		}
	}

	line.SetXAxis(xAxis).
		AddSeries("Actual", actual).
		AddSeries("Predicted", predicted,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)

	return line.Render(w)
}
