package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/milk9111/rollgrid/roll"
)

// gridChart renders a top-down scatter of every box at one instant as a
// standalone HTML page. Hovering a point shows (x, z, index).
func gridChart(w io.Writer, params roll.Params, at float64) error {
	poses := roll.Fill(params, at, nil)
	data := make([]opts.ScatterData, 0, len(poses))
	for i, p := range poses {
		data = append(data, opts.ScatterData{Value: []interface{}{p.Position.X, p.Position.Z, i}})
	}

	halfX := float64(roll.Lanes) / 2 * params.BoxSize
	rows := (params.BoxCount + roll.RowWidth - 1) / roll.RowWidth
	halfZ := float64(rows)/2*roll.RowSpacing + roll.RowSpacing

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "rollgrid layout", Theme: "dark", Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: "Box layout (top down)", Subtitle: fmt.Sprintf("t=%.3fs boxes=%d speed=%g", at, len(poses), params.Speed)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -halfX - params.BoxSize, Max: halfX + params.BoxSize, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -halfZ, Max: halfZ, Name: "Z", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("boxes", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return scatter.Render(w)
}
