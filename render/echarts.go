package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-eeg/plotdata/freq"
	"github.com/cwbudde/algo-eeg/plotdata/topo"
)

// heatColors matches the low-to-high ramp of the PNG heat map.
var heatColors = []string{"#000080", "#0000ff", "#00ffff", "#ffff00", "#ff0000", "#800000"}

// SpectrumChart builds an interactive line chart of every trace of axis.
// Non-finite samples are emitted as gaps.
func SpectrumChart(axis *freq.Axis, names []string) *charts.Line {
	line := charts.NewLine()

	yAxis := opts.YAxis{Name: "Power", Type: "value"}
	if e := axis.Extent(); !e.Y.IsEmpty() {
		yAxis.Min, yAxis.Max = e.Y.Min, e.Y.Max
	}

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: axis.Label(),
			Width:     "960px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{Title: axis.Label()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hz", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(yAxis),
	)

	domain := axis.Domain()
	xs := make([]string, len(domain))
	for i, f := range domain {
		xs[i] = strconv.FormatFloat(f, 'g', 6, 64)
	}
	line.SetXAxis(xs)

	for i, tr := range axis.Traces() {
		data := make([]opts.LineData, len(tr))
		for j, v := range tr {
			data[j] = lineValue(v)
		}
		line.AddSeries(traceName(names, i), data)
	}
	return line
}

// TopomapChart builds an interactive scatter rendering of g. Samples outside
// the head and non-finite samples are left out; colours span the normalized
// range [-1, 1].
func TopomapChart(g *topo.Grid, ip *topo.Interpolator) *charts.Scatter {
	scatter := charts.NewScatter()
	title := ip.Name()
	if title == "" {
		title = "Topographic map"
	}

	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "640px",
			Height:    "640px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: ip.Units()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -1.1, Max: 1.1, Name: "left / right", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -1.1, Max: 1.1, Name: "back / front", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: heatColors},
		}),
	)

	c, _ := g.Dims()
	scatter.AddSeries("map", scatterData(g),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: symbolSize(c)}))
	return scatter
}

// WriteHTML renders the given charts as a single page to w.
func WriteHTML(w io.Writer, cs ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(cs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// scatterData flattens the finite samples of g. A zero-width extent makes
// every sample infinite, which the chart options cannot encode.
func scatterData(g *topo.Grid) []opts.ScatterData {
	c, r := g.Dims()
	data := make([]opts.ScatterData, 0, c*r)
	for row := range r {
		for col := range c {
			v := g.Z(col, row)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			data = append(data, opts.ScatterData{
				Value: []interface{}{g.X(col), -g.Y(row), v},
			})
		}
	}
	return data
}

func lineValue(v float64) opts.LineData {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return opts.LineData{Value: "-"}
	}
	return opts.LineData{Value: v}
}

// symbolSize keeps neighbouring grid cells touching at 640px.
func symbolSize(cells int) int {
	if cells <= 0 {
		return 1
	}
	return max(1, 560/cells)
}
