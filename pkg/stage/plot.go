package stage

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const mb = 1024 * 1024

func sampleBytes(merged []MergedSample) (ids []string, forward, reverse []float64) {
	for _, m := range merged {
		ids = append(ids, m.ID)
		forward = append(forward, float64(m.ForwardBytes)/mb)
		reverse = append(reverse, float64(m.ReverseBytes)/mb)
	}
	return
}

func generateBarItems(vs []float64) []opts.BarData {
	var items = make([]opts.BarData, 0, len(vs))
	for _, v := range vs {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

// PlotSummaryHTML bar chart of forward/reverse MB per sample
func PlotSummaryHTML(path string, merged []MergedSample) error {
	var (
		bar                   = charts.NewBar()
		ids, forward, reverse = sampleBytes(merged)
	)
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Merged fastq size",
			Subtitle: "MB per sample",
		}),
	)
	bar.SetXAxis(ids).
		AddSeries("Forward", generateBarItems(forward)).
		AddSeries("Reverse", generateBarItems(reverse))

	output, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bar.Render(output); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}

// PlotSummaryPNG same chart as PlotSummaryHTML rendered by gonum/plot, format from extension
func PlotSummaryPNG(path string, merged []MergedSample) error {
	var ids, forward, reverse = sampleBytes(merged)

	p := plot.New()
	p.Title.Text = "Merged fastq size"
	p.Y.Label.Text = "MB"

	var width = vg.Points(12)
	barsF, err := plotter.NewBarChart(plotter.Values(forward), width)
	if err != nil {
		return err
	}
	barsF.Color = plotutil.Color(0)
	barsF.Offset = -width / 2

	barsR, err := plotter.NewBarChart(plotter.Values(reverse), width)
	if err != nil {
		return err
	}
	barsR.Color = plotutil.Color(1)
	barsR.Offset = width / 2

	p.Add(barsF, barsR)
	p.Legend.Add("Forward", barsF)
	p.Legend.Add("Reverse", barsR)
	p.Legend.Top = true
	p.NominalX(ids...)

	var w = vg.Length(len(ids)+2) * vg.Inch
	if w < 6*vg.Inch {
		w = 6 * vg.Inch
	}
	return p.Save(w, 4*vg.Inch, path)
}
