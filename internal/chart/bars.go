// Package chart renders benchmark results with gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/daryltucker/boruvka-bench/internal/model"
	"github.com/daryltucker/boruvka-bench/internal/stats"
)

// ErrNoData is returned when there is nothing to plot; no file is written.
var ErrNoData = errors.New("no results to plot")

// barWidth is the width of one bar in data units; a group is two bars.
const barWidth = 0.35

var (
	gunrockFill  = color.RGBA{135, 206, 235, 255} // skyblue
	gunrockEdge  = color.RGBA{0, 0, 255, 255}
	giraphFill   = color.RGBA{144, 238, 144, 255} // lightgreen
	giraphEdge   = color.RGBA{0, 128, 0, 255}
	idealColor   = color.RGBA{0, 0, 0, 102}
	barLabelSize = vg.Points(8)
)

// series is one backend's bars across all graphs.
type series struct {
	backend string
	label   string
	fill    color.Color
	edge    color.Color
	offset  float64
}

// Comparison renders the grouped bar chart of mean algorithm time per
// graph and backend, with 95% CI error bars on a log scale. threads is
// the Giraph thread count shown in the legend.
func Comparison(path string, summaries map[string]map[string]model.Summary, threads int) error {
	graphs := stats.SortedKeys(summaries)
	if len(graphs) == 0 {
		return ErrNoData
	}

	all := []series{
		{model.BackendGunrock, "Gunrock (GPU)", gunrockFill, gunrockEdge, -barWidth / 2},
		{model.BackendGiraph, fmt.Sprintf("Apache Giraph (CPU - %d threads)", threads), giraphFill, giraphEdge, barWidth / 2},
	}

	pl := plot.New()
	pl.Title.Text = "MST Algorithm Performance: Gunrock vs Giraph"
	pl.Y.Label.Text = "Algorithm Time (ms)"
	pl.Y.Scale = plot.LogScale{}
	pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	pl.Legend.Top = true

	plotted := false
	for _, s := range all {
		bars := &logBars{width: barWidth, fill: s.fill, edge: draw.LineStyle{Color: s.edge, Width: vg.Points(1)}}
		var (
			errPts  errorPoints
			labels  plotter.XYLabels
			hasBars bool
		)
		for i, g := range graphs {
			sum, ok := summaries[g][s.backend]
			if !ok || sum.RunsSuccessful == 0 || sum.Mean <= 0 {
				continue
			}
			x := float64(i) + s.offset
			ci := stats.CI95(sum)
			bars.add(x, sum.Mean)
			errPts.XYs = append(errPts.XYs, plotter.XY{X: x, Y: sum.Mean})
			errPts.YErrors = append(errPts.YErrors, struct{ Low, High float64 }{clampLow(sum.Mean, ci), ci})
			labels.XYs = append(labels.XYs, plotter.XY{X: x, Y: sum.Mean + ci})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.1f", sum.Mean))
			hasBars = true
		}
		if !hasBars {
			continue
		}
		plotted = true

		eb, err := plotter.NewYErrorBars(errPts)
		if err != nil {
			return err
		}
		eb.CapWidth = vg.Points(10)

		lbl, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}
		for i := range lbl.TextStyle {
			lbl.TextStyle[i].Font.Size = barLabelSize
			lbl.TextStyle[i].XAlign = draw.XCenter
			lbl.TextStyle[i].YAlign = draw.YBottom
		}
		lbl.Offset = vg.Point{Y: vg.Points(3)}

		pl.Add(bars, eb, lbl)
		pl.Legend.Add(s.label, bars)
	}
	if !plotted {
		return ErrNoData
	}

	pl.NominalX(graphs...)
	pl.X.Min = -0.5
	pl.X.Max = float64(len(graphs)) - 0.5
	pl.X.Tick.Label.Rotation = math.Pi / 4
	pl.X.Tick.Label.XAlign = draw.XRight
	pl.X.Tick.Label.YAlign = draw.YCenter

	return save(pl, 12*vg.Inch, 7*vg.Inch, path)
}

// clampLow keeps the lower whisker above zero on a log axis.
func clampLow(mean, ci float64) float64 {
	if ci >= mean {
		return mean * 0.99
	}
	return ci
}

// errorPoints feeds plotter.NewYErrorBars.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

func save(pl *plot.Plot, w, h vg.Length, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return pl.Save(w, h, path)
}
