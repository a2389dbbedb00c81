package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/daryltucker/boruvka-bench/internal/resource"
	"github.com/daryltucker/boruvka-bench/internal/stats"
)

// markers cycle per graph: circle, square, triangle, diamond.
var markers = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	draw.TriangleGlyph{},
	DiamondGlyph{},
}

// Speedup renders one speedup-vs-threads line per graph plus the ideal
// linear scaling reference over 1..len(perfCores) threads.
func Speedup(path string, curves []stats.Curve, perfCores []int) error {
	if len(curves) == 0 || len(perfCores) == 0 {
		return ErrNoData
	}
	maxThreads := len(perfCores)

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Giraph MST Speedup on Performance Cores ([%s])", resource.FromIDs(perfCores).Mask())
	pl.X.Label.Text = "Number of Threads (Performance Cores)"
	pl.Y.Label.Text = "Speedup Factor (vs 1 Thread)"
	pl.Legend.Top = true
	pl.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	pl.Add(grid)

	ideal := make(plotter.XYs, maxThreads)
	for i := range ideal {
		ideal[i] = plotter.XY{X: float64(i + 1), Y: float64(i + 1)}
	}
	idealLine, err := plotter.NewLine(ideal)
	if err != nil {
		return err
	}
	idealLine.Color = idealColor
	idealLine.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	pl.Add(idealLine)
	pl.Legend.Add("Ideal Linear Scaling", idealLine)

	for idx, c := range curves {
		xys := make(plotter.XYs, len(c.Points))
		for i, p := range c.Points {
			xys[i] = plotter.XY{X: float64(p.Threads), Y: p.Speedup}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return err
		}
		clr := plotutil.Color(idx)
		line.Color = clr
		line.Width = vg.Points(2)
		points.Color = clr
		points.Shape = markers[idx%len(markers)]
		points.Radius = vg.Points(3)

		pl.Add(line, points)
		pl.Legend.Add(c.Graph, line, points)
	}

	ticks := make([]plot.Tick, maxThreads)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: fmt.Sprint(i + 1)}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)
	pl.X.Min = 1
	pl.X.Max = float64(maxThreads)
	pl.Y.Min = 0

	return save(pl, 10*vg.Inch, 7*vg.Inch, path)
}

// DiamondGlyph is a square rotated by 45 degrees.
type DiamondGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}
