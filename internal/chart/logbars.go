package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// logBars draws bars that start at the bottom of the plot area instead of
// at zero, so they work on a logarithmic Y axis.
type logBars struct {
	xs, ys []float64
	width  float64
	fill   color.Color
	edge   draw.LineStyle
}

func (b *logBars) add(x, y float64) {
	b.xs = append(b.xs, x)
	b.ys = append(b.ys, y)
}

// Plot implements plot.Plotter.
func (b *logBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, x := range b.xs {
		x0, x1 := trX(x-b.width/2), trX(x+b.width/2)
		top := trY(b.ys[i])
		pts := []vg.Point{
			{X: x0, Y: c.Min.Y},
			{X: x0, Y: top},
			{X: x1, Y: top},
			{X: x1, Y: c.Min.Y},
		}
		c.FillPolygon(b.fill, c.ClipPolygonY(pts))
		outline := append(pts, pts[0])
		c.StrokeLines(b.edge, c.ClipLinesY(outline)...)
	}
}

// DataRange implements plot.DataRanger. The Y minimum sits below the
// smallest bar so every bar has a visible body.
func (b *logBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for i, x := range b.xs {
		xmin = math.Min(xmin, x-b.width/2)
		xmax = math.Max(xmax, x+b.width/2)
		ymin = math.Min(ymin, b.ys[i]/2)
		ymax = math.Max(ymax, b.ys[i])
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (b *logBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.fill, c.ClipPolygonY(pts))
	c.StrokeLines(b.edge, c.ClipLinesY(append(pts, pts[0]))...)
}
