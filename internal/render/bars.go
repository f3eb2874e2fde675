package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexanderramin/gantt/internal/domain"
)

// sectionBars plots one section's tasks as horizontal bars occupying the
// contiguous row range [firstRow, firstRow+len(tasks)).
type sectionBars struct {
	tasks    []domain.Task
	firstRow int // top-down index of tasks[0]
	rows     int // total rows in the chart
	color    color.Color
}

var (
	_ plot.Plotter     = (*sectionBars)(nil)
	_ plot.DataRanger  = (*sectionBars)(nil)
	_ plot.Thumbnailer = (*sectionBars)(nil)
)

// Plot implements plot.Plotter.
func (b *sectionBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, t := range b.tasks {
		y := rowY(b.rows, b.firstRow+i)
		xlo := trX(math.Min(t.Start, t.End))
		xhi := trX(math.Max(t.Start, t.End))
		ylo := trY(y - barHeight/2)
		yhi := trY(y + barHeight/2)
		pts := []vg.Point{
			{X: xlo, Y: ylo},
			{X: xhi, Y: ylo},
			{X: xhi, Y: yhi},
			{X: xlo, Y: yhi},
		}
		c.FillPolygon(b.color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements plot.DataRanger.
func (b *sectionBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	for _, t := range b.tasks {
		xmin = math.Min(xmin, math.Min(t.Start, t.End))
		xmax = math.Max(xmax, math.Max(t.Start, t.End))
	}
	ymin = rowY(b.rows, b.firstRow+len(b.tasks)-1) - barHeight/2
	ymax = rowY(b.rows, b.firstRow) + barHeight/2
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer for the legend swatch.
func (b *sectionBars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(b.color, pts)
}
