// Package render draws a Document as a horizontal bar chart and writes it to
// an image file. Each render builds its own plot canvas; nothing is shared
// between calls, so repeated or interleaved renders never interfere.
package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Config sizes the output canvas and names the file to write. The file
// format follows the path's extension (.png by default from the CLI) and the
// file is overwritten if it exists.
type Config struct {
	Width  float64 // inches
	Height float64 // inches
	Output string
}

// Bar thickness as a fraction of one row, leaving a gap between rows.
const barHeight = 0.5

// Gruvbox palette, cycled per section. The alpha keeps overlapping bars and
// grid lines readable.
var palette = []color.Color{
	color.NRGBA{R: 0x8e, G: 0xc0, B: 0x7c, A: 0xb3}, // green
	color.NRGBA{R: 0xfa, G: 0xbd, B: 0x2f, A: 0xb3}, // yellow
	color.NRGBA{R: 0xfb, G: 0x49, B: 0x34, A: 0xb3}, // red
	color.NRGBA{R: 0x83, G: 0xa5, B: 0x98, A: 0xb3}, // blue
	color.NRGBA{R: 0xd3, G: 0x86, B: 0x9b, A: 0xb3}, // purple
	color.NRGBA{R: 0xfe, G: 0x80, B: 0x19, A: 0xb3}, // orange
	color.NRGBA{R: 0xb8, G: 0xbb, B: 0x26, A: 0xb3}, // lime
}

var gridColor = color.NRGBA{R: 0x92, G: 0x83, B: 0x74, A: 0x80}

// Chart renders doc onto a fresh canvas and saves it to cfg.Output.
//
// One row per task, top to bottom in document order. Task labels become
// y-axis tick labels; each non-empty section gets one legend entry keyed by
// its bar color. Sections with no tasks are skipped: no row, no legend
// entry. An empty document produces a blank framed image.
func Chart(doc domain.Document, cfg Config) error {
	p := plot.New()

	rows := doc.TaskCount()
	p.Add(&plotter.Grid{Vertical: draw.LineStyle{
		Color:  gridColor,
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(3), vg.Points(3)},
	}})

	var ticks []plot.Tick
	row := 0
	for i, s := range doc.Sections {
		if len(s.Tasks) == 0 {
			continue
		}
		b := &sectionBars{
			tasks:    s.Tasks,
			firstRow: row,
			rows:     rows,
			color:    palette[i%len(palette)],
		}
		p.Add(b)
		p.Legend.Add(s.Name, b)
		for _, t := range s.Tasks {
			ticks = append(ticks, plot.Tick{Value: rowY(rows, row), Label: t.Label})
			row++
		}
	}

	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Legend.Top = true
	p.X.Tick.Label.Font.Size = vg.Points(12)
	p.Y.Tick.Label.Font.Size = vg.Points(12)

	if min, max, ok := doc.Span(); ok {
		if min == max {
			// Zero-width span: pad so the transform stays invertible.
			min, max = min-0.5, max+0.5
		}
		p.X.Min, p.X.Max = min, max
		p.Y.Min, p.Y.Max = -0.5, float64(rows)-0.5
	} else {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
	}

	w := vg.Length(cfg.Width) * vg.Inch
	h := vg.Length(cfg.Height) * vg.Inch
	if err := p.Save(w, h, cfg.Output); err != nil {
		return fmt.Errorf("saving chart to %s: %w", cfg.Output, err)
	}
	return nil
}

// rowY maps a top-down row index to a y coordinate. Row 0 renders at the top
// of the chart.
func rowY(rows, row int) float64 {
	return float64(rows - 1 - row)
}
