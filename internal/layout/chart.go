package layout

import (
	"math"

	"github.com/rshade/footprint/internal/greenops"
	"github.com/rshade/footprint/internal/report"
)

// chartArea is the plot rectangle, excluding title and labels.
type chartArea struct {
	left, top, width, height float64
}

// Bar chart geometry.
const (
	barWidthShare  = 0.5
	chartTitleGap  = 25.0
	valueLabelGap  = 6.0
	categoryGap    = 16.0
	chartLineWidth = 0.8
)

// BarHeights returns the bar heights for values within a plot of height h.
// Bars scale to the largest value; the scale never drops below 1 kg, so
// all-zero input yields flat bars instead of a division by zero.
func BarHeights(values []float64, h float64) []float64 {
	scale := 1.0
	for _, v := range values {
		scale = math.Max(scale, v)
	}
	heights := make([]float64, len(values))
	for i, v := range values {
		heights[i] = math.Max(v, 0) / scale * h
	}
	return heights
}

// barChart draws one vertical bar per scope with value labels in tonnes
// above and category labels below, plus a baseline and a left axis.
func (e *Engine) barChart(c *canvas, r *report.Report, a chartArea) {
	values := []float64{r.Emissions.Scope1, r.Emissions.Scope2, r.Emissions.Scope3}
	heights := BarHeights(values, a.height)
	baseline := a.top + a.height
	slot := a.width / float64(len(values))
	barWidth := slot * barWidthShare

	c.text(a.left-40, a.top-chartTitleGap, "Emissionen je Scope in t CO₂e", sansBold(12))

	for i, v := range values {
		x := a.left + float64(i)*slot + (slot-barWidth)/2
		cx := x + barWidth/2
		top := baseline - heights[i]

		c.fillRect(x, top, barWidth, heights[i], 0, ScopeColors[i])
		tonnes, err := greenops.ConvertKg(v, "t")
		if err != nil {
			tonnes = 0
		}
		c.textCenter(cx, top-valueLabelGap, greenops.FormatFloat(tonnes, greenops.TonnePrecision), sansBold(9))
		c.textCenter(cx, baseline+categoryGap, scopeLabel(i), sans(9))
	}

	axis := ColorText
	c.add(
		Line{X1: a.left, Y1: baseline, X2: a.left + a.width, Y2: baseline, Color: axis, Width: chartLineWidth},
		Line{X1: a.left, Y1: a.top, X2: a.left, Y2: baseline, Color: axis, Width: chartLineWidth},
	)
}

func scopeLabel(i int) string {
	return [...]string{"Scope 1", "Scope 2", "Scope 3"}[i]
}
