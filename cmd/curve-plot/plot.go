package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/tphakala/go-fmath"
	"gonum.org/v1/gonum/floats"
)

// Plot layout
const (
	plotMargin     = 40.0 // Pixels around the unit square
	curveLineWidth = 2.5
	gridLineWidth  = 1.0
	gridDivisions  = 4
	gridGray       = 0.85
	axisGray       = 0.4

	// Curve colors are spread around the hue circle
	curveSaturation = 0.7
	curveLightness  = 0.45
	fullHue         = 360.0
)

// curveSeries is one sampled curve: ys[i] is the curve at xs[i].
type curveSeries struct {
	ease fmath.Ease
	xs   []float64
	ys   []float64
}

// sampleSeries evaluates spec from 0 to 1 at n evenly spaced alphas.
func sampleSeries(m *fmath.Math, spec fmath.EaseSpec, n int) curveSeries {
	return curveSeries{
		ease: spec.Ease,
		xs:   floats.Span(make([]float64, n), 0, 1),
		ys:   m.SampleCurve(spec, make([]float64, n), 0, 1),
	}
}

// valueRange returns the y extent of all series, always covering [0, 1].
func valueRange(series []curveSeries) (lo, hi float64) {
	lo, hi = 0, 1
	for _, s := range series {
		lo = min(lo, floats.Min(s.ys))
		hi = max(hi, floats.Max(s.ys))
	}
	return lo, hi
}

// plotTransform maps curve coordinates to pixels, with y growing upwards.
type plotTransform struct {
	width, height float64
	lo, hi        float64
}

func (p plotTransform) point(x, y float64) (px, py float64) {
	innerW := p.width - 2*plotMargin
	innerH := p.height - 2*plotMargin
	px = plotMargin + fmath.Clamp(x, 0, 1)*innerW
	py = p.height - plotMargin - fmath.GetRangePct(p.lo, p.hi, y)*innerH
	return px, py
}

// curveColor returns a distinct color for curve i of n.
func curveColor(i, n int) gg.RGBA {
	return gg.HSL(fullHue*float64(i)/float64(max(n, 1)), curveSaturation, curveLightness)
}

// renderPlot draws every series over a grid and saves the image as PNG.
func renderPlot(path string, width, height int, series []curveSeries) error {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.White)

	lo, hi := valueRange(series)
	tr := plotTransform{width: float64(width), height: float64(height), lo: lo, hi: hi}

	if err := drawGrid(dc, tr); err != nil {
		return err
	}

	dc.SetLineWidth(curveLineWidth)
	for i, s := range series {
		c := curveColor(i, len(series))
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		for j := range s.xs {
			px, py := tr.point(s.xs[j], s.ys[j])
			if j == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("failed to stroke curve %s: %w", s.ease, err)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// drawGrid draws dashed quarter lines and the solid unit-square axes.
func drawGrid(dc *gg.Context, tr plotTransform) error {
	dc.SetLineWidth(gridLineWidth)
	dc.SetRGB(gridGray, gridGray, gridGray)
	dc.SetDash(4, 4)
	for i := 1; i < gridDivisions; i++ {
		v := float64(i) / gridDivisions
		x0, y0 := tr.point(v, tr.lo)
		x1, y1 := tr.point(v, tr.hi)
		dc.DrawLine(x0, y0, x1, y1)
		x0, y0 = tr.point(0, v)
		x1, y1 = tr.point(1, v)
		dc.DrawLine(x0, y0, x1, y1)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke grid: %w", err)
	}
	dc.ClearDash()

	dc.SetRGB(axisGray, axisGray, axisGray)
	x0, y0 := tr.point(0, 0)
	x1, y1 := tr.point(1, 1)
	dc.DrawRectangle(x0, y1, x1-x0, y0-y1)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke axes: %w", err)
	}
	return nil
}
