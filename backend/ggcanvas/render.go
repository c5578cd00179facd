// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"math"
	"strconv"

	"github.com/gogpu/graph"
)

// curveLineWidth matches the reference renderer's 2px strokes.
const curveLineWidth = 2

// Render repaints the canvas for one frame: white background, grid,
// axes, then every curve in list order. Curves with sampled branches
// are stroked with NaN samples splitting the stroke into separate
// segments; vertical directives become full-height lines.
func (c *Canvas) Render(v *graph.Viewport, curves []graph.Curve) error {
	c.dc.SetRGB(1, 1, 1)
	c.dc.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	if err := c.dc.Fill(); err != nil {
		return err
	}

	if c.cfg.grid {
		if err := c.drawGrid(v); err != nil {
			return err
		}
	}
	if c.cfg.axes {
		if err := c.drawAxes(v); err != nil {
			return err
		}
	}

	for _, curve := range curves {
		if err := c.drawCurve(v, curve); err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) drawCurve(v *graph.Viewport, curve graph.Curve) error {
	c.dc.SetRGBA(curve.Color.R, curve.Color.G, curve.Color.B, curve.Color.A)
	c.dc.SetLineWidth(curveLineWidth)

	if curve.Vertical {
		sx, _ := c.ToScreen(v, curve.VerticalX, 0)
		c.dc.DrawLine(sx, 0, sx, float64(c.height))
		return c.dc.Stroke()
	}

	for _, branch := range curve.Branches {
		penDown := false
		for i, y := range branch {
			if math.IsNaN(y) {
				penDown = false
				continue
			}
			sx, sy := c.ToScreen(v, curve.X[i], y)
			if penDown {
				c.dc.LineTo(sx, sy)
			} else {
				c.dc.MoveTo(sx, sy)
				penDown = true
			}
		}
		if err := c.dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// drawGrid strokes light lines at nice data intervals and, when labels
// are enabled, annotates them along the axes.
func (c *Canvas) drawGrid(v *graph.Viewport) error {
	step := niceStep(v.Width())

	c.dc.SetRGBA(0, 0, 0, 0.12)
	c.dc.SetLineWidth(1)
	for _, gx := range gridTicks(v.XMin, v.XMax, step) {
		sx, _ := c.ToScreen(v, gx, 0)
		c.dc.DrawLine(sx, 0, sx, float64(c.height))
	}
	for _, gy := range gridTicks(v.YMin, v.YMax, step) {
		_, sy := c.ToScreen(v, 0, gy)
		c.dc.DrawLine(0, sy, float64(c.width), sy)
	}
	if err := c.dc.Stroke(); err != nil {
		return err
	}

	if !c.cfg.labels {
		return nil
	}
	c.dc.SetRGBA(0, 0, 0, 0.6)
	_, originY := c.ToScreen(v, 0, 0)
	originX, _ := c.ToScreen(v, 0, 0)
	originY = clamp(originY, 12, float64(c.height)-4)
	originX = clamp(originX, 4, float64(c.width)-28)
	for _, gx := range gridTicks(v.XMin, v.XMax, step) {
		if gx == 0 {
			continue
		}
		sx, _ := c.ToScreen(v, gx, 0)
		c.dc.DrawStringAnchored(formatTick(gx), sx, originY-2, 0.5, 0)
	}
	for _, gy := range gridTicks(v.YMin, v.YMax, step) {
		if gy == 0 {
			continue
		}
		_, sy := c.ToScreen(v, 0, gy)
		c.dc.DrawStringAnchored(formatTick(gy), originX+2, sy-2, 0, 0)
	}
	return nil
}

// drawAxes strokes the x=0 and y=0 lines at half strength, matching
// the reference plot styling.
func (c *Canvas) drawAxes(v *graph.Viewport) error {
	c.dc.SetRGBA(0, 0, 0, 0.5)
	c.dc.SetLineWidth(1)
	if v.YMin <= 0 && v.YMax >= 0 {
		_, sy := c.ToScreen(v, 0, 0)
		c.dc.DrawLine(0, sy, float64(c.width), sy)
	}
	if v.XMin <= 0 && v.XMax >= 0 {
		sx, _ := c.ToScreen(v, 0, 0)
		c.dc.DrawLine(sx, 0, sx, float64(c.height))
	}
	return c.dc.Stroke()
}

// niceStep picks a 1/2/5 x 10^k grid interval giving roughly four to
// ten lines across the span.
func niceStep(span float64) float64 {
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / 8
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// gridTicks returns every multiple of step inside [lo, hi].
func gridTicks(lo, hi, step float64) []float64 {
	var out []float64
	for t := math.Ceil(lo/step) * step; t <= hi; t += step {
		out = append(out, t)
	}
	return out
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
