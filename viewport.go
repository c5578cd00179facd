package graph

import (
	"log/slog"
	"math"
)

const (
	// minZoomSpan is the smallest box span zoom-to-box accepts; smaller
	// boxes are near-clicks and are ignored.
	minZoomSpan = 0.1

	// boxZoomMargin expands the zoom-to-box square by this fraction of
	// the side length on each edge.
	boxZoomMargin = 0.05
)

// Viewport is the visible data-space rectangle. It is mutated only
// through its methods, which maintain two invariants: the extent is
// positive and finite on both axes, and after every zoom the rectangle
// is square (panning preserves the current size exactly).
//
// Viewport has a single owner and is not safe for concurrent use.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewViewport returns the default view, [-10,10] on both axes.
func NewViewport() *Viewport {
	return &Viewport{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

// Width returns the horizontal extent.
func (v *Viewport) Width() float64 { return v.XMax - v.XMin }

// Height returns the vertical extent.
func (v *Viewport) Height() float64 { return v.YMax - v.YMin }

// Center returns the midpoint of the rectangle.
func (v *Viewport) Center() Point {
	return Pt((v.XMin+v.XMax)/2, (v.YMin+v.YMax)/2)
}

// Contains reports whether p lies inside the rectangle.
func (v *Viewport) Contains(p Point) bool {
	return p.X >= v.XMin && p.X <= v.XMax && p.Y >= v.YMin && p.Y <= v.YMax
}

// SetBounds replaces the rectangle. Degenerate bounds (non-positive or
// non-finite extent) are rejected and the viewport is left unchanged.
func (v *Viewport) SetBounds(xMin, xMax, yMin, yMax float64) error {
	if !validSpan(xMin, xMax) || !validSpan(yMin, yMax) {
		Logger().Warn("rejected viewport bounds",
			slog.Float64("xMin", xMin), slog.Float64("xMax", xMax),
			slog.Float64("yMin", yMin), slog.Float64("yMax", yMax))
		return ErrDegenerateViewport
	}
	v.XMin, v.XMax, v.YMin, v.YMax = xMin, xMax, yMin, yMax
	return nil
}

// Pan translates the rectangle by a data-space delta. Width and height
// are unchanged, so panning never breaks the square invariant and
// Pan(dx,dy) followed by Pan(-dx,-dy) restores the original bounds.
// Non-finite deltas are ignored.
func (v *Viewport) Pan(dx, dy float64) {
	if !isFinite(dx) || !isFinite(dy) {
		return
	}
	v.XMin += dx
	v.XMax += dx
	v.YMin += dy
	v.YMax += dy
}

// ZoomAround scales the rectangle about the pivot (px,py): the distance
// from the pivot to each edge is multiplied by factor, so the pivot
// keeps its relative position in the view. A factor above 1 zooms out,
// below 1 zooms in, matching the scroll convention of the interaction
// surface. After scaling, width and height are both set to the larger
// of the two so the rectangle stays square.
func (v *Viewport) ZoomAround(px, py, factor float64) error {
	if !isFinite(factor) || factor <= 0 || !isFinite(px) || !isFinite(py) {
		return ErrDegenerateViewport
	}
	xMin := px - (px-v.XMin)*factor
	xMax := px + (v.XMax-px)*factor
	yMin := py - (py-v.YMin)*factor
	yMax := py + (v.YMax-py)*factor
	if !validSpan(xMin, xMax) || !validSpan(yMin, yMax) {
		Logger().Warn("rejected zoom",
			slog.Float64("pivot_x", px), slog.Float64("pivot_y", py),
			slog.Float64("factor", factor))
		return ErrDegenerateViewport
	}

	// Re-square around the pivot's fractional position, so a viewport
	// that was square stays bit-identical here.
	side := math.Max(xMax-xMin, yMax-yMin)
	if w := xMax - xMin; w != side {
		frac := (px - xMin) / w
		xMin = px - frac*side
		xMax = xMin + side
	}
	if h := yMax - yMin; h != side {
		frac := (py - yMin) / h
		yMin = py - frac*side
		yMax = yMin + side
	}
	v.XMin, v.XMax, v.YMin, v.YMax = xMin, xMax, yMin, yMax
	return nil
}

// ZoomToRect sets the view to the minimal square enclosing the box with
// opposite corners a and b, centered on the box center and expanded by
// boxZoomMargin on each side. Boxes spanning less than minZoomSpan in
// either axis are treated as accidental clicks: the viewport is left
// unchanged and ErrDegenerateZoom is returned.
func (v *Viewport) ZoomToRect(a, b Point) error {
	spanX := math.Abs(a.X - b.X)
	spanY := math.Abs(a.Y - b.Y)
	if !isFinite(spanX) || !isFinite(spanY) || spanX < minZoomSpan || spanY < minZoomSpan {
		return ErrDegenerateZoom
	}
	side := math.Max(spanX, spanY) * (1 + 2*boxZoomMargin)
	c := Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
	half := side / 2
	return v.SetBounds(c.X-half, c.X+half, c.Y-half, c.Y+half)
}

func validSpan(lo, hi float64) bool {
	return isFinite(lo) && isFinite(hi) && hi > lo
}
