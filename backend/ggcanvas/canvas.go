// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/graph"
)

// ErrInvalidDimensions is returned when width or height is not positive.
var ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")

// Option configures a Canvas during creation.
type Option func(*config)

type config struct {
	grid   bool
	axes   bool
	labels bool
}

// WithoutGrid disables the background grid.
func WithoutGrid() Option { return func(c *config) { c.grid = false } }

// WithoutAxes disables the x=0 and y=0 axis lines.
func WithoutAxes() Option { return func(c *config) { c.axes = false } }

// WithoutLabels disables axis tick labels.
func WithoutLabels() Option { return func(c *config) { c.labels = false } }

// Canvas draws graph frames into a gg drawing context. Each Render
// call repaints the whole image for the viewport it is given.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc            *gg.Context
	width, height int
	cfg           config
	face          text.Face
}

// New creates a Canvas with the given pixel dimensions. Tick labels
// use the embedded Go Regular face; if the font fails to parse, labels
// are disabled and rendering continues without them.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := config{grid: true, axes: true, labels: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		cfg:    cfg,
	}
	if cfg.labels {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			graph.Logger().Warn("ggcanvas: label font unavailable",
				slog.String("error", err.Error()))
			c.cfg.labels = false
		} else {
			c.face = source.Face(11)
			c.dc.SetFont(c.face)
		}
	}
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the rendered image to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// ToScreen maps a data-space point to pixel coordinates for the given
// viewport. Pixel y grows downward while data y grows upward.
func (c *Canvas) ToScreen(v *graph.Viewport, x, y float64) (sx, sy float64) {
	sx = (x - v.XMin) / v.Width() * float64(c.width)
	sy = float64(c.height) - (y-v.YMin)/v.Height()*float64(c.height)
	return sx, sy
}

// ToData maps pixel coordinates back to data space, the inverse of
// ToScreen. Interaction glue uses this to convert pointer events
// before handing them to a graph.Session.
func (c *Canvas) ToData(v *graph.Viewport, sx, sy float64) (x, y float64) {
	x = v.XMin + sx/float64(c.width)*v.Width()
	y = v.YMin + (float64(c.height)-sy)/float64(c.height)*v.Height()
	return x, y
}

// DataDelta converts a pixel delta to a data-space delta for the given
// viewport, for drag panning.
func (c *Canvas) DataDelta(v *graph.Viewport, dxPix, dyPix float64) (dx, dy float64) {
	dx = dxPix / float64(c.width) * v.Width()
	dy = -dyPix / float64(c.height) * v.Height()
	return dx, dy
}
