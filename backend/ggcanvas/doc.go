// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas renders graph frames with the gg 2D graphics
// library. It owns the data-space to pixel mapping for one image:
// background, grid, axes, tick labels, and the curves produced by a
// graph.Driver or graph.Session.
//
// Example:
//
//	s := graph.NewSession()
//	s.Add("y=sin(x)")
//
//	canvas, err := ggcanvas.New(800, 800)
//	if err != nil {
//	    return err
//	}
//	canvas.Render(s.Viewport(), s.Curves())
//	canvas.SavePNG("plot.png")
package ggcanvas
