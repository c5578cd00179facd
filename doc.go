// Package graph turns short algebraic equations into renderable curves
// on a pannable, zoomable 2D plane.
//
// # Overview
//
// graph is the core of a graphing calculator: it parses free-form
// equation text ("y=2x+1", "(x^2)+(y^2)=9", "x=3"), compiles it into a
// safely evaluable form, samples it over the visible x-range, and
// maintains the viewport math that maps interaction (drag, scroll,
// box zoom) onto the visible data-space rectangle. Drawing itself is
// left to a renderer; backend/ggcanvas provides one built on gogpu/gg.
//
// # Quick Start
//
//	s := graph.NewSession()
//	if _, err := s.Add("y=x^2-2"); err != nil {
//	    log.Fatal(err)
//	}
//	s.Scroll(0, 0, graph.ScrollDown) // zoom in around the origin
//
//	for _, c := range s.Curves() {
//	    // hand c.X and c.Branches (or c.VerticalX) to a renderer
//	}
//
// # Equation Families
//
// Parse classifies input into one of five families, tried in order:
// the circle form (x^2)+(y^2)=N, the identity line y=x / x=y, the
// horizontal line y=c, the vertical line x=c, and finally any other
// y=<expression of x>, which is compiled by a whitelist-only
// expression parser (+ - * / ^, sin cos tan sqrt abs, pi and e).
// Brace clauses such as {x>0} restrict the visible domain.
//
// # Coordinate System
//
// All public coordinates are data-space values: x increases right, y
// increases up, and the viewport is a square rectangle in that space.
// Converting screen pixels to data coordinates is the embedding UI's
// responsibility.
//
// # Concurrency
//
// The core is single-threaded by design: sessions, viewports, and
// drivers have one owner and no internal locking. Only SetLogger is
// safe to call from any goroutine.
package graph
