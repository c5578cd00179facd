package graph

import "github.com/gogpu/gg"

// Palette is an ordered list of curve colors, assigned to equations by
// their position in the render list.
type Palette []gg.RGBA

// DefaultPalette is the standard six-color cycle. The values and their
// order are fixed: visual-regression tests depend on equation i getting
// exactly color i mod 6.
var DefaultPalette = Palette{
	gg.Hex("#2d70b3"),
	gg.Hex("#388c46"),
	gg.Hex("#fa7e19"),
	gg.Hex("#e6123d"),
	gg.Hex("#6042a6"),
	gg.Hex("#000000"),
}

// Color returns the color for the equation at position i, cycling
// through the palette. An empty palette yields opaque black.
func (p Palette) Color(i int) gg.RGBA {
	if len(p) == 0 {
		return gg.RGB(0, 0, 0)
	}
	return p[i%len(p)]
}
