package graph

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Curve is one equation's renderable output for a single frame. Curve
// families carry the sample arrays; the Vertical family carries only
// the line position. The consumer maps data coordinates to pixels and
// does the actual drawing.
type Curve struct {
	// ID is the stable session id of the source equation, zero when
	// the frame was built from a bare equation list.
	ID int64

	// Index is the equation's position in the render list; it selects
	// the palette color.
	Index int

	// Color is the stroke color assigned from the palette.
	Color gg.RGBA

	// X and Branches are parallel sample arrays; each branch has the
	// same length as X and NaN marks undefined points.
	X        []float64
	Branches [][]float64

	// Vertical marks a full-height line at VerticalX instead of
	// sampled data.
	Vertical  bool
	VerticalX float64
}

// Driver turns the current viewport and equation list into per-frame
// curve data. It owns the sampling resolution, the sampling margin,
// and the palette; it holds no per-frame state.
type Driver struct {
	samples int
	margin  float64
	palette Palette
}

// NewDriver creates a Driver. With no options it matches the reference
// renderer: 2000 samples across the view plus half a view of margin on
// each side, standard palette.
func NewDriver(opts ...Option) *Driver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{samples: o.samples, margin: o.margin, palette: o.palette}
}

// SampleDomain returns the x positions the next frame will evaluate:
// an evenly spaced sweep across the viewport width expanded by the
// margin fraction on each side.
func (d *Driver) SampleDomain(v *Viewport) []float64 {
	pad := v.Width() * d.margin
	lo := v.XMin - pad
	hi := v.XMax + pad
	xs := make([]float64, d.samples)
	step := (hi - lo) / float64(d.samples-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}
	return xs
}

// Frame evaluates every equation over the viewport's sample domain and
// returns the renderable curves in list order. Equations that produce
// no result are skipped; they keep their position (and color) in the
// list but contribute nothing to the frame.
func (d *Driver) Frame(v *Viewport, eqs []*Equation) []Curve {
	xs := d.SampleDomain(v)
	curves := make([]Curve, 0, len(eqs))
	for i, eq := range eqs {
		if eq == nil {
			continue
		}
		s, ok := eq.Eval(xs)
		if !ok {
			Logger().Debug("skipping equation", slog.String("raw", eq.Raw))
			continue
		}
		curves = append(curves, Curve{
			Index:     i,
			Color:     d.palette.Color(i),
			X:         s.X,
			Branches:  s.Branches,
			Vertical:  s.Vertical,
			VerticalX: s.VerticalX,
		})
	}
	Logger().Debug("rendered frame",
		slog.Int("equations", len(eqs)),
		slog.Int("curves", len(curves)),
		slog.Int("samples", len(xs)))
	return curves
}
