package graph

import (
	"math"
	"sort"
)

// seamTolerance decides when a circle sample sits on the x-axis, where
// the upper and lower branches must meet without a visible gap.
const seamTolerance = 1e-10

// Samples is the result of evaluating one equation over an x-sample
// sequence. For curve families, Branches holds one or more y sequences
// aligned index-for-index with X; undefined points are NaN, never
// removed, so the renderer sees equal-length arrays. For the Vertical
// family no sampling happens: Vertical is true and VerticalX carries
// the line position.
type Samples struct {
	X        []float64
	Branches [][]float64

	Vertical  bool
	VerticalX float64
}

// Eval evaluates the equation over xs, which must be sorted ascending.
// The returned X sequence is xs itself unless the circle seam handling
// injected extra samples, in which case it is a new, longer sequence.
// The second result is false when the equation cannot produce samples;
// callers skip such equations for the frame.
func (eq *Equation) Eval(xs []float64) (Samples, bool) {
	switch eq.Family {
	case Circle:
		return eq.evalCircle(xs), true

	case Identity:
		ys := make([]float64, len(xs))
		copy(ys, xs)
		out := Samples{X: xs, Branches: [][]float64{ys}}
		eq.mask(&out)
		return out, true

	case Horizontal:
		ys := make([]float64, len(xs))
		for i := range ys {
			ys[i] = eq.Value
		}
		out := Samples{X: xs, Branches: [][]float64{ys}}
		eq.mask(&out)
		return out, true

	case Vertical:
		return Samples{Vertical: true, VerticalX: eq.Value}, true

	case Explicit:
		if eq.prog == nil {
			return Samples{}, false
		}
		ys := make([]float64, len(xs))
		for i, x := range xs {
			y := eq.prog.Eval(x)
			if !isFinite(y) {
				y = math.NaN()
			}
			ys[i] = y
		}
		out := Samples{X: xs, Branches: [][]float64{ys}}
		eq.mask(&out)
		return out, true
	}
	return Samples{}, false
}

// evalCircle solves y^2 = Radius - x^2 and returns the positive and
// negative square root branches. Wherever y^2 is within seamTolerance
// of zero the sample is duplicated, once exactly and once nudged one
// ULP outward, so the two branches close onto the x-axis instead of
// leaving a gap between the last defined samples.
func (eq *Equation) evalCircle(xs []float64) Samples {
	r := eq.Radius

	extended := xs
	var injected []float64
	for _, x := range xs {
		if math.Abs(r-x*x) < seamTolerance {
			injected = append(injected, x, math.Nextafter(x, math.Inf(1)))
		}
	}
	if len(injected) > 0 {
		extended = make([]float64, 0, len(xs)+len(injected))
		extended = append(extended, xs...)
		extended = append(extended, injected...)
		sort.Float64s(extended)
	}

	pos := make([]float64, len(extended))
	neg := make([]float64, len(extended))
	for i, x := range extended {
		y2 := r - x*x
		if y2 < 0 {
			pos[i] = math.NaN()
			neg[i] = math.NaN()
			continue
		}
		y := math.Sqrt(y2)
		pos[i] = y
		neg[i] = -y
	}

	out := Samples{X: extended, Branches: [][]float64{pos, neg}}
	eq.mask(&out)
	return out
}

// mask applies the equation's constraints to every branch. A sample
// failing any constraint becomes NaN at that index; branch lengths
// never change. Constraints on variables other than x and y are
// ignored.
func (eq *Equation) mask(s *Samples) {
	if len(eq.Constraints) == 0 {
		return
	}
	for _, branch := range s.Branches {
		for i, y := range branch {
			for _, c := range eq.Constraints {
				switch c.Var {
				case "x":
					if !c.Allows(s.X[i]) {
						branch[i] = math.NaN()
					}
				case "y":
					if !math.IsNaN(y) && !c.Allows(y) {
						branch[i] = math.NaN()
					}
				}
			}
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
