package graph

import (
	"math"
	"testing"
)

func TestSampleDomain(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantN   int
		wantLo  float64
		wantHi  float64
		wantEps float64
	}{
		{"default margin", nil, 2000, -20, 20, 1e-9},
		{"no margin", []Option{WithMargin(0)}, 2000, -10, 10, 1e-9},
		{"coarse", []Option{WithSamples(5), WithMargin(0)}, 5, -10, 10, 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDriver(tt.opts...)
			xs := d.SampleDomain(NewViewport())
			if len(xs) != tt.wantN {
				t.Fatalf("got %d samples, want %d", len(xs), tt.wantN)
			}
			if math.Abs(xs[0]-tt.wantLo) > tt.wantEps {
				t.Errorf("first sample = %v, want %v", xs[0], tt.wantLo)
			}
			if math.Abs(xs[len(xs)-1]-tt.wantHi) > tt.wantEps {
				t.Errorf("last sample = %v, want %v", xs[len(xs)-1], tt.wantHi)
			}
			for i := 1; i < len(xs); i++ {
				if xs[i] <= xs[i-1] {
					t.Fatalf("samples not increasing at %d", i)
				}
			}
		})
	}
}

func TestFrameAssignsColorsByIndex(t *testing.T) {
	d := NewDriver(WithSamples(50))
	var eqs []*Equation
	for _, in := range []string{"y=1", "y=2", "y=3", "y=4", "y=5", "y=6", "y=7"} {
		eqs = append(eqs, mustParse(t, in))
	}
	curves := d.Frame(NewViewport(), eqs)
	if len(curves) != 7 {
		t.Fatalf("got %d curves, want 7", len(curves))
	}
	for i, c := range curves {
		if c.Index != i {
			t.Errorf("curve %d: Index = %d", i, c.Index)
		}
		if !colorsClose(c.Color, DefaultPalette[i%6]) {
			t.Errorf("curve %d: color not palette entry %d", i, i%6)
		}
	}
	// The seventh equation wraps around to the first color.
	if !colorsClose(curves[6].Color, curves[0].Color) {
		t.Error("palette did not cycle at index 6")
	}
}

func TestFrameVerticalDirective(t *testing.T) {
	d := NewDriver(WithSamples(10))
	curves := d.Frame(NewViewport(), []*Equation{mustParse(t, "x=-3")})
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	c := curves[0]
	if !c.Vertical || c.VerticalX != -3 {
		t.Errorf("directive = %+v, want vertical line at -3", c)
	}
	if len(c.X) != 0 || len(c.Branches) != 0 {
		t.Error("vertical directive must not carry sampled arrays")
	}
}

func TestFrameSkipsNilEquations(t *testing.T) {
	d := NewDriver(WithSamples(10))
	eqs := []*Equation{mustParse(t, "y=1"), nil, mustParse(t, "y=2")}
	curves := d.Frame(NewViewport(), eqs)
	if len(curves) != 2 {
		t.Fatalf("got %d curves, want 2", len(curves))
	}
	// Positions (and colors) are preserved across the gap.
	if curves[0].Index != 0 || curves[1].Index != 2 {
		t.Errorf("indices = %d,%d, want 0,2", curves[0].Index, curves[1].Index)
	}
	if !colorsClose(curves[1].Color, DefaultPalette[2]) {
		t.Error("skipped entry must still consume its palette slot")
	}
}

func TestFrameBranchesAlignWithX(t *testing.T) {
	d := NewDriver(WithSamples(100), WithMargin(0))
	eqs := []*Equation{
		mustParse(t, "y=sin(x)"),
		mustParse(t, "(x^2)+(y^2)=25"),
	}
	for _, c := range d.Frame(NewViewport(), eqs) {
		for bi, branch := range c.Branches {
			if len(branch) != len(c.X) {
				t.Errorf("curve %d branch %d: length %d != len(X) %d",
					c.Index, bi, len(branch), len(c.X))
			}
		}
	}
}
