package graph

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, -1)
	b := Pt(-2, 4)

	if got := a.Add(b); got != Pt(1, 3) {
		t.Errorf("Add = %v, want (1,3)", got)
	}
	if got := a.Sub(b); got != Pt(5, -5) {
		t.Errorf("Sub = %v, want (5,-5)", got)
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"axis aligned", Pt(0, 0), Pt(3, 0), 3},
		{"pythagorean", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}
