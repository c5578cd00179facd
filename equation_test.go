package graph

import (
	"errors"
	"testing"
)

func TestParseFamilies(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		family Family
		radius float64
		value  float64
		expr   string
	}{
		{"identity", "y=x", Identity, 0, 0, ""},
		{"identity swapped", "x=y", Identity, 0, 0, ""},
		{"identity spaced", " Y = X ", Identity, 0, 0, ""},
		{"horizontal", "y=5", Horizontal, 0, 5, ""},
		{"horizontal negative", "y=-3.5", Horizontal, 0, -3.5, ""},
		{"vertical", "x=-3", Vertical, 0, -3, ""},
		{"vertical decimal", "x=2.25", Vertical, 0, 2.25, ""},
		{"circle", "(x^2)+(y^2)=9", Circle, 9, 0, ""},
		{"circle spaced", "( x^2 ) + ( y^2 ) = 16", Circle, 16, 0, ""},
		{"circle zero", "(x^2)+(y^2)=0", Circle, 0, 0, ""},
		{"explicit linear", "y=2x+1", Explicit, 0, 0, "2*x+1"},
		{"explicit shorthand power", "y=x2", Explicit, 0, 0, "x^2"},
		{"explicit function", "y=sin(x)", Explicit, 0, 0, "sin(x)"},
		{"explicit constant", "y=pi", Explicit, 0, 0, "pi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if eq.Family != tt.family {
				t.Fatalf("Parse(%q) family = %v, want %v", tt.in, eq.Family, tt.family)
			}
			if eq.Radius != tt.radius {
				t.Errorf("Radius = %v, want %v", eq.Radius, tt.radius)
			}
			if eq.Value != tt.value {
				t.Errorf("Value = %v, want %v", eq.Value, tt.value)
			}
			if eq.Expr != tt.expr {
				t.Errorf("Expr = %q, want %q", eq.Expr, tt.expr)
			}
			if eq.Raw != tt.in {
				t.Errorf("Raw = %q, want original input", eq.Raw)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"gibberish", "banana", ErrUnrecognized},
		{"empty", "", ErrUnrecognized},
		{"whitespace only", "   ", ErrUnrecognized},
		{"negative circle", "(x^2)+(y^2)=-9", ErrUnrecognized},
		{"non numeric circle", "(x^2)+(y^2)=r", ErrUnrecognized},
		{"no equals", "2x+1", ErrUnrecognized},
		{"leading plus constant", "y=+5", ErrBadExpression},
		{"unknown name", "y=foo(x)", ErrBadExpression},
		{"dangling operator", "y=2x+", ErrBadExpression},
		{"exponent notation", "y=5e3", ErrBadExpression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestParseConstraints(t *testing.T) {
	t.Run("single constraint", func(t *testing.T) {
		eq, err := Parse("y=x{x>0}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if eq.Family != Explicit {
			t.Fatalf("family = %v, want Explicit", eq.Family)
		}
		if eq.Expr != "x" {
			t.Errorf("Expr = %q, want %q", eq.Expr, "x")
		}
		if len(eq.Constraints) != 1 {
			t.Fatalf("got %d constraints, want 1", len(eq.Constraints))
		}
		c := eq.Constraints[0]
		if c.Var != "x" || c.Op != GreaterThan || c.Threshold != 0 {
			t.Errorf("constraint = %v, want {x>0}", c)
		}
	})

	t.Run("constrained swapped identity", func(t *testing.T) {
		eq, err := Parse("x=y{x>0}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if eq.Family != Explicit || eq.Expr != "x" {
			t.Errorf("family = %v Expr = %q, want Explicit %q", eq.Family, eq.Expr, "x")
		}
	})

	t.Run("same variable overwrites", func(t *testing.T) {
		eq, err := Parse("y=x{x>0}{x<5}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if len(eq.Constraints) != 1 {
			t.Fatalf("got %d constraints, want 1 (later clause overwrites)", len(eq.Constraints))
		}
		c := eq.Constraints[0]
		if c.Var != "x" || c.Op != LessThan || c.Threshold != 5 {
			t.Errorf("constraint = %v, want {x<5}", c)
		}
	})

	t.Run("two variables keep order", func(t *testing.T) {
		eq, err := Parse("y=x{y<2}{x>-1}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if len(eq.Constraints) != 2 {
			t.Fatalf("got %d constraints, want 2", len(eq.Constraints))
		}
		if eq.Constraints[0].Var != "y" || eq.Constraints[1].Var != "x" {
			t.Errorf("constraint order = %v, want y then x", eq.Constraints)
		}
	})

	t.Run("constraint on circle", func(t *testing.T) {
		eq, err := Parse("(x^2)+(y^2)=9{y>0}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if eq.Family != Circle || len(eq.Constraints) != 1 {
			t.Errorf("family = %v constraints = %v", eq.Family, eq.Constraints)
		}
	})
}

func TestParseConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"no operator", "y=x{x=0}"},
		{"bad threshold", "y=x{x>abc}"},
		{"missing variable", "y=x{<3}"},
		{"unterminated clause", "y=x{x>1"},
		{"empty clause", "y=x{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, ErrBadConstraint) {
				t.Errorf("Parse(%q) error = %v, want ErrBadConstraint", tt.in, err)
			}
		})
	}
}

func TestFamilyString(t *testing.T) {
	tests := []struct {
		f    Family
		want string
	}{
		{Circle, "circle"},
		{Identity, "identity"},
		{Horizontal, "horizontal"},
		{Vertical, "vertical"},
		{Explicit, "explicit"},
		{Family(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Family(%d).String() = %q, want %q", int(tt.f), got, tt.want)
		}
	}
}
