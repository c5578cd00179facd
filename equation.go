package graph

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/graph/internal/expr"
)

// Family identifies the recognized shape of an equation, which selects
// the evaluation strategy.
type Family int

const (
	// Circle is the implicit form (x^2)+(y^2)=N.
	Circle Family = iota
	// Identity is y=x or x=y without constraints. With constraints the
	// same text compiles as Explicit so the domain mask applies.
	Identity
	// Horizontal is y=<number>.
	Horizontal
	// Vertical is x=<number>. It is not a function of x and is drawn
	// as a full-height line.
	Vertical
	// Explicit is any other y=<expression of x>.
	Explicit
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Circle:
		return "circle"
	case Identity:
		return "identity"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Explicit:
		return "explicit"
	}
	return "unknown"
}

// circlePrefix is the only implicit form the classifier recognizes.
const circlePrefix = "(x^2)+(y^2)="

// Equation is a compiled, immutable description of one user equation.
// Build it with Parse; a string that matches no family produces an
// error and no Equation value.
type Equation struct {
	// Raw is the original user text, unmodified.
	Raw string

	// Family selects the evaluation strategy.
	Family Family

	// Radius is the circle form's right-hand side. Despite the name it
	// is used as the squared radius: evaluation solves y^2 = Radius - x^2.
	Radius float64

	// Value is the constant of the Horizontal and Vertical families.
	Value float64

	// Expr is the canonical expression text of the Explicit family,
	// after shorthand rewrites.
	Expr string

	// Constraints restrict the visible domain, one entry per variable,
	// all ANDed together at evaluation time.
	Constraints []Constraint

	prog *expr.Program
}

// Parse normalizes, classifies, and compiles one equation string.
//
// Classification tries each family in a fixed order, first match wins:
// circle, identity, horizontal, vertical, explicit. The order matters
// because later patterns subsume earlier ones (the identity line also
// contains "y=").
func Parse(raw string) (*Equation, error) {
	body := normalize(raw)
	body, constraints, err := extractConstraints(body)
	if err != nil {
		return nil, err
	}
	if body == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnrecognized)
	}

	eq := &Equation{Raw: raw, Constraints: constraints}

	switch {
	case classifyCircle(body, eq):
	case body == "y=x" || body == "x=y":
		if len(constraints) > 0 {
			// A constrained identity must run through the evaluator so
			// the domain mask applies.
			prog, err := expr.Compile("x")
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
			}
			eq.Family = Explicit
			eq.Expr = prog.Source()
			eq.prog = prog
			break
		}
		eq.Family = Identity
	case classifyConstant(body, "y=", eq):
		eq.Family = Horizontal
	case classifyConstant(body, "x=", eq):
		eq.Family = Vertical
	case strings.Contains(body, "y="):
		// Strip every "y=" occurrence, matching the surface grammar's
		// lenient handling, and compile the remainder over x.
		rhs := strings.ReplaceAll(body, "y=", "")
		prog, err := expr.Compile(rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
		}
		eq.Family = Explicit
		eq.Expr = prog.Source()
		eq.prog = prog
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognized, raw)
	}

	Logger().Debug("parsed equation",
		slog.String("raw", raw),
		slog.String("family", eq.Family.String()),
		slog.Int("constraints", len(eq.Constraints)))
	return eq, nil
}

// classifyCircle matches the exact circle form with a non-negative
// right-hand side. A negative or non-numeric right-hand side is not a
// circle and falls through to the later families.
func classifyCircle(body string, eq *Equation) bool {
	rest, ok := strings.CutPrefix(body, circlePrefix)
	if !ok {
		return false
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil || v < 0 {
		return false
	}
	eq.Family = Circle
	eq.Radius = v
	return true
}

// classifyConstant matches prefix followed by a plain signed decimal
// number and nothing else. Exponent notation and a leading plus sign
// are deliberately outside the surface grammar.
func classifyConstant(body, prefix string, eq *Equation) bool {
	rest, ok := strings.CutPrefix(body, prefix)
	if !ok || !isPlainNumber(rest) {
		return false
	}
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return false
	}
	eq.Value = v
	return true
}

// isPlainNumber reports whether s is an optional minus sign, one or
// more digits, and an optional fraction part.
func isPlainNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	return i == len(s)
}
