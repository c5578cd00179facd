// Package expr compiles user-entered math expressions into a small AST
// over a closed operator and function set, and evaluates the AST
// numerically. Nothing outside the whitelist (+ - * / ^, sin cos tan
// sqrt abs, constants pi and e, the free variable x) can be expressed,
// so untrusted input never reaches a general-purpose interpreter.
package expr

import (
	"errors"
	"fmt"
	"math"
)

// ErrSyntax reports any lexical or grammatical failure in Compile.
// Use errors.Is to detect it; the wrapped message carries the detail.
var ErrSyntax = errors.New("expr: invalid expression")

// Program is a compiled expression bound to a single free variable.
// A Program is immutable and safe for concurrent evaluation.
type Program struct {
	root   node
	source string
}

// Compile canonicalizes src (see Canonicalize) and parses the result.
func Compile(src string) (*Program, error) {
	canon := Canonicalize(src)
	if canon == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	p := newParser(canon)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Program{root: root, source: canon}, nil
}

// Source returns the canonical expression text the Program was built from.
func (p *Program) Source() string { return p.source }

// Eval evaluates the Program at x. Domain faults (division by zero,
// square root of a negative) yield NaN for that point rather than an
// error; callers treat NaN as "undefined here".
func (p *Program) Eval(x float64) float64 {
	return p.root.eval(x)
}

// node is a single AST vertex. The tree is evaluated by recursive walk;
// expression depth is bounded by the parser's depth limit so the walk
// cannot exhaust the stack on hostile input.
type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type unaryNode struct {
	operand node
}

func (n unaryNode) eval(x float64) float64 { return -n.operand.eval(x) }

type binaryNode struct {
	op          byte // one of + - * / ^
	left, right node
}

func (n binaryNode) eval(x float64) float64 {
	l := n.left.eval(x)
	r := n.right.eval(x)
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		if r == 0 {
			return math.NaN()
		}
		return l / r
	case '^':
		return math.Pow(l, r)
	}
	return math.NaN()
}

type callNode struct {
	fn      func(float64) float64
	operand node
}

func (n callNode) eval(x float64) float64 { return n.fn(n.operand.eval(x)) }

// functions is the complete callable surface. Adding a name here is the
// only way to grow what compiled expressions can invoke.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// constants are substituted at parse time.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
