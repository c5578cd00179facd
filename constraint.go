package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// CompareOp is the relation of an inequality constraint.
type CompareOp int

const (
	// LessThan keeps samples where the variable is strictly below the
	// threshold.
	LessThan CompareOp = iota
	// GreaterThan keeps samples where the variable is strictly above
	// the threshold.
	GreaterThan
)

// String returns the operator's surface form.
func (op CompareOp) String() string {
	if op == LessThan {
		return "<"
	}
	return ">"
}

// Constraint restricts the visible domain of an equation to one side of
// a threshold, e.g. {x>0}. Only strict comparisons exist; the input
// syntax has no <= or >= form.
type Constraint struct {
	Var       string
	Op        CompareOp
	Threshold float64
}

// Allows reports whether v satisfies the constraint.
func (c Constraint) Allows(v float64) bool {
	if c.Op == LessThan {
		return v < c.Threshold
	}
	return v > c.Threshold
}

func (c Constraint) String() string {
	return fmt.Sprintf("{%s%s%g}", c.Var, c.Op, c.Threshold)
}

// normalize lowercases the input and removes every whitespace rune.
func normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractConstraints removes every brace-delimited clause from body and
// parses each as a Constraint. Clauses are keyed by variable: a later
// clause on the same variable overwrites the earlier one. The returned
// slice is ordered by first appearance of each variable.
func extractConstraints(body string) (string, []Constraint, error) {
	var (
		stripped strings.Builder
		order    []string
		byVar    = map[string]Constraint{}
	)
	for {
		open := strings.IndexByte(body, '{')
		if open < 0 {
			stripped.WriteString(body)
			break
		}
		end := strings.IndexByte(body[open:], '}')
		if end < 0 {
			return "", nil, fmt.Errorf("%w: unterminated constraint clause", ErrBadConstraint)
		}
		end += open
		stripped.WriteString(body[:open])
		c, err := parseConstraint(body[open+1 : end])
		if err != nil {
			return "", nil, err
		}
		if _, seen := byVar[c.Var]; !seen {
			order = append(order, c.Var)
		}
		byVar[c.Var] = c
		body = body[end+1:]
	}
	if len(order) == 0 {
		return stripped.String(), nil, nil
	}
	out := make([]Constraint, 0, len(order))
	for _, v := range order {
		out = append(out, byVar[v])
	}
	return stripped.String(), out, nil
}

// parseConstraint parses the inside of one clause, "x<3" or "y>-1.5".
func parseConstraint(clause string) (Constraint, error) {
	op := LessThan
	idx := strings.IndexByte(clause, '<')
	if idx < 0 {
		idx = strings.IndexByte(clause, '>')
		op = GreaterThan
	}
	if idx < 0 {
		return Constraint{}, fmt.Errorf("%w: no comparison in %q", ErrBadConstraint, clause)
	}
	name := strings.TrimSpace(clause[:idx])
	if name == "" {
		return Constraint{}, fmt.Errorf("%w: missing variable in %q", ErrBadConstraint, clause)
	}
	v, err := strconv.ParseFloat(clause[idx+1:], 64)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: bad threshold in %q", ErrBadConstraint, clause)
	}
	return Constraint{Var: name, Op: op, Threshold: v}, nil
}
