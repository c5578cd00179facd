package expr

// Canonicalize applies the surface rewrites that turn calculator-style
// shorthand into the canonical grammar, in order:
//
//  1. a digit immediately followed by x becomes an explicit multiply
//     ("2x" -> "2*x")
//  2. x immediately followed by a digit becomes a power
//     ("x2" -> "x^2")
//
// Rule 2 is deliberately narrow: it inserts the operator before the
// first digit only, so "x23" becomes "x^23". Multi-digit shorthand was
// never well defined and this quirk is kept as observable behavior.
// The ^ character is already the grammar's power operator and passes
// through unchanged.
func Canonicalize(src string) string {
	out := make([]byte, 0, len(src)+4)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if isDigit(c) && i+1 < len(src) && src[i+1] == 'x' {
			out = append(out, c, '*')
			continue
		}
		if c == 'x' && i+1 < len(src) && isDigit(src[i+1]) {
			out = append(out, 'x', '^')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
