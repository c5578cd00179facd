package expr

import "fmt"

// maxDepth bounds parse recursion so a pathological input like a long
// run of '(' cannot overflow the goroutine stack.
const maxDepth = 64

// parser is a recursive descent parser over the canonical grammar:
//
//	expr   = term  { ("+" | "-") term }
//	term   = unary { ("*" | "/") unary }
//	unary  = "-" unary | power
//	power  = atom [ "^" unary ]            (right associative)
//	atom   = number | "x" | constant | function "(" expr ")" | "(" expr ")"
//
// Unary minus binds looser than "^", so "-x^2" is -(x^2).
type parser struct {
	lex   lexer
	cur   token
	depth int
}

func newParser(input string) *parser {
	return &parser{lex: lexer{input: input}}
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) parse() (node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenEOF {
		return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.cur.text)
	}
	return root, nil
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxDepth {
		return fmt.Errorf("%w: expression too deeply nested", ErrSyntax)
	}
	return nil
}

func (p *parser) parseExpr() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokenPlus || p.cur.kind == tokenMinus {
		op := byte('+')
		if p.cur.kind == tokenMinus {
			op = '-'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokenStar || p.cur.kind == tokenSlash {
		op := byte('*')
		if p.cur.kind == tokenSlash {
			op = '/'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if p.cur.kind == tokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenCaret {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	// Right associative: the exponent may itself be a power or a
	// negated value ("2^-3").
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) parseAtom() (node, error) {
	switch p.cur.kind {
	case tokenNumber:
		n := numNode(p.cur.num)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil

	case tokenIdent:
		name := p.cur.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if name == "x" {
			return varNode{}, nil
		}
		if v, ok := constants[name]; ok {
			return numNode(v), nil
		}
		if fn, ok := functions[name]; ok {
			if p.cur.kind != tokenLParen {
				return nil, fmt.Errorf("%w: %s requires an argument", ErrSyntax, name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.cur.kind != tokenRParen {
				return nil, fmt.Errorf("%w: missing closing parenthesis after %s", ErrSyntax, name)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			return callNode{fn: fn, operand: arg}, nil
		}
		return nil, fmt.Errorf("%w: unknown name %q", ErrSyntax, name)

	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokenRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil

	case tokenEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.cur.text)
}
