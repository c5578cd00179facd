package expr

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

// lexer produces tokens from a canonicalized expression string. Input
// is already lowercased with whitespace removed, so the lexer only has
// to deal with digits, letters, and the operator set.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	if l.pos >= len(l.input) {
		return token{kind: tokenEOF}, nil
	}
	c := l.input[l.pos]
	switch c {
	case '+':
		l.pos++
		return token{kind: tokenPlus, text: "+"}, nil
	case '-':
		l.pos++
		return token{kind: tokenMinus, text: "-"}, nil
	case '*':
		l.pos++
		return token{kind: tokenStar, text: "*"}, nil
	case '/':
		l.pos++
		return token{kind: tokenSlash, text: "/"}, nil
	case '^':
		l.pos++
		return token{kind: tokenCaret, text: "^"}, nil
	case '(':
		l.pos++
		return token{kind: tokenLParen, text: "("}, nil
	case ')':
		l.pos++
		return token{kind: tokenRParen, text: ")"}, nil
	}
	if isDigit(c) || c == '.' {
		return l.readNumber()
	}
	if isLetter(c) {
		start := l.pos
		for l.pos < len(l.input) && isLetter(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokenIdent, text: l.input[start:l.pos]}, nil
	}
	return token{}, fmt.Errorf("%w: unexpected character %q", ErrSyntax, c)
}

func (l *lexer) readNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	text := l.input[start:l.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w: bad number %q", ErrSyntax, text)
	}
	return token{kind: tokenNumber, text: text, num: v}, nil
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' }
