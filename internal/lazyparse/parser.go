package lazyparse

import (
	"fmt"

	"github.com/vic/lazyk/internal/combinator"
)

// ParseError carries the (line, column) of a malformed construct,
// 1-based as in an editor.
type ParseError struct {
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at line %d column %d", e.Line, e.Column)
}

func newParseError(l *lexer) error {
	line, col := l.position()
	return &ParseError{Line: line, Column: col}
}

// Program is the immutable top-level wrapper around a parsed
// Expression, produced only by Parse.
type Program struct {
	Expr combinator.Expression
}

// Parse lifts source text into a Program. An empty program (after
// comment stripping and whitespace) denotes I, since the top-level
// fold starts from I and applies zero expressions to it.
func Parse(src string) (*Program, error) {
	l := newLexer(src)
	e, err := parseCCExpr(l)
	if err != nil {
		return nil, err
	}
	if _, ok := l.peek(); ok {
		return nil, newParseError(l)
	}
	return &Program{Expr: e}, nil
}

// parseCCExpr implements `expr* EOF`, folding left starting from I.
func parseCCExpr(l *lexer) (combinator.Expression, error) {
	acc := combinator.I
	for {
		c, ok := l.peek()
		if !ok || c == ')' {
			return acc, nil
		}
		e, err := parseExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		acc = combinator.Apply(acc, e)
	}
}

// parseExpr implements `expr := 'i' | atom`, where a bare 'i' denotes
// the I combinator in ordinary position.
func parseExpr(l *lexer) (combinator.Expression, error) {
	if c, ok := l.peek(); ok && c == 'i' {
		l.take()
		return combinator.I, nil
	}
	return parseAtom(l)
}

// parseIotaExpr implements `iota_expr := 'i' | atom`, where a bare 'i'
// denotes Iota — the one place the language distinguishes the two
// bindings of the same letter.
func parseIotaExpr(l *lexer) (combinator.Expression, error) {
	if c, ok := l.peek(); ok && c == 'i' {
		l.take()
		return combinator.Iota, nil
	}
	return parseAtom(l)
}

func parseAtom(l *lexer) (combinator.Expression, error) {
	c, ok := l.peek()
	if !ok {
		return combinator.Expression{}, newParseError(l)
	}

	switch c {
	case 'I':
		l.take()
		return combinator.I, nil
	case 'K', 'k':
		l.take()
		return combinator.K, nil
	case 'S', 's':
		l.take()
		return combinator.S, nil
	case '`':
		l.take()
		lhs, err := parseExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		rhs, err := parseExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		return combinator.Apply(lhs, rhs), nil
	case '*':
		l.take()
		lhs, err := parseIotaExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		rhs, err := parseIotaExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		return combinator.Apply(lhs, rhs), nil
	case '(':
		l.take()
		inner, err := parseCCExpr(l)
		if err != nil {
			return combinator.Expression{}, err
		}
		if d, ok := l.peek(); !ok || d != ')' {
			return combinator.Expression{}, newParseError(l)
		}
		l.take()
		return inner, nil
	case '0', '1':
		return parseJot(l), nil
	default:
		return combinator.Expression{}, newParseError(l)
	}
}

// parseJot implements the binary jot encoding: '0' maps acc to
// (acc S) K, '1' maps acc to S (K acc), starting from acc = I. At
// least one digit is required by the caller's dispatch on peek.
func parseJot(l *lexer) combinator.Expression {
	acc := combinator.I
	for {
		c, ok := l.peek()
		if !ok || !isJotDigit(c) {
			return acc
		}
		l.take()
		if c == '0' {
			acc = combinator.Apply(combinator.Apply(acc, combinator.S), combinator.K)
		} else {
			acc = combinator.Apply(combinator.S, combinator.Apply(combinator.K, acc))
		}
	}
}
