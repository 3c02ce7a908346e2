// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"slices"
)

// Parser is a recursive descent parser for a single condition expression.
type Parser struct {
	tokens  []Token
	current int

	// colons counts the ternary branches being parsed outside of any
	// parentheses. Inside one, NUMBER ':' is not a bank pair.
	colons int
}

// NewParser creates a parser over a scanned token list.
func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TOKEN_EOF {
		tokens = append(slices.Clone(tokens), Token{Kind: TOKEN_EOF})
	}

	return &Parser{tokens: tokens}
}

// Parse builds the expression tree of a token list. The whole list must be
// consumed. On error no tree is returned.
func Parse(tokens []Token) (expr Expr, err error) {
	return NewParser(tokens).Parse()
}

// Compile scans and parses condition source text.
func Compile(source string) (expr Expr, err error) {
	tokens, err := Scan(source)
	if err != nil {
		return
	}

	return Parse(tokens)
}

// Parse builds the expression tree.
func (p *Parser) Parse() (expr Expr, err error) {
	p.current = 0
	p.colons = 0

	expr, err = p.ternary()
	if err != nil {
		expr = nil
		return
	}

	if !p.isAtEnd() {
		expr = nil
		err = p.fail(p.peek(), ErrExpectedEnd)
		return
	}

	return
}

// ternary parses 'comma ? ternary : ternary'. The condition slot is a comma
// expression, so 'a, b ? c : d' selects on b. A bank pair in either branch
// must be parenthesized.
func (p *Parser) ternary() (expr Expr, err error) {
	expr, err = p.comma()
	if err != nil {
		return
	}

	if !p.match(TOKEN_QUESTION) {
		return
	}
	op := p.previous()

	p.colons++
	then, err := p.ternary()
	p.colons--
	if err != nil {
		return
	}

	_, err = p.consume(TOKEN_COLON)
	if err != nil {
		return
	}

	p.colons++
	otherwise, err := p.ternary()
	p.colons--
	if err != nil {
		return
	}

	expr = &Ternary{Cond: expr, Op: op, Then: then, Else: otherwise}
	return
}

func (p *Parser) comma() (expr Expr, err error) {
	return p.binary(p.or, false, TOKEN_COMMA)
}

func (p *Parser) or() (expr Expr, err error) {
	return p.binary(p.and, true, TOKEN_PIPE_PIPE)
}

func (p *Parser) and() (expr Expr, err error) {
	return p.binary(p.bitOr, true, TOKEN_AMP_AMP)
}

func (p *Parser) bitOr() (expr Expr, err error) {
	return p.binary(p.bitXor, false, TOKEN_PIPE)
}

func (p *Parser) bitXor() (expr Expr, err error) {
	return p.binary(p.bitAnd, false, TOKEN_CARET)
}

func (p *Parser) bitAnd() (expr Expr, err error) {
	return p.binary(p.equality, false, TOKEN_AMP)
}

func (p *Parser) equality() (expr Expr, err error) {
	return p.binary(p.comparison, false, TOKEN_BANG_EQUAL, TOKEN_EQUAL_EQUAL)
}

func (p *Parser) comparison() (expr Expr, err error) {
	return p.binary(p.term, false, TOKEN_GREATER, TOKEN_GREATER_EQUAL, TOKEN_LESS, TOKEN_LESS_EQUAL)
}

func (p *Parser) term() (expr Expr, err error) {
	return p.binary(p.factor, false, TOKEN_MINUS, TOKEN_PLUS)
}

func (p *Parser) factor() (expr Expr, err error) {
	return p.binary(p.unary, false, TOKEN_SLASH, TOKEN_STAR)
}

// binary parses a left associative chain of operators of one precedence
// level, as *Logical nodes if logical is set, otherwise as *Binary nodes.
func (p *Parser) binary(operand func() (Expr, error), logical bool, kinds ...TokenKind) (expr Expr, err error) {
	expr, err = operand()
	if err != nil {
		return
	}

	for p.match(kinds...) {
		op := p.previous()
		var right Expr
		right, err = operand()
		if err != nil {
			return
		}
		if logical {
			expr = &Logical{Left: expr, Op: op, Right: right}
		} else {
			expr = &Binary{Left: expr, Op: op, Right: right}
		}
	}

	return
}

func (p *Parser) unary() (expr Expr, err error) {
	if p.match(TOKEN_BANG, TOKEN_MINUS, TOKEN_STAR) {
		op := p.previous()
		var right Expr
		right, err = p.unary()
		if err != nil {
			return
		}
		expr = &Unary{Op: op, Right: right}
		return
	}

	return p.primary()
}

func (p *Parser) primary() (expr Expr, err error) {
	switch {
	case p.match(TOKEN_TRUE, TOKEN_FALSE):
		expr = &Literal{Value: Bool(p.previous().Kind == TOKEN_TRUE)}
	case p.match(TOKEN_IDENTIFIER):
		expr = &Variable{Name: p.previous()}
	case p.match(TOKEN_NUMBER):
		tok := p.previous()
		bank, ok := tok.Literal.(Numeric)
		if !ok {
			err = p.fail(tok, ErrExpectedExpression)
			return
		}
		if p.colons == 0 && p.check(TOKEN_COLON) && p.checkNext(TOKEN_NUMBER) {
			p.advance()
			tok = p.advance()
			addr, ok := tok.Literal.(Numeric)
			if !ok {
				err = p.fail(tok, ErrExpectedExpression)
				return
			}
			expr = &Literal{Value: NumericPair{Bank: bank, Addr: addr}}
			return
		}
		expr = &Literal{Value: bank}
	case p.match(TOKEN_LEFT_PAREN):
		colons := p.colons
		p.colons = 0
		var inner Expr
		inner, err = p.ternary()
		p.colons = colons
		if err != nil {
			return
		}
		_, err = p.consume(TOKEN_RIGHT_PAREN)
		if err != nil {
			return
		}
		expr = &Grouping{Expr: inner}
	default:
		err = p.fail(p.peek(), ErrExpectedExpression)
	}

	return
}

func (p *Parser) match(kinds ...TokenKind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(kind TokenKind) (tok Token, err error) {
	if p.check(kind) {
		tok = p.advance()
		return
	}

	err = p.fail(p.peek(), ErrExpectedToken(kind))
	return
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkNext(kind TokenKind) bool {
	if p.current+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.current+1].Kind == kind
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TOKEN_EOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

// fail abandons the rest of the token stream; a condition is a single
// expression, so there is nothing to resynchronize to.
func (p *Parser) fail(tok Token, err error) error {
	p.current = len(p.tokens) - 1
	return &ErrSyntax{Offset: tok.Offset, Line: tok.Line, Lexeme: tok.Lexeme, Err: err}
}
