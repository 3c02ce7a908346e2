// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"errors"
	"strconv"
	"strings"
)

// Scanner converts condition source text into tokens.
type Scanner struct {
	source string
	tokens []Token
	errs   []error

	start   int
	current int
	line    int
}

// NewScanner creates a scanner over the source text.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Scan tokenizes the source text. The returned list always ends with a
// TOKEN_EOF token. Every error found is reported, joined; scanning carries
// on past an unexpected character.
func Scan(source string) (tokens []Token, err error) {
	return NewScanner(source).Scan()
}

// Scan tokenizes the scanner's source.
func (sc *Scanner) Scan() (tokens []Token, err error) {
	sc.tokens = sc.tokens[:0]
	sc.errs = sc.errs[:0]
	sc.current = 0
	sc.line = 1

	for !sc.isAtEnd() {
		sc.start = sc.current
		sc.scanToken()
	}

	sc.tokens = append(sc.tokens, Token{Kind: TOKEN_EOF, Offset: len(sc.source), Line: sc.line})

	tokens = sc.tokens
	err = errors.Join(sc.errs...)
	return
}

var singleTokens = map[byte]TokenKind{
	'(': TOKEN_LEFT_PAREN,
	')': TOKEN_RIGHT_PAREN,
	'{': TOKEN_LEFT_BRACE,
	'}': TOKEN_RIGHT_BRACE,
	':': TOKEN_COLON,
	',': TOKEN_COMMA,
	'.': TOKEN_DOT,
	'-': TOKEN_MINUS,
	'+': TOKEN_PLUS,
	'?': TOKEN_QUESTION,
	'*': TOKEN_STAR,
	'^': TOKEN_CARET,
}

func (sc *Scanner) scanToken() {
	c := sc.advance()

	kind, ok := singleTokens[c]
	if ok {
		sc.addToken(kind, nil)
		return
	}

	switch c {
	case '!':
		sc.addToken(sc.pick('=', TOKEN_BANG_EQUAL, TOKEN_BANG), nil)
	case '=':
		if sc.match('=') {
			sc.addToken(TOKEN_EQUAL_EQUAL, nil)
		} else {
			sc.fail(ErrUnexpectedCharacter)
		}
	case '<':
		sc.addToken(sc.pick('=', TOKEN_LESS_EQUAL, TOKEN_LESS), nil)
	case '>':
		sc.addToken(sc.pick('=', TOKEN_GREATER_EQUAL, TOKEN_GREATER), nil)
	case '&':
		sc.addToken(sc.pick('&', TOKEN_AMP_AMP, TOKEN_AMP), nil)
	case '|':
		sc.addToken(sc.pick('|', TOKEN_PIPE_PIPE, TOKEN_PIPE), nil)
	case '/':
		switch {
		case sc.match('/'):
			for sc.peek() != '\n' && !sc.isAtEnd() {
				sc.advance()
			}
		case sc.match('*'):
			sc.blockComment()
		default:
			sc.addToken(TOKEN_SLASH, nil)
		}
	case ' ', '\r', '\t':
	case '\n':
		sc.line++
	default:
		switch {
		case isDigit(c):
			sc.number()
		case isAlpha(c):
			sc.identifier()
		default:
			sc.fail(ErrUnexpectedCharacter)
		}
	}
}

func (sc *Scanner) blockComment() {
	for !sc.isAtEnd() {
		if sc.peek() == '*' && sc.peekNext() == '/' {
			sc.advance()
			sc.advance()
			return
		}
		if sc.advance() == '\n' {
			sc.line++
		}
	}

	sc.fail(ErrUnterminatedComment)
}

func (sc *Scanner) identifier() {
	for isAlphaNumeric(sc.peek()) {
		sc.advance()
	}

	text := sc.source[sc.start:sc.current]
	kind, ok := keywords[text]
	switch {
	case !ok:
		sc.addToken(TOKEN_IDENTIFIER, nil)
	case kind == TOKEN_TRUE:
		sc.addToken(kind, Bool(true))
	default:
		sc.addToken(kind, Bool(false))
	}
}

// number scans an integer or double literal. The base is taken from the
// prefix: 0x hexadecimal, 0b binary, a bare leading zero octal. A '.'
// followed by a digit makes the literal a double, whatever the prefix.
func (sc *Scanner) number() {
	base := 10
	prefix := 0
	if sc.source[sc.start] == '0' {
		switch sc.peek() {
		case 'x', 'X':
			base = 16
			prefix = 2
			sc.advance()
		case 'b', 'B':
			base = 2
			prefix = 2
			sc.advance()
		default:
			// The leading zero is also an octal digit.
			if isDigit(sc.peek()) || sc.peek() == '\'' {
				base = 8
			}
		}
	}

	for isNumberPart(sc.peek()) {
		sc.advance()
	}

	double := false
	if sc.peek() == '.' && isDigit(sc.peekNext()) {
		double = true
		sc.advance()
		for isNumberPart(sc.peek()) {
			sc.advance()
		}
	}

	lexeme := sc.source[sc.start:sc.current]

	digits := lexeme[prefix:]
	if double {
		digits = lexeme
	}
	for _, part := range strings.Split(digits, ".") {
		if strings.HasPrefix(part, "'") || strings.HasSuffix(part, "'") || strings.Contains(part, "''") {
			sc.fail(ErrSeparator)
			return
		}
	}
	digits = strings.ReplaceAll(digits, "'", "")

	if double {
		if base == 16 || base == 2 {
			sc.fail(ErrNumberInvalid(baseName(10)))
			return
		}
		value, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			sc.fail(ErrNumberInvalid(baseName(10)))
			return
		}
		sc.addToken(TOKEN_NUMBER, Float(value))
		return
	}

	value, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		sc.fail(ErrNumberInvalid(baseName(base)))
		return
	}

	sc.addToken(TOKEN_NUMBER, Int(value))
}

func baseName(base int) string {
	switch base {
	case 16:
		return f("hexadecimal")
	case 8:
		return f("octal")
	case 2:
		return f("binary")
	default:
		return f("decimal")
	}
}

func (sc *Scanner) addToken(kind TokenKind, literal Value) {
	sc.tokens = append(sc.tokens, Token{
		Kind:    kind,
		Lexeme:  sc.source[sc.start:sc.current],
		Literal: literal,
		Offset:  sc.start,
		Line:    sc.line,
	})
}

func (sc *Scanner) fail(err error) {
	sc.errs = append(sc.errs, &ErrSyntax{
		Offset: sc.start,
		Line:   sc.line,
		Lexeme: sc.source[sc.start:sc.current],
		Err:    err,
	})
}

func (sc *Scanner) isAtEnd() bool {
	return sc.current >= len(sc.source)
}

func (sc *Scanner) advance() (c byte) {
	c = sc.source[sc.current]
	sc.current++
	return
}

func (sc *Scanner) match(expected byte) bool {
	if sc.isAtEnd() || sc.source[sc.current] != expected {
		return false
	}
	sc.current++
	return true
}

// pick returns matched if the next character is expected, otherwise single.
func (sc *Scanner) pick(expected byte, matched TokenKind, single TokenKind) TokenKind {
	if sc.match(expected) {
		return matched
	}
	return single
}

func (sc *Scanner) peek() byte {
	if sc.isAtEnd() {
		return 0
	}
	return sc.source[sc.current]
}

func (sc *Scanner) peekNext() byte {
	if sc.current+1 >= len(sc.source) {
		return 0
	}
	return sc.source[sc.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isNumberPart consumes the whole alphanumeric run of a literal, so that
// digits invalid for the base are reported rather than split off.
func isNumberPart(c byte) bool {
	return isAlphaNumeric(c) || c == '\''
}
