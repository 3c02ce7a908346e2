// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"fmt"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_LEFT_PAREN    = TokenKind(0)  // (
	TOKEN_RIGHT_PAREN   = TokenKind(1)  // )
	TOKEN_LEFT_BRACE    = TokenKind(2)  // {
	TOKEN_RIGHT_BRACE   = TokenKind(3)  // }
	TOKEN_COLON         = TokenKind(4)  // :
	TOKEN_COMMA         = TokenKind(5)  // ,
	TOKEN_DOT           = TokenKind(6)  // .
	TOKEN_MINUS         = TokenKind(7)  // -
	TOKEN_PLUS          = TokenKind(8)  // +
	TOKEN_QUESTION      = TokenKind(9)  // ?
	TOKEN_STAR          = TokenKind(10) // *
	TOKEN_SLASH         = TokenKind(11) // /
	TOKEN_CARET         = TokenKind(12) // ^
	TOKEN_BANG          = TokenKind(13) // !
	TOKEN_BANG_EQUAL    = TokenKind(14) // !=
	TOKEN_EQUAL_EQUAL   = TokenKind(15) // ==
	TOKEN_LESS          = TokenKind(16) // <
	TOKEN_LESS_EQUAL    = TokenKind(17) // <=
	TOKEN_GREATER       = TokenKind(18) // >
	TOKEN_GREATER_EQUAL = TokenKind(19) // >=
	TOKEN_AMP           = TokenKind(20) // &
	TOKEN_AMP_AMP       = TokenKind(21) // &&
	TOKEN_PIPE          = TokenKind(22) // |
	TOKEN_PIPE_PIPE     = TokenKind(23) // ||
	TOKEN_IDENTIFIER    = TokenKind(24) // identifier
	TOKEN_NUMBER        = TokenKind(25) // number
	TOKEN_TRUE          = TokenKind(26) // true
	TOKEN_FALSE         = TokenKind(27) // false
	TOKEN_EOF           = TokenKind(28) // end of expression
)

// keywords are the only reserved words of the language.
var keywords = map[string]TokenKind{
	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,
}

// Token is a single lexical element of a condition.
type Token struct {
	Kind    TokenKind // Lexical class.
	Lexeme  string    // Source text of the token.
	Literal Value     // Decoded literal, nil for punctuation and identifiers.
	Offset  int       // Byte offset of the token in the source.
	Line    int       // Source line, starting at 1.
}

// String returns a debug representation of the token.
func (tok Token) String() string {
	if tok.Literal != nil {
		return fmt.Sprintf("%v %q %v", tok.Kind, tok.Lexeme, tok.Literal)
	}
	return fmt.Sprintf("%v %q", tok.Kind, tok.Lexeme)
}
