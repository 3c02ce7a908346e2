package expr

import (
	"errors"

	"github.com/ezrec/retrodbg/translate"
)

var f = translate.From

var (
	// Scanner errors
	ErrUnexpectedCharacter = errors.New(f("unexpected character"))
	ErrUnterminatedComment = errors.New(f("unterminated comment"))
	ErrSeparator           = errors.New(f("misplaced digit separator"))

	// Parser errors
	ErrExpectedExpression = errors.New(f("expected expression"))
	ErrExpectedEnd        = errors.New(f("Expected end of expression."))

	// Interpreter errors
	ErrUnknownIdentifier = errors.New(f("unknown identifier"))
	ErrOperandNumber     = errors.New(f("operand must be a number"))
	ErrOperandTypes      = errors.New(f("unsupported operand types"))
	ErrOperandInteger    = errors.New(f("operands must be integers"))
	ErrDivideByZero      = errors.New(f("divide by zero"))
)

// ErrNumberInvalid is a numeric literal the base converter could not consume.
type ErrNumberInvalid string

func (err ErrNumberInvalid) Error() string {
	return f("invalid %v number", string(err))
}

// ErrExpectedToken is a missing token of a specific kind.
type ErrExpectedToken TokenKind

func (err ErrExpectedToken) Error() string {
	return f("expected '%v'", TokenKind(err).String())
}

// ErrSyntax locates a scan or parse error in the condition source.
type ErrSyntax struct {
	Offset int    // Byte offset of the offending token.
	Line   int    // Line of the offending token.
	Lexeme string // Text of the offending token.
	Err    error
}

func (err *ErrSyntax) Error() string {
	if len(err.Lexeme) == 0 {
		return f("offset %d %v", err.Offset, err.Err)
	}
	return f("offset %d at '%v' %v", err.Offset, err.Lexeme, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime locates an evaluation error at an operator or identifier.
type ErrRuntime struct {
	Token Token
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("offset %d '%v' %v", err.Token.Offset, err.Token.Lexeme, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
