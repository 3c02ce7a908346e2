// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"fmt"
)

// State is the view of the emulator an expression is evaluated against.
// All methods are queries; evaluation never modifies the state.
type State interface {
	// ReadMemory returns the value at an address of the current memory map.
	ReadMemory(addr uint32) uint32
	// ReadBankableMemory returns the value at an address of a specific bank.
	ReadBankableMemory(bank int, addr uint32) uint32
	// IsBankableAddress is true if the bank is mapped at the address.
	IsBankableAddress(bank int, addr uint32) bool
	// Registers returns the named register set.
	Registers() map[string]uint32
}

// Interpreter evaluates expression trees. It holds no evaluation state,
// and may be reused for any number of evaluations.
type Interpreter struct {
	State State
}

// NewInterpreter creates an interpreter over an emulator state.
func NewInterpreter(state State) *Interpreter {
	return &Interpreter{State: state}
}

// Boolean evaluates the expression and returns its truthiness.
func (in *Interpreter) Boolean(expr Expr) (ok bool, err error) {
	value, err := in.Evaluate(expr)
	if err != nil {
		return
	}

	ok = Truthy(value)
	return
}

// String evaluates the expression and renders the result.
func (in *Interpreter) String(expr Expr) (text string, err error) {
	value, err := in.Evaluate(expr)
	if err != nil {
		return
	}

	text = value.String()
	return
}

// Evaluate computes the value of an expression.
func (in *Interpreter) Evaluate(expr Expr) (value Value, err error) {
	switch expr := expr.(type) {
	case *Literal:
		value = expr.Value
	case *Grouping:
		value, err = in.Evaluate(expr.Expr)
	case *Variable:
		value, err = in.variable(expr)
	case *Unary:
		value, err = in.unary(expr)
	case *Binary:
		value, err = in.binary(expr)
	case *Logical:
		value, err = in.logical(expr)
	case *Ternary:
		value, err = in.ternary(expr)
	default:
		panic(fmt.Sprintf("expr: unknown node %T", expr))
	}

	return
}

func (in *Interpreter) variable(expr *Variable) (value Value, err error) {
	var regs map[string]uint32
	if in.State != nil {
		regs = in.State.Registers()
	}

	reg, ok := regs[expr.Name.Lexeme]
	if !ok {
		err = &ErrRuntime{Token: expr.Name, Err: ErrUnknownIdentifier}
		return
	}

	value = Int(int64(reg))
	return
}

func (in *Interpreter) unary(expr *Unary) (value Value, err error) {
	right, err := in.Evaluate(expr.Right)
	if err != nil {
		return
	}

	switch expr.Op.Kind {
	case TOKEN_BANG:
		value = Bool(!Truthy(right))
	case TOKEN_MINUS:
		n, ok := right.(Numeric)
		if !ok {
			err = &ErrRuntime{Token: expr.Op, Err: ErrOperandNumber}
			return
		}
		if n.IsFloat() {
			value = Float(-n.Float64())
		} else {
			value = Int(-n.Int64())
		}
	case TOKEN_STAR:
		value, err = in.dereference(expr.Op, right)
	default:
		panic(fmt.Sprintf("expr: unknown unary operator %v", expr.Op.Kind))
	}

	return
}

// dereference reads memory. A bank:address pair reads banked memory.
func (in *Interpreter) dereference(op Token, operand Value) (value Value, err error) {
	var data uint32

	switch operand := operand.(type) {
	case NumericPair:
		data = ^uint32(0)
		if in.State != nil {
			data = in.State.ReadBankableMemory(int(operand.Bank.Int64()), uint32(operand.Addr.Int64()))
		}
	case Numeric:
		data = ^uint32(0)
		if in.State != nil {
			data = in.State.ReadMemory(uint32(operand.Int64()))
		}
	default:
		err = &ErrRuntime{Token: op, Err: ErrOperandNumber}
		return
	}

	value = Int(int64(data))
	return
}

func (in *Interpreter) ternary(expr *Ternary) (value Value, err error) {
	cond, err := in.Evaluate(expr.Cond)
	if err != nil {
		return
	}

	if Truthy(cond) {
		return in.Evaluate(expr.Then)
	}

	return in.Evaluate(expr.Else)
}

func (in *Interpreter) logical(expr *Logical) (value Value, err error) {
	left, err := in.Evaluate(expr.Left)
	if err != nil {
		return
	}

	switch expr.Op.Kind {
	case TOKEN_PIPE_PIPE:
		if Truthy(left) {
			value = left
			return
		}
	case TOKEN_AMP_AMP:
		if !Truthy(left) {
			value = left
			return
		}
	default:
		panic(fmt.Sprintf("expr: unknown logical operator %v", expr.Op.Kind))
	}

	return in.Evaluate(expr.Right)
}

func (in *Interpreter) binary(expr *Binary) (value Value, err error) {
	left, err := in.Evaluate(expr.Left)
	if err != nil {
		return
	}

	right, err := in.Evaluate(expr.Right)
	if err != nil {
		return
	}

	op := expr.Op

	switch op.Kind {
	case TOKEN_COMMA:
		value = right
		return
	case TOKEN_EQUAL_EQUAL:
		value = Bool(Equal(left, right))
		return
	case TOKEN_BANG_EQUAL:
		value = Bool(!Equal(left, right))
		return
	case TOKEN_PLUS:
		_, lstr := left.(String)
		_, rstr := right.(String)
		if lstr || rstr {
			value = String(left.String() + right.String())
			return
		}
	}

	a, aok := left.(Numeric)
	b, bok := right.(Numeric)
	if !aok || !bok {
		if op.Kind == TOKEN_PLUS {
			err = &ErrRuntime{Token: op, Err: ErrOperandTypes}
		} else {
			err = &ErrRuntime{Token: op, Err: ErrOperandNumber}
		}
		return
	}

	value, err = arithmetic(op, a, b)
	return
}

// arithmetic applies a numeric operator, keeping integers only when both
// operands are integers.
func arithmetic(op Token, a, b Numeric) (value Value, err error) {
	ai, bi, af, bf, isInt := promote(a, b)

	switch op.Kind {
	case TOKEN_PLUS:
		if isInt {
			value = Int(ai + bi)
		} else {
			value = Float(af + bf)
		}
	case TOKEN_MINUS:
		if isInt {
			value = Int(ai - bi)
		} else {
			value = Float(af - bf)
		}
	case TOKEN_STAR:
		if isInt {
			value = Int(ai * bi)
		} else {
			value = Float(af * bf)
		}
	case TOKEN_SLASH:
		if b.IsZero() {
			err = &ErrRuntime{Token: op, Err: ErrDivideByZero}
			return
		}
		if isInt {
			value = Int(ai / bi)
		} else {
			value = Float(af / bf)
		}
	case TOKEN_PIPE, TOKEN_CARET, TOKEN_AMP:
		if !a.IsIntegral() || !b.IsIntegral() {
			err = &ErrRuntime{Token: op, Err: ErrOperandInteger}
			return
		}
		x, y := a.Int64(), b.Int64()
		switch op.Kind {
		case TOKEN_PIPE:
			value = Int(x | y)
		case TOKEN_CARET:
			value = Int(x ^ y)
		default:
			value = Int(x & y)
		}
	case TOKEN_LESS:
		if isInt {
			value = Bool(ai < bi)
		} else {
			value = Bool(af < bf)
		}
	case TOKEN_LESS_EQUAL:
		if isInt {
			value = Bool(ai <= bi)
		} else {
			value = Bool(af <= bf)
		}
	case TOKEN_GREATER:
		if isInt {
			value = Bool(ai > bi)
		} else {
			value = Bool(af > bf)
		}
	case TOKEN_GREATER_EQUAL:
		if isInt {
			value = Bool(ai >= bi)
		} else {
			value = Bool(af >= bf)
		}
	default:
		panic(fmt.Sprintf("expr: unknown binary operator %v", op.Kind))
	}

	return
}
