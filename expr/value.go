// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Value is the tagged result of evaluating an expression, and the payload
// of a literal token.
//
// The concrete types are Uninitialized, Nil, Bool, Numeric, String and
// NumericPair.
type Value interface {
	fmt.Stringer
	isValue()
}

// Uninitialized is the value of nothing evaluated yet.
type Uninitialized struct{}

// Nil is the empty value.
type Nil struct{}

// Bool is a boolean value.
type Bool bool

// String is a text value.
type String string

// Numeric is an integer or a double.
type Numeric struct {
	float bool
	i     int64
	f     float64
}

// NumericPair is a bank:address literal. It is only meaningful as the
// operand of the memory dereference operator.
type NumericPair struct {
	Bank Numeric
	Addr Numeric
}

func (Uninitialized) isValue() {}
func (Nil) isValue()           {}
func (Bool) isValue()          {}
func (String) isValue()        {}
func (Numeric) isValue()       {}
func (NumericPair) isValue()   {}

// Int returns an integer Numeric.
func Int(i int64) Numeric {
	return Numeric{i: i}
}

// Float returns a double Numeric.
func Float(f float64) Numeric {
	return Numeric{float: true, f: f}
}

// IsFloat is true if the numeric holds a double.
func (n Numeric) IsFloat() bool {
	return n.float
}

// Int64 returns the numeric truncated to an integer.
func (n Numeric) Int64() int64 {
	if n.float {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns the numeric as a double.
func (n Numeric) Float64() float64 {
	if n.float {
		return n.f
	}
	return float64(n.i)
}

// IsZero is true for integer or double zero.
func (n Numeric) IsZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.i == 0
}

// IsIntegral is true if the numeric has no fractional part.
func (n Numeric) IsIntegral() bool {
	if !n.float {
		return true
	}
	return !math.IsInf(n.f, 0) && !math.IsNaN(n.f) && n.f == math.Trunc(n.f)
}

// promote brings two numerics to a common representation. Both stay
// integers only if both are integers; otherwise both become doubles.
func promote(a, b Numeric) (ai, bi int64, af, bf float64, isInt bool) {
	if !a.float && !b.float {
		return a.i, b.i, 0, 0, true
	}
	return 0, 0, a.Float64(), b.Float64(), false
}

// Truthy converts any value to a boolean. Numeric zero, Nil and
// Uninitialized are false, a Bool is itself, and anything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Uninitialized, Nil:
		return false
	case Bool:
		return bool(v)
	case Numeric:
		return !v.IsZero()
	default:
		return true
	}
}

// Equal compares two values structurally. Numerics compare as doubles;
// values of different kinds are never equal.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Uninitialized:
		_, ok := b.(Uninitialized)
		return ok
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case String:
		bs, ok := b.(String)
		return ok && a == bs
	case Numeric:
		bn, ok := b.(Numeric)
		return ok && a.Float64() == bn.Float64()
	case NumericPair:
		bp, ok := b.(NumericPair)
		return ok && a.Bank.Float64() == bp.Bank.Float64() && a.Addr.Float64() == bp.Addr.Float64()
	}
	return false
}

func (Uninitialized) String() string {
	return "uninitialized"
}

func (Nil) String() string {
	return "nil"
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (s String) String() string {
	return string(s)
}

// String renders a double with no fractional part as an integer.
func (n Numeric) String() string {
	if !n.float {
		return strconv.FormatInt(n.i, 10)
	}
	if n.IsIntegral() && math.Abs(n.f) < 1e18 {
		return strconv.FormatInt(int64(n.f), 10)
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

func (p NumericPair) String() string {
	return p.Bank.String() + ":" + p.Addr.String()
}
