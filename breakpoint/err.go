package breakpoint

import (
	"github.com/ezrec/retrodbg/translate"
)

var f = translate.From

// ErrBreakpointUnknown is a breakpoint number that does not exist.
type ErrBreakpointUnknown uint32

func (err ErrBreakpointUnknown) Error() string {
	return f("breakpoint %v unknown", uint32(err))
}

// ErrRegisterUnknown is a register name the host does not have.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register '%v' unknown", string(err))
}

// ErrCondition is a condition that could not be compiled or evaluated.
type ErrCondition struct {
	Number uint32 // Breakpoint number.
	Text   string // Condition source.
	Err    error
}

func (err *ErrCondition) Error() string {
	return f("breakpoint %v condition '%v' %v", err.Number, err.Text, err.Err)
}

func (err *ErrCondition) Unwrap() error {
	return err.Err
}
