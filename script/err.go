package script

import (
	"github.com/ezrec/retrodbg/translate"
)

var f = translate.From

// ErrArgument is a builtin argument out of range.
type ErrArgument struct {
	Builtin string
	Name    string
	Value   string
}

func (err *ErrArgument) Error() string {
	return f("%v: %v: %v out of range", err.Builtin, err.Name, err.Value)
}

// ErrDisposition is an unknown disposition name.
type ErrDisposition string

func (err ErrDisposition) Error() string {
	return f("unknown disposition '%v'", string(err))
}

// ErrResult wraps an error returned by a builtin.
type ErrResult struct {
	Builtin string
	Err     error
}

func (err *ErrResult) Error() string {
	return f("%v: %v", err.Builtin, err.Err)
}

func (err *ErrResult) Unwrap() error {
	return err.Err
}
