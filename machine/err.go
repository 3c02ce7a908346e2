package machine

import (
	"errors"

	"github.com/ezrec/retrodbg/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrBanksUnmapped = errors.New(f("no bank window mapped"))
)

// ErrAddress is an address outside of the machine's memory.
type ErrAddress uint32

func (err ErrAddress) Error() string {
	return f("address 0x%x out of range", uint32(err))
}

// ErrBank is a bank number the machine does not have.
type ErrBank int

func (err ErrBank) Error() string {
	return f("bank %v invalid", int(err))
}
