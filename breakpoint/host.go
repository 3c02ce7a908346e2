// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package breakpoint

import (
	"math"

	"github.com/ezrec/retrodbg/expr"
)

// Host is the emulator the engine debugs. Every method is a query, called
// on the same goroutine that polls the engine.
type Host interface {
	expr.State
	// ProgramCounter returns the address of the next instruction.
	ProgramCounter() uint32
}

// Callbacks is a Host assembled from optional functions. A missing memory
// or program counter callback reads as math.MaxUint32, a missing register
// callback as an empty register set.
type Callbacks struct {
	PC          func() uint32
	Read        func(addr uint32) uint32
	ReadBank    func(bank int, addr uint32) uint32
	IsBankable  func(bank int, addr uint32) bool
	RegisterSet func() map[string]uint32
}

var _ Host = (*Callbacks)(nil)

func (cb *Callbacks) ProgramCounter() uint32 {
	if cb.PC == nil {
		return math.MaxUint32
	}
	return cb.PC()
}

func (cb *Callbacks) ReadMemory(addr uint32) uint32 {
	if cb.Read == nil {
		return math.MaxUint32
	}
	return cb.Read(addr)
}

func (cb *Callbacks) ReadBankableMemory(bank int, addr uint32) uint32 {
	if cb.ReadBank == nil {
		return math.MaxUint32
	}
	return cb.ReadBank(bank, addr)
}

func (cb *Callbacks) IsBankableAddress(bank int, addr uint32) bool {
	if cb.IsBankable == nil {
		return false
	}
	return cb.IsBankable(bank, addr)
}

func (cb *Callbacks) Registers() map[string]uint32 {
	if cb.RegisterSet == nil {
		return map[string]uint32{}
	}
	return cb.RegisterSet()
}
