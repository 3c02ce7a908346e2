package machine

import (
	"github.com/ezrec/retrodbg/breakpoint"
)

// Instruction describes one opcode of the machine's instruction set.
type Instruction struct {
	Name   string // Mnemonic.
	Length int    // Encoded length in bytes, including any prefix.
	Jump   bool   // Transfers control.
}

// ISA is the instruction set table of the machine. It is also the
// breakpoint.JumpTable used to finish up to the next jump.
type ISA struct {
	breakpoint.OpcodeTable

	single   map[uint8]Instruction
	extended map[uint8]map[uint8]Instruction
}

// Add defines a single byte opcode.
func (isa *ISA) Add(opcode uint8, ins Instruction) {
	if isa.single == nil {
		isa.single = map[uint8]Instruction{}
	}
	isa.single[opcode] = ins
	if ins.Jump {
		isa.AddJump(opcode)
	}
}

// AddExtended defines an opcode following an extended opcode prefix.
func (isa *ISA) AddExtended(prefix uint8, opcode uint8, ins Instruction) {
	if isa.extended == nil {
		isa.extended = map[uint8]map[uint8]Instruction{}
	}
	if isa.extended[prefix] == nil {
		isa.extended[prefix] = map[uint8]Instruction{}
	}
	isa.extended[prefix][opcode] = ins
	isa.SetExtended(prefix)
	if ins.Jump {
		isa.AddExtendedJump(prefix, opcode)
	}
}

// Decode looks up the instruction starting with the given two bytes.
// Unknown opcodes decode as a one byte "???" instruction.
func (isa *ISA) Decode(opcode uint8, next uint8) (ins Instruction) {
	var ok bool
	if ext, isExt := isa.extended[opcode]; isExt {
		ins, ok = ext[next]
	} else {
		ins, ok = isa.single[opcode]
	}

	if !ok || ins.Length < 1 {
		ins = Instruction{Name: "???", Length: 1}
	}

	return
}
