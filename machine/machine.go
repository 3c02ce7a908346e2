// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine is a small in-memory emulator host: a byte addressed
// memory with an optional banked window, named registers and a program
// counter. It implements breakpoint.Host, and reports its memory accesses to
// a breakpoint engine.
package machine

import (
	"fmt"
	"log"
	"maps"
	"math"
	"strings"

	"github.com/ezrec/retrodbg/breakpoint"
)

const (
	MEMORY_SIZE = 0x10000 // Default size of the flat address space.
	NO_BANK     = -1      // Bank selection with the window unmapped.
)

// Hooks receives the memory accesses of the emulated CPU.
// breakpoint.Engine implements it.
type Hooks interface {
	WriteMemoryHook(bank breakpoint.Bank, addr uint32, length uint32)
	ReadMemoryHook(bank breakpoint.Bank, addr uint32, length uint32)
}

// Machine state.
type Machine struct {
	Verbose bool    // If set, enables verbose logging.
	Memory  []uint8 // Flat address space.
	PC      uint32  // Program counter.
	ISA     *ISA    // Instruction set, for Step.
	Hooks   Hooks   // Memory access observer, may be nil.

	registers map[string]uint32
	names     []string // Register names in definition order.

	banks      [][]uint8
	windowBase uint32
	windowSize uint32
	selected   int

	stopped bool   // Run last stopped at stopPC.
	stopPC  uint32
}

var _ breakpoint.Host = (*Machine)(nil)

// NewMachine creates a machine with size bytes of memory.
func NewMachine(size int) (m *Machine) {
	m = &Machine{
		Memory:    make([]uint8, size),
		ISA:       &ISA{},
		registers: map[string]uint32{},
		selected:  NO_BANK,
	}

	return
}

// Reset clears memory and registers, and unmaps the bank window.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	clear(m.Memory)
	for _, bank := range m.banks {
		clear(bank)
	}
	for name := range m.registers {
		m.registers[name] = 0
	}
	m.PC = 0
	m.selected = NO_BANK
	m.stopped = false
}

// DefineRegister adds a named register, or sets it if already defined.
func (m *Machine) DefineRegister(name string, value uint32) {
	if _, ok := m.registers[name]; !ok {
		m.names = append(m.names, name)
	}
	m.registers[name] = value
}

// SetRegister sets a defined register.
func (m *Machine) SetRegister(name string, value uint32) (err error) {
	if _, ok := m.registers[name]; !ok {
		err = breakpoint.ErrRegisterUnknown(name)
		return
	}

	m.registers[name] = value
	return
}

// Register returns a register value.
func (m *Machine) Register(name string) (value uint32, ok bool) {
	value, ok = m.registers[name]
	return
}

// RegisterNames returns the register names in definition order.
func (m *Machine) RegisterNames() []string {
	return m.names
}

// MapBanks creates count banks of size bytes, switched in at base.
func (m *Machine) MapBanks(base uint32, size uint32, count int) (err error) {
	if uint64(base)+uint64(size) > uint64(len(m.Memory)) {
		err = ErrAddress(base + size - 1)
		return
	}

	m.banks = make([][]uint8, count)
	for n := range m.banks {
		m.banks[n] = make([]uint8, size)
	}
	m.windowBase = base
	m.windowSize = size
	m.selected = NO_BANK

	return
}

// SelectBank switches a bank into the window. NO_BANK unmaps it.
func (m *Machine) SelectBank(bank int) (err error) {
	if len(m.banks) == 0 {
		err = ErrBanksUnmapped
		return
	}
	if bank != NO_BANK && (bank < 0 || bank >= len(m.banks)) {
		err = ErrBank(bank)
		return
	}

	m.selected = bank
	if m.Verbose {
		log.Printf("machine: bank %v", bank)
	}
	return
}

// SelectedBank returns the bank in the window, or NO_BANK.
func (m *Machine) SelectedBank() int {
	return m.selected
}

// inWindow is true if the address is inside the bank window.
func (m *Machine) inWindow(addr uint32) bool {
	return len(m.banks) != 0 && addr >= m.windowBase && addr-m.windowBase < m.windowSize
}

// cell returns the storage of an address in the current memory map, and
// the bank it belongs to.
func (m *Machine) cell(addr uint32) (data *uint8, bank breakpoint.Bank) {
	bank = breakpoint.AnyBank
	if m.selected != NO_BANK && m.inWindow(addr) {
		bank = breakpoint.Bank(m.selected)
		data = &m.banks[m.selected][addr-m.windowBase]
		return
	}

	if int64(addr) < int64(len(m.Memory)) {
		data = &m.Memory[addr]
	}
	return
}

// ProgramCounter implements breakpoint.Host.
func (m *Machine) ProgramCounter() uint32 {
	return m.PC
}

// ReadMemory implements breakpoint.Host. It does not count as a CPU access.
func (m *Machine) ReadMemory(addr uint32) uint32 {
	data, _ := m.cell(addr)
	if data == nil {
		return math.MaxUint32
	}
	return uint32(*data)
}

// ReadBankableMemory implements breakpoint.Host.
func (m *Machine) ReadBankableMemory(bank int, addr uint32) uint32 {
	if bank < 0 || bank >= len(m.banks) || !m.inWindow(addr) {
		return math.MaxUint32
	}
	return uint32(m.banks[bank][addr-m.windowBase])
}

// IsBankableAddress implements breakpoint.Host.
func (m *Machine) IsBankableAddress(bank int, addr uint32) bool {
	return bank != NO_BANK && bank == m.selected && m.inWindow(addr)
}

// Registers implements breakpoint.Host.
func (m *Machine) Registers() map[string]uint32 {
	return maps.Clone(m.registers)
}

// Load copies an image into the current memory map, without reporting
// accesses.
func (m *Machine) Load(addr uint32, image []uint8) (err error) {
	for n, value := range image {
		data, _ := m.cell(addr + uint32(n))
		if data == nil {
			err = ErrAddress(addr + uint32(n))
			return
		}
		*data = value
	}

	return
}

// Peek is a CPU read of a byte. The access is reported to the hooks.
func (m *Machine) Peek(addr uint32) (value uint8, err error) {
	data, bank := m.cell(addr)
	if data == nil {
		err = ErrAddress(addr)
		return
	}

	value = *data
	if m.Hooks != nil {
		m.Hooks.ReadMemoryHook(bank, addr, 1)
	}
	return
}

// Poke is a CPU write of consecutive bytes. The access is reported to the
// hooks, in the bank of the first byte.
func (m *Machine) Poke(addr uint32, values ...uint8) (err error) {
	if len(values) == 0 {
		return
	}

	_, bank := m.cell(addr)

	for n, value := range values {
		data, _ := m.cell(addr + uint32(n))
		if data == nil {
			err = ErrAddress(addr + uint32(n))
			return
		}
		*data = value
	}

	if m.Hooks != nil {
		m.Hooks.WriteMemoryHook(bank, addr, uint32(len(values)))
	}
	return
}

// Decode returns the instruction at the program counter.
func (m *Machine) Decode() Instruction {
	opcode := uint8(m.ReadMemory(m.PC))
	next := uint8(m.ReadMemory(m.PC + 1))
	return m.ISA.Decode(opcode, next)
}

// Step moves the program counter past the current instruction.
func (m *Machine) Step() (ins Instruction) {
	ins = m.Decode()
	if m.Verbose {
		log.Printf("machine: %04x %v", m.PC, ins.Name)
	}
	m.PC += uint32(ins.Length)
	return
}

// Run polls the engine at each instruction boundary and steps until it
// says to stop, or limit instructions have been stepped. Continuing from
// the boundary of the last stop first moves past that instruction, so the
// record that stopped it does not match again.
func (m *Machine) Run(eng *breakpoint.Engine, limit int) (stop bool, hit breakpoint.Info, steps int) {
	hit = breakpoint.Info{Number: breakpoint.NoHit, Bank: breakpoint.AnyBank}

	resume := m.stopped && m.PC == m.stopPC
	m.stopped = false

	if resume {
		stop = eng.Resume()
		if stop || steps >= limit {
			m.stopped = true
			return
		}
		m.Step()
		steps++
	}

	for {
		stop, hit = eng.Poll()
		if stop {
			m.stopped = true
			m.stopPC = m.PC
			return
		}
		if steps >= limit {
			return
		}
		m.Step()
		steps++
	}
}

// String returns the registers and program counter.
func (m *Machine) String() (text string) {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "% 8s: %04x\n", "pc", m.PC)
	for _, name := range m.names {
		fmt.Fprintf(sb, "% 8s: %04x\n", name, m.registers[name])
	}
	if len(m.banks) != 0 {
		fmt.Fprintf(sb, "% 8s: %v\n", "bank", m.selected)
	}

	return sb.String()
}
