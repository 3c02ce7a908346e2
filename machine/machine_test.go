package machine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/retrodbg/breakpoint"
)

// accessLog records the hook calls of a machine.
type accessLog struct {
	writes []access
	reads  []access
}

type access struct {
	Bank   breakpoint.Bank
	Addr   uint32
	Length uint32
}

func (al *accessLog) WriteMemoryHook(bank breakpoint.Bank, addr uint32, length uint32) {
	al.writes = append(al.writes, access{bank, addr, length})
}

func (al *accessLog) ReadMemoryHook(bank breakpoint.Bank, addr uint32, length uint32) {
	al.reads = append(al.reads, access{bank, addr, length})
}

func TestMachineMemory(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(0x100)
	al := &accessLog{}
	m.Hooks = al

	assert.NoError(m.Load(0x10, []uint8{1, 2, 3}))
	assert.Empty(al.writes)
	assert.Equal(uint32(2), m.ReadMemory(0x11))
	assert.Empty(al.reads)

	assert.NoError(m.Poke(0x20, 0xaa, 0xbb))
	assert.Equal([]access{{breakpoint.AnyBank, 0x20, 2}}, al.writes)

	value, err := m.Peek(0x21)
	assert.NoError(err)
	assert.Equal(uint8(0xbb), value)
	assert.Equal([]access{{breakpoint.AnyBank, 0x21, 1}}, al.reads)

	// Empty writes are not accesses.
	assert.NoError(m.Poke(0x20))
	assert.Len(al.writes, 1)

	_, err = m.Peek(0x100)
	assert.ErrorIs(err, ErrAddress(0x100))
	assert.ErrorIs(m.Poke(0xff, 1, 2), ErrAddress(0x100))
	assert.ErrorIs(m.Load(0x100, []uint8{1}), ErrAddress(0x100))
	assert.Equal(uint32(math.MaxUint32), m.ReadMemory(0x100))
}

func TestMachineBanks(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(MEMORY_SIZE)
	al := &accessLog{}
	m.Hooks = al

	assert.ErrorIs(m.SelectBank(0), ErrBanksUnmapped)
	assert.ErrorIs(m.MapBanks(0xc000, 0x8000, 2), ErrAddress(0x13fff))

	assert.NoError(m.MapBanks(0x8000, 0x4000, 4))
	assert.Equal(NO_BANK, m.SelectedBank())
	assert.ErrorIs(m.SelectBank(4), ErrBank(4))
	assert.ErrorIs(m.SelectBank(-2), ErrBank(-2))

	// With the window unmapped, flat memory shows through.
	assert.NoError(m.Poke(0x8000, 0x11))
	assert.False(m.IsBankableAddress(NO_BANK, 0x8000))

	assert.NoError(m.SelectBank(2))
	assert.NoError(m.Poke(0x8000, 0x22))
	assert.Equal(breakpoint.Bank(2), al.writes[1].Bank)
	assert.Equal(uint32(0x22), m.ReadMemory(0x8000))
	assert.Equal(uint32(0x22), m.ReadBankableMemory(2, 0x8000))
	assert.Equal(uint32(0), m.ReadBankableMemory(1, 0x8000))
	assert.True(m.IsBankableAddress(2, 0x8000))
	assert.False(m.IsBankableAddress(1, 0x8000))
	assert.False(m.IsBankableAddress(2, 0xc000))

	assert.Equal(uint32(math.MaxUint32), m.ReadBankableMemory(2, 0x7fff))
	assert.Equal(uint32(math.MaxUint32), m.ReadBankableMemory(9, 0x8000))

	assert.NoError(m.SelectBank(NO_BANK))
	assert.Equal(uint32(0x11), m.ReadMemory(0x8000))

	m.Reset()
	assert.Equal(NO_BANK, m.SelectedBank())
	assert.Equal(uint32(0), m.ReadBankableMemory(2, 0x8000))
	assert.Equal(uint32(0), m.ReadMemory(0x8000))
}

func TestMachineRegisters(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(0x100)
	m.DefineRegister("A", 1)
	m.DefineRegister("X", 2)
	m.DefineRegister("A", 3)

	assert.Equal([]string{"A", "X"}, m.RegisterNames())
	assert.Equal(map[string]uint32{"A": 3, "X": 2}, m.Registers())

	assert.ErrorIs(m.SetRegister("Q", 1), breakpoint.ErrRegisterUnknown("Q"))
	assert.NoError(m.SetRegister("X", 7))

	value, ok := m.Register("X")
	assert.True(ok)
	assert.Equal(uint32(7), value)

	// The register set handed out is a copy.
	regs := m.Registers()
	regs["X"] = 99
	value, _ = m.Register("X")
	assert.Equal(uint32(7), value)

	m.PC = 0x1234
	assert.Equal("      pc: 1234\n       A: 0003\n       X: 0007\n", m.String())

	m.Reset()
	assert.Equal(map[string]uint32{"A": 0, "X": 0}, m.Registers())
	assert.Equal(uint32(0), m.ProgramCounter())
}

func TestMachineStep(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(0x100)
	m.ISA.Add(0xea, Instruction{Name: "nop", Length: 1})
	m.ISA.Add(0xa9, Instruction{Name: "lda #", Length: 2})
	m.ISA.Add(0x4c, Instruction{Name: "jmp", Length: 3, Jump: true})

	assert.NoError(m.Load(0, []uint8{0xea, 0xa9, 0x00, 0x4c, 0x00, 0x00, 0x02}))

	names := []string{}
	for range 4 {
		names = append(names, m.Step().Name)
	}
	assert.Equal([]string{"nop", "lda #", "jmp", "???"}, names)
	assert.Equal(uint32(7), m.PC)
}

func TestMachineRun(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(0x100)
	m.ISA.Add(0xea, Instruction{Name: "nop", Length: 1})
	m.ISA.Add(0x60, Instruction{Name: "rts", Length: 1, Jump: true})
	assert.NoError(m.Load(0, []uint8{0xea, 0xea, 0xea, 0xea, 0x60}))

	eng := breakpoint.NewEngine(m)
	eng.Jumps = m.ISA
	m.Hooks = eng

	num := eng.SetBreakpoint(3, breakpoint.AnyBank)

	stop, hit, steps := m.Run(eng, 100)
	assert.True(stop)
	assert.Equal(num, hit.Number)
	assert.Equal(3, steps)
	assert.Equal(uint32(3), m.PC)

	// The limit ends a run that never stops.
	m.PC = 0
	eng.DeleteBreakpoints()
	stop, _, steps = m.Run(eng, 2)
	assert.False(stop)
	assert.Equal(2, steps)

	eng.RunTillJump()
	stop, _, steps = m.Run(eng, 100)
	assert.True(stop)
	assert.Equal(2, steps)
	assert.Equal(uint32(4), m.PC)

	m.PC = 0
	eng.RunInstructions(2)
	stop, _, steps = m.Run(eng, 100)
	assert.True(stop)
	assert.Equal(2, steps)
}

func TestMachineResume(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(0x100)
	m.ISA.Add(0x00, Instruction{Name: "nop", Length: 1})
	eng := breakpoint.NewEngine(m)
	m.Hooks = eng

	num := eng.SetBreakpoint(2, breakpoint.AnyBank)

	stop, hit, steps := m.Run(eng, 10)
	assert.True(stop)
	assert.Equal(num, hit.Number)
	assert.Equal(2, steps)

	// Stepping from a breakpoint moves off it.
	eng.RunInstructions(1)
	stop, hit, steps = m.Run(eng, 10)
	assert.True(stop)
	assert.False(hit.Hit())
	assert.Equal(1, steps)
	assert.Equal(uint32(3), m.PC)

	// A zero step stays put, and so does a zero limit.
	eng.RunInstructions(0)
	stop, _, steps = m.Run(eng, 10)
	assert.True(stop)
	assert.Equal(0, steps)
	assert.Equal(uint32(3), m.PC)

	eng.Run(0)
	stop, _, steps = m.Run(eng, 0)
	assert.False(stop)
	assert.Equal(0, steps)
	assert.Equal(uint32(3), m.PC)

	// Continuing runs on without matching the breakpoint again.
	stop, _, steps = m.Run(eng, 4)
	assert.False(stop)
	assert.Equal(4, steps)
	assert.Equal(uint32(7), m.PC)

	// Coming back round to the breakpoint stops on it again.
	m.PC = 0
	stop, hit, _ = m.Run(eng, 10)
	assert.True(stop)
	assert.Equal(num, hit.Number)

	eng.Run(0)
	stop, _, steps = m.Run(eng, 1)
	assert.False(stop)
	assert.Equal(1, steps)
	assert.Equal(uint32(3), m.PC)
	assert.Equal(2, eng.BreakpointInfo(num)[0].TimesHit)
}

func TestMachineWatchpoint(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine(MEMORY_SIZE)
	assert.NoError(m.MapBanks(0x8000, 0x4000, 2))
	eng := breakpoint.NewEngine(m)
	m.Hooks = eng

	banked := eng.SetWatchpoint(0x8010, 1)
	flat := eng.SetWatchpoint(0x0010, breakpoint.AnyBank)

	// Writes to another bank do not arm the watch.
	assert.NoError(m.SelectBank(0))
	assert.NoError(m.Poke(0x8010, 5))
	stop, _ := eng.Poll()
	assert.False(stop)

	assert.NoError(m.SelectBank(1))
	assert.NoError(m.Poke(0x800f, 1, 6))
	stop, hit := eng.Poll()
	assert.True(stop)
	assert.Equal(banked, hit.Number)
	assert.Equal(uint32(0), hit.OldValue)
	assert.Equal(uint32(6), hit.Value)

	// A condition sees the machine's banked memory and registers.
	m.DefineRegister("A", 0)
	assert.NoError(eng.SetCondition(banked, "A == 1 && *1:0x8010 == 7"))
	assert.NoError(m.Poke(0x8010, 7))
	stop, _ = eng.Poll()
	assert.False(stop)

	assert.NoError(m.SetRegister("A", 1))
	assert.NoError(m.Poke(0x8010, 7))
	stop, hit = eng.Poll()
	assert.True(stop)
	assert.Equal(banked, hit.Number)

	assert.NoError(m.Poke(0x0010, 1))
	stop, hit = eng.Poll()
	assert.True(stop)
	assert.Equal(flat, hit.Number)
}
