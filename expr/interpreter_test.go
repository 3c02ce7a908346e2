package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeState is a sparse memory map that records every read.
type fakeState struct {
	memory    map[uint32]uint32
	banks     map[int]map[uint32]uint32
	registers map[string]uint32
	reads     []uint32
}

func newFakeState() *fakeState {
	return &fakeState{
		memory:    map[uint32]uint32{},
		banks:     map[int]map[uint32]uint32{},
		registers: map[string]uint32{},
	}
}

func (fs *fakeState) ReadMemory(addr uint32) uint32 {
	fs.reads = append(fs.reads, addr)
	return fs.memory[addr]
}

func (fs *fakeState) ReadBankableMemory(bank int, addr uint32) uint32 {
	fs.reads = append(fs.reads, addr)
	return fs.banks[bank][addr]
}

func (fs *fakeState) IsBankableAddress(bank int, addr uint32) bool {
	_, ok := fs.banks[bank][addr]
	return ok
}

func (fs *fakeState) Registers() map[string]uint32 {
	return fs.registers
}

func evalString(t *testing.T, state State, source string) (text string, err error) {
	expr, err := Compile(source)
	if !assert.NoError(t, err, source) {
		return
	}

	return NewInterpreter(state).String(expr)
}

func TestInterpretString(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()
	state.memory[0x100] = 5
	state.memory[100] = 7
	state.banks[1] = map[uint32]uint32{100: 9}
	state.registers["RegisterA"] = 5
	state.registers["SP"] = 0xfd

	table := []struct {
		Source string
		Text   string
	}{
		{"5 == 5 && (7 & 5) == 5", "true"},
		{"-2 + 5 + 10", "13"},
		{"2.3 - 5.3", "-3"},
		{"1, 2, 19, 100", "100"},
		{"false, true, false ? 100 : -5", "-5"},
		{"true ? 100 : -5", "100"},
		{"7 / 2", "3"},
		{"7.0 / 2", "3.5"},
		{"1.5 * 2", "3"},
		{"0.1 + 0.2 > 0.3", "true"},
		{"*0x100", "5"},
		{"*100 + *0x100", "12"},
		{"*(1:100)", "9"},
		{"*1:100 == 9", "true"},
		{"RegisterA == 5 && (7 & 5) == 5", "true"},
		{"SP - 0xfd", "0"},
		{"0 || 7", "7"},
		{"3 && 0", "0"},
		{"3 && 4", "4"},
		{"0 || 0.0", "0"},
		{"6 | 1", "7"},
		{"6 ^ 2", "4"},
		{"6.0 & 3", "2"},
		{"1 == true", "false"},
		{"1 == 1.0", "true"},
		{"true == true", "true"},
		{"true != false", "true"},
		{"1 <= 1", "true"},
		{"2 < 1.5", "false"},
		{"-(-4)", "4"},
		{"-2.5", "-2.5"},
		{"!0", "true"},
		{"!5", "false"},
		{"(1:2)", "1:2"},
	}

	for _, entry := range table {
		text, err := evalString(t, state, entry.Source)
		assert.NoError(err, entry.Source)
		assert.Equal(entry.Text, text, entry.Source)
	}
}

func TestInterpretErrors(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()

	table := []struct {
		Source string
		Err    error
	}{
		{"5 / 0", ErrDivideByZero},
		{"5.0 / 0.0", ErrDivideByZero},
		{"Unknown == 1", ErrUnknownIdentifier},
		{"-true", ErrOperandNumber},
		{"true + 1", ErrOperandTypes},
		{"true - 1", ErrOperandNumber},
		{"true < 1", ErrOperandNumber},
		{"1.5 & 1", ErrOperandInteger},
		{"*true", ErrOperandNumber},
		{"(1:2) + 1", ErrOperandTypes},
		{"1 && (2 / 0)", ErrDivideByZero},
	}

	for _, entry := range table {
		_, err := evalString(t, state, entry.Source)
		assert.ErrorIs(err, entry.Err, entry.Source)

		var runtime *ErrRuntime
		assert.ErrorAs(err, &runtime, entry.Source)
	}
}

func TestInterpretShortCircuit(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()

	// The unevaluated operand would fail if it ran.
	for _, source := range []string{
		"1 || Unknown",
		"0 && (1 / 0)",
		"true ? 1 : Unknown",
		"false ? 1 / 0 : 2",
	} {
		_, err := evalString(t, state, source)
		assert.NoError(err, source)
	}
}

func TestInterpretTernaryLazy(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()

	text, err := evalString(t, state, "false, true, false ? *100 : -5")
	assert.NoError(err)
	assert.Equal("-5", text)
	assert.Empty(state.reads)

	text, err = evalString(t, state, "1 ? *0x10 : *0x20")
	assert.NoError(err)
	assert.Equal("0", text)
	assert.Equal([]uint32{0x10}, state.reads)
}

func TestInterpretBoolean(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()
	in := NewInterpreter(state)

	table := []struct {
		Source string
		Truth  bool
	}{
		{"0", false},
		{"0.0", false},
		{"-0.0", false},
		{"1", true},
		{"0.5", true},
		{"-1", true},
		{"(1:0)", true},
		{"true", true},
		{"false", false},
	}

	for _, entry := range table {
		for _, prefix := range []string{"", "!!", "!!!!"} {
			expr, err := Compile(prefix + entry.Source)
			assert.NoError(err)
			ok, err := in.Boolean(expr)
			assert.NoError(err)
			assert.Equal(entry.Truth, ok, prefix+entry.Source)
		}
	}
}

func TestInterpretReentrant(t *testing.T) {
	assert := assert.New(t)

	state := newFakeState()
	expr, err := Compile("*(100) == 5")
	assert.NoError(err)

	in := NewInterpreter(state)
	for _, value := range []uint32{0, 5, 0, 5, 5, 1} {
		state.memory[100] = value
		ok, err := in.Boolean(expr)
		assert.NoError(err)
		assert.Equal(value == 5, ok)
	}
}

func TestInterpretNoState(t *testing.T) {
	assert := assert.New(t)

	in := NewInterpreter(nil)

	expr, err := Compile("*0x10")
	assert.NoError(err)
	text, err := in.String(expr)
	assert.NoError(err)
	assert.Equal("4294967295", text)

	expr, err = Compile("A")
	assert.NoError(err)
	_, err = in.Evaluate(expr)
	assert.ErrorIs(err, ErrUnknownIdentifier)
}
