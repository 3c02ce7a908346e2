package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/retrodbg/breakpoint"
	"github.com/ezrec/retrodbg/expr"
	"github.com/ezrec/retrodbg/machine"
)

func TestRunModes(t *testing.T) {
	assert := assert.New(t)

	src := `
opcode(0xea, "nop", 1)
opcode(0x4c, "jmp", 3, jump=True)
for addr in range(0x10):
    poke(addr, 0xea)
poke(0x08, 0x4c)

b = break_at(4)
print(b)

r = run()
print(r["stop"], r["steps"], r["pc"], r["hit"]["number"])

r = finish()
print(r["stop"], r["pc"], info(b)[0]["hits"])

pc(0)
cond(b, "A == 2")
reg("A", 1)
r = step(count=6)
print(r["stop"], r["steps"], r["pc"], r["hit"])

pc(0)
reg("A", 2)
r = run(limit=100)
print(r["stop"], r["pc"], last_hit()["condition"])
`

	out := &strings.Builder{}
	err := Run("modes", src, out)
	assert.NoError(err)
	assert.Equal("1\nTrue 4 4 1\nTrue 8 1\nTrue 6 6 None\nTrue 4 A == 2\n", out.String())
}

func TestRunResume(t *testing.T) {
	assert := assert.New(t)

	src := `
opcode(0x00, "nop", 1)
b = break_at(2)
r = run(limit=8)
print(r["stop"], r["pc"], r["steps"])
r = step()
print(r["stop"], r["pc"], r["steps"], r["hit"])
r = step(count=0)
print(r["stop"], r["pc"], r["steps"])
r = run(limit=4)
print(r["stop"], r["pc"], r["steps"], info(b)[0]["hits"])
`

	out := &strings.Builder{}
	assert.NoError(Run("resume", src, out))
	assert.Equal("True 2 2\nTrue 3 1 None\nTrue 3 0\nFalse 7 4 1\n", out.String())
}

func TestRunSkip(t *testing.T) {
	assert := assert.New(t)

	src := `
opcode(0x00, "nop", 1)
b = break_at(2)
for n in range(3):
    pc(0)
    # A skipped hit runs on to the limit.
    r = run(limit=8, skip=1 if n == 0 else 0)
    print(r["stop"], r["pc"])
`

	out := &strings.Builder{}
	assert.NoError(Run("skip", src, out))
	assert.Equal("False 8\nTrue 2\nTrue 2\n", out.String())
}

func TestWatchScript(t *testing.T) {
	assert := assert.New(t)

	src := `
bank_map(0x8000, 0x100, 2)
bank_select(1)
w = watch(0x8010, bank=1)
poke(0x8010, 7)
r = poll()
print(r["hit"]["kind"], r["hit"]["old_value"], r["hit"]["value"])
print(eval("*1:0x8010 + 1"))
print(info(w)[0]["text"])

dispose(w, "del")
poke(0x8010, 8)
print(poll()["stop"], len(info()))

reg("X", 0)
x = watch_reg("X")
reg("X", 5)
hit = poll()["hit"]
print(hit["register"], hit["old_value"], hit["value"])

print(disable(x), enable(99), delete(), peek(0x8010))
`

	out := &strings.Builder{}
	assert.NoError(Run("watch", src, out))

	lines := strings.Split(out.String(), "\n")
	if assert.Len(lines, 7) {
		assert.Equal("watchpoint 0 7", lines[0])
		assert.Equal("8", lines[1])
		assert.Contains(lines[2], "0x8010 bank 1 value 0x7 hit 1")
		assert.Equal("True 0", lines[3])
		assert.Equal("X 0 5", lines[4])
		assert.Equal("True False 1 8", lines[5])
	}
}

func TestSessionMachine(t *testing.T) {
	assert := assert.New(t)

	m := machine.NewMachine(0x100)
	m.DefineRegister("SP", 0xff)
	out := &strings.Builder{}
	s := NewSession(m, out)

	assert.NoError(s.Exec("regs", `print(regs(), eval("SP - 1"))`))
	assert.Equal("{\"SP\": 255} 254\n", out.String())

	assert.Same(s.Engine, m.Hooks)
	assert.NoError(s.Exec("break", `break_at(0x10)`))
	assert.Len(s.Engine.BreakpointInfo(), 1)
}

func TestConditionFailOpen(t *testing.T) {
	assert := assert.New(t)

	src := `
opcode(0x00, "nop", 1)
b = break_at(1)
cond(b, "1 / (*0x80)")
r = run(limit=4)
info_b = info(b)[0]
print(r["stop"], info_b["hits"], info_b["condition_error"] != None)
`

	out := &strings.Builder{}
	assert.NoError(Run("failopen", src, out))
	assert.Equal("False 0 True\n", out.String())
}

func TestScriptErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Src  string
		Is   error
		Text string
	}{
		{Src: `cond(99, "1")`, Is: breakpoint.ErrBreakpointUnknown(99)},
		{Src: `cond(break_at(1), "A = 1")`, Is: expr.ErrUnexpectedCharacter},
		{Src: `dispose(break_at(1), "forever")`, Is: ErrDisposition("forever")},
		{Src: `watch_reg("Q")`, Is: breakpoint.ErrRegisterUnknown("Q")},
		{Src: `reg("Q")`, Is: breakpoint.ErrRegisterUnknown("Q")},
		{Src: `bank_select(0)`, Is: machine.ErrBanksUnmapped},
		{Src: `peek(0x10000)`, Is: machine.ErrAddress(0x10000)},
		{Src: `eval("1 +")`, Is: expr.ErrExpectedExpression},
		{Src: `eval("1 / 0")`, Is: expr.ErrDivideByZero},
		{Src: `break_at(1, bank=-5)`, Text: "out of range"},
		{Src: `poke(1, 256)`, Text: "out of range"},
		{Src: `break_at(-1)`, Text: "out of range"},
		{Src: `opcode(0x100, "x", 1)`, Text: "out of range"},
		{Src: `bank_map(0, 0x10, 0)`, Text: "out of range"},
		{Src: `enable(x=1)`, Text: "unexpected keyword"},
		{Src: `poke()`, Text: "poke"},
	}

	for _, entry := range table {
		err := Run("errors", entry.Src, nil)
		if !assert.Error(err, entry.Src) {
			continue
		}
		if entry.Is != nil {
			assert.ErrorIs(err, entry.Is, entry.Src)
		}
		if len(entry.Text) != 0 {
			assert.ErrorContains(err, entry.Text, entry.Src)
		}
	}
}
