// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package breakpoint

import (
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/retrodbg/internal"
)

// record is an engine owned breakpoint.
type record struct {
	Info
	externalHit bool // Set by memory hooks, cleared by the next poll.
}

// Engine owns the breakpoints of one debugged host, and decides at each
// instruction boundary whether execution stops.
type Engine struct {
	Verbose bool        // If set, logs engine actions.
	Logger  *log.Logger // Destination of log messages, log.Default() if nil.

	Host  Host      // Emulator state. A nil Host reads as an empty Callbacks.
	Jumps JumpTable // Instruction classifier for RunTillJump.

	records map[uint32]*record
	order   []uint32 // Record numbers, ascending.
	counter uint32
	mode    RunMode
	lastHit Info
}

// NewEngine creates an engine for a host, in MODE_RUN.
func NewEngine(host Host) (eng *Engine) {
	eng = &Engine{
		Host:    host,
		records: map[uint32]*record{},
		lastHit: Info{Number: NoHit, Bank: AnyBank},
	}

	return
}

func (eng *Engine) host() Host {
	if eng.Host == nil {
		return &Callbacks{}
	}
	return eng.Host
}

func (eng *Engine) logger() *log.Logger {
	if eng.Logger == nil {
		return log.Default()
	}
	return eng.Logger
}

// logf logs in verbose mode.
func (eng *Engine) logf(format string, args ...any) {
	if eng.Verbose {
		eng.logger().Printf("breakpoint: "+format, args...)
	}
}

// add creates a record with the next breakpoint number.
func (eng *Engine) add(info Info) (num uint32) {
	if eng.records == nil {
		eng.records = map[uint32]*record{}
	}

	eng.counter++
	num = eng.counter

	info.Number = num
	info.Enabled = true
	eng.records[num] = &record{Info: info}
	// Numbers only grow, so appending keeps the order ascending.
	eng.order = append(eng.order, num)

	eng.logf("set %v", info)
	return
}

// all iterates the records in ascending breakpoint number order.
func (eng *Engine) all() iter.Seq2[uint32, *record] {
	return internal.KeyedSeq2(eng.order, eng.records)
}

// SetBreakpoint stops execution when the program counter reaches an
// address. A bank other than AnyBank also requires the bank to be mapped at
// the address.
func (eng *Engine) SetBreakpoint(addr uint32, bank Bank) (num uint32) {
	return eng.add(Info{Kind: BREAKPOINT, Address: addr, Bank: bank})
}

// SetWatchpoint stops execution after a write to an address.
func (eng *Engine) SetWatchpoint(addr uint32, bank Bank) (num uint32) {
	return eng.setWatch(WATCHPOINT, addr, bank)
}

// SetReadWatchpoint stops execution after a read of an address.
func (eng *Engine) SetReadWatchpoint(addr uint32, bank Bank) (num uint32) {
	return eng.setWatch(READ_WATCHPOINT, addr, bank)
}

// SetAnyWatchpoint stops execution after a read or a write of an address.
func (eng *Engine) SetAnyWatchpoint(addr uint32, bank Bank) (num uint32) {
	return eng.setWatch(ANY_WATCHPOINT, addr, bank)
}

func (eng *Engine) setWatch(kind Kind, addr uint32, bank Bank) (num uint32) {
	value := eng.readWatched(addr, bank)
	return eng.add(Info{Kind: kind, Address: addr, Bank: bank, OldValue: value, Value: value})
}

// SetRegisterWatchpoint stops execution when a named register changes.
func (eng *Engine) SetRegisterWatchpoint(name string) (num uint32, err error) {
	value, ok := eng.host().Registers()[name]
	if !ok {
		err = ErrRegisterUnknown(name)
		return
	}

	num = eng.add(Info{Kind: WATCHPOINT, Register: name, Bank: AnyBank, OldValue: value, Value: value})
	return
}

// readWatched reads the current value of a watched address.
func (eng *Engine) readWatched(addr uint32, bank Bank) uint32 {
	if bank == AnyBank {
		return eng.host().ReadMemory(addr)
	}
	return eng.host().ReadBankableMemory(int(bank), addr)
}

// SetCondition compiles a condition for a breakpoint, replacing any prior
// condition. Blank text removes the condition. If the text does not
// compile, the breakpoint is left without a condition.
func (eng *Engine) SetCondition(num uint32, text string) (err error) {
	rec, ok := eng.records[num]
	if !ok {
		err = ErrBreakpointUnknown(num)
		return
	}

	rec.Condition = nil
	rec.ConditionErr = nil

	if len(strings.TrimSpace(text)) == 0 {
		eng.logf("%d: condition removed", num)
		return
	}

	cond, err := NewCondition(text)
	if err != nil {
		err = &ErrCondition{Number: num, Text: text, Err: err}
		return
	}

	rec.Condition = cond
	eng.logf("%d: condition %v", num, cond.Tree())
	return
}

// SetDisposition selects what happens to a breakpoint after it stops
// execution.
func (eng *Engine) SetDisposition(num uint32, disp Disposition) (err error) {
	rec, ok := eng.records[num]
	if !ok {
		err = ErrBreakpointUnknown(num)
		return
	}

	rec.Disposition = disp
	return
}

// EnableBreakpoints enables the listed breakpoints, or all of them if none
// are listed. The result is false if none of the breakpoints exist.
func (eng *Engine) EnableBreakpoints(nums ...uint32) (ok bool) {
	for _, rec := range internal.SelectSeq2(eng.all(), nums...) {
		ok = true
		if rec.Enabled {
			continue
		}
		rec.Enabled = true
		if len(rec.Register) != 0 {
			// Changes while disabled are not reported.
			rec.Value = eng.host().Registers()[rec.Register]
		}
	}

	return
}

// DisableBreakpoints disables the listed breakpoints, or all of them if none
// are listed. The result is false if none of the breakpoints exist.
func (eng *Engine) DisableBreakpoints(nums ...uint32) (ok bool) {
	for _, rec := range internal.SelectSeq2(eng.all(), nums...) {
		ok = true
		rec.Enabled = false
		rec.externalHit = false
	}

	return
}

// DeleteBreakpoints deletes the listed breakpoints, or all of them if none
// are listed. Breakpoint numbers are never reused.
func (eng *Engine) DeleteBreakpoints(nums ...uint32) (count int) {
	for num := range internal.SelectSeq2(eng.all(), nums...) {
		delete(eng.records, num)
		count++
	}
	if count != 0 {
		eng.order = slices.DeleteFunc(eng.order, func(num uint32) bool {
			_, ok := eng.records[num]
			return !ok
		})
	}

	eng.logf("deleted %d", count)
	return
}

// BreakpointInfo returns a snapshot of the listed breakpoints, or of all of
// them if none are listed, in ascending breakpoint number order.
func (eng *Engine) BreakpointInfo(nums ...uint32) (list []Info) {
	for _, rec := range internal.SelectSeq2(eng.all(), nums...) {
		list = append(list, rec.Info)
	}

	return
}

// LastHit returns the record of the last stop caused by a breakpoint.
func (eng *Engine) LastHit() Info {
	return eng.lastHit
}
