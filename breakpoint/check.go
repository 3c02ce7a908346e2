// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package breakpoint

import (
	"slices"
)

// WriteMemoryHook arms the write and access watchpoints on the bytes
// [addr, addr+length) of a bank. The host calls it after each write.
func (eng *Engine) WriteMemoryHook(bank Bank, addr uint32, length uint32) {
	eng.memoryHook(bank, addr, length, WATCHPOINT, ANY_WATCHPOINT)
}

// ReadMemoryHook arms the read and access watchpoints on the bytes
// [addr, addr+length) of a bank. The host calls it after each read.
func (eng *Engine) ReadMemoryHook(bank Bank, addr uint32, length uint32) {
	eng.memoryHook(bank, addr, length, READ_WATCHPOINT, ANY_WATCHPOINT)
}

// memoryHook arms watchpoints of the given kinds. A watch on a bank only
// sees accesses to that bank, and a watch on AnyBank only sees accesses
// outside of banked memory.
func (eng *Engine) memoryHook(bank Bank, addr uint32, length uint32, kinds ...Kind) {
	for _, rec := range eng.records {
		if !rec.Enabled || len(rec.Register) != 0 || rec.Bank != bank {
			continue
		}
		if !slices.Contains(kinds, rec.Kind) {
			continue
		}
		if rec.Address < addr || uint64(rec.Address-addr) >= uint64(length) {
			continue
		}
		rec.externalHit = true
	}
}

// CheckBreakpoints finds the first enabled record, in breakpoint number
// order, that matches the host state and whose condition holds. Its hit
// count is incremented and a snapshot returned. If nothing matched, the
// returned record has Number NoHit.
func (eng *Engine) CheckBreakpoints() (hit Info) {
	host := eng.host()
	pc := host.ProgramCounter()

	var regs map[string]uint32

	for num, rec := range eng.all() {
		if !rec.Enabled {
			continue
		}

		var matched bool
		switch {
		case rec.Kind == BREAKPOINT:
			matched = rec.Address == pc
			if matched && rec.Bank != AnyBank {
				matched = host.IsBankableAddress(int(rec.Bank), rec.Address)
			}
		case len(rec.Register) != 0:
			if regs == nil {
				regs = host.Registers()
			}
			value, ok := regs[rec.Register]
			if ok && value != rec.Value {
				matched = true
				rec.OldValue = rec.Value
				rec.Value = value
			}
		case rec.externalHit:
			matched = true
			rec.externalHit = false
			rec.OldValue = rec.Value
			rec.Value = eng.readWatched(rec.Address, rec.Bank)
		}

		if !matched {
			continue
		}

		if rec.Condition != nil {
			ok, err := rec.Condition.Evaluate(host)
			rec.ConditionErr = err
			if err != nil {
				// A broken condition never stops the program.
				eng.logger().Printf("breakpoint: %v", &ErrCondition{Number: num, Text: rec.Condition.String(), Err: err})
				continue
			}
			if !ok {
				continue
			}
		}

		rec.TimesHit++
		hit = rec.Info
		eng.logf("hit %v", hit)
		return
	}

	hit = Info{Number: NoHit, Bank: AnyBank}
	return
}

// HandleBreakInfo decides from the result of CheckBreakpoints whether
// execution stops, according to the run mode:
//
//   - MODE_RUN stops on any watchpoint, and on a breakpoint once the skip
//     count is used up.
//   - MODE_STEP stops on any hit, or once the step count is used up.
//   - MODE_FINISH ignores hits, and stops when the instruction at the
//     program counter is a jump.
//
// A record that stops execution has its disposition applied.
func (eng *Engine) HandleBreakInfo(hit Info) (stop bool) {
	switch eng.mode.Kind {
	case MODE_RUN:
		switch {
		case !hit.Hit():
		case hit.Kind != BREAKPOINT:
			stop = true
		case eng.mode.Count > 0:
			eng.mode.Count--
			eng.logf("skip %d, %d to go", hit.Number, eng.mode.Count)
		default:
			stop = true
		}
	case MODE_STEP:
		if hit.Hit() || eng.mode.Count == 0 {
			stop = true
		} else {
			eng.mode.Count--
		}
	case MODE_FINISH:
		stop = eng.atJump()
	}

	if stop && hit.Hit() && eng.mode.Kind != MODE_FINISH {
		eng.lastHit = hit
		eng.dispose(hit)
	}

	return
}

// Poll checks the breakpoints and decides whether execution stops. The host
// calls it once per instruction boundary.
func (eng *Engine) Poll() (stop bool, hit Info) {
	hit = eng.CheckBreakpoints()
	stop = eng.HandleBreakInfo(hit)
	return
}

// atJump classifies the instruction at the program counter.
func (eng *Engine) atJump() bool {
	if eng.Jumps == nil {
		return false
	}

	host := eng.host()
	pc := host.ProgramCounter()
	opcode := uint8(host.ReadMemory(pc))
	next := uint8(host.ReadMemory(pc + 1))

	return eng.Jumps.IsJump(opcode, next)
}

// dispose applies the disposition of a record that stopped execution.
func (eng *Engine) dispose(hit Info) {
	switch hit.Disposition {
	case DISP_DELETE:
		eng.DeleteBreakpoints(hit.Number)
	case DISP_DISABLE:
		eng.DisableBreakpoints(hit.Number)
	}
}
