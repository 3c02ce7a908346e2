package breakpoint

// ModeKind is the execution mode the engine decides stops for.
type ModeKind int

//go:generate go tool stringer -linecomment -type=ModeKind
const (
	MODE_RUN    = ModeKind(0) // run
	MODE_STEP   = ModeKind(1) // step
	MODE_FINISH = ModeKind(2) // finish
)

// RunMode is the active execution mode and its counter. For MODE_RUN the
// counter is the number of breakpoint hits still to skip, for MODE_STEP the
// number of instruction boundaries still to run.
type RunMode struct {
	Kind  ModeKind
	Count int
}

// Run continues until a breakpoint or watchpoint stops execution, ignoring
// the next skip breakpoint hits. Watchpoints are never skipped.
//
// The result is false: the host should let the CPU run rather than wait
// synchronously on the next poll.
func (eng *Engine) Run(skip int) (sync bool) {
	eng.mode = RunMode{Kind: MODE_RUN, Count: max(skip, 0)}
	eng.logf("run skip %d", skip)
	return false
}

// RunInstructions steps count instruction boundaries, stopping early at any
// breakpoint or watchpoint.
//
// The result is true: the host advances one boundary and polls.
func (eng *Engine) RunInstructions(count int) (sync bool) {
	eng.mode = RunMode{Kind: MODE_STEP, Count: max(count, 0)}
	eng.logf("step %d", count)
	return true
}

// RunTillJump continues until the instruction at the program counter is a
// jump, as classified by the engine's JumpTable.
//
// The result is false: the host should let the CPU run.
func (eng *Engine) RunTillJump() (sync bool) {
	eng.mode = RunMode{Kind: MODE_FINISH}
	eng.logf("finish")
	return false
}

// Mode returns the active execution mode.
func (eng *Engine) Mode() RunMode {
	return eng.mode
}

// Resume makes the stop decision for the boundary execution last stopped
// at, without matching any record again. The host calls it instead of Poll
// when continuing from a stop, then advances one boundary and polls as usual.
func (eng *Engine) Resume() (stop bool) {
	if eng.mode.Kind == MODE_STEP {
		stop = eng.HandleBreakInfo(Info{Number: NoHit, Bank: AnyBank})
	}
	eng.logf("resume %v", eng.mode.Kind)
	return
}
