package script

import (
	"math"

	"go.starlark.net/starlark"

	"github.com/ezrec/retrodbg/breakpoint"
	"github.com/ezrec/retrodbg/expr"
	"github.com/ezrec/retrodbg/machine"
)

type builtinFunc func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// builtins returns the predeclared names of a session script.
func (s *Session) builtins() (dict starlark.StringDict) {
	table := map[string]builtinFunc{
		"poke":        s.poke,
		"peek":        s.peek,
		"pc":          s.pc,
		"reg":         s.reg,
		"regs":        s.regs,
		"bank_map":    s.bankMap,
		"bank_select": s.bankSelect,
		"opcode":      s.opcode,
		"break_at":    s.breakAt,
		"watch":       s.watch(breakpoint.WATCHPOINT),
		"rwatch":      s.watch(breakpoint.READ_WATCHPOINT),
		"awatch":      s.watch(breakpoint.ANY_WATCHPOINT),
		"watch_reg":   s.watchReg,
		"cond":        s.cond,
		"dispose":     s.dispose,
		"enable":      s.enable,
		"disable":     s.disable,
		"delete":      s.delete,
		"info":        s.info,
		"last_hit":    s.lastHit,
		"run":         s.run,
		"step":        s.step,
		"finish":      s.finish,
		"poll":        s.poll,
		"eval":        s.eval,
	}

	dict = starlark.StringDict{
		"ANY_BANK": starlark.MakeInt(int(breakpoint.AnyBank)),
		"NO_BANK":  starlark.MakeInt(machine.NO_BANK),
	}
	for name, fn := range table {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

// uint32Of converts an integer argument.
func uint32Of(b *starlark.Builtin, name string, v starlark.Value) (value uint32, err error) {
	if i, ok := v.(starlark.Int); ok {
		u, ok := i.Uint64()
		if ok && u <= math.MaxUint32 {
			value = uint32(u)
			return
		}
	}

	err = &ErrArgument{Builtin: b.Name(), Name: name, Value: valueText(v)}
	return
}

// bankOf converts an optional bank argument. None and -1 are any bank.
func bankOf(b *starlark.Builtin, v starlark.Value) (bank breakpoint.Bank, err error) {
	bank = breakpoint.AnyBank
	if v == nil || v == starlark.None {
		return
	}

	if i, ok := v.(starlark.Int); ok {
		n, ok := i.Int64()
		if ok && n >= -1 && n <= math.MaxInt32 {
			bank = breakpoint.Bank(n)
			return
		}
	}

	err = &ErrArgument{Builtin: b.Name(), Name: "bank", Value: valueText(v)}
	return
}

// numbers converts a list of breakpoint numbers.
func numbers(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (nums []uint32, err error) {
	if len(kwargs) != 0 {
		err = starlark.UnpackArgs(b.Name(), nil, kwargs)
		return
	}

	for _, arg := range args {
		var num uint32
		num, err = uint32Of(b, "number", arg)
		if err != nil {
			return
		}
		nums = append(nums, num)
	}

	return
}

func valueText(v starlark.Value) string {
	if v == nil {
		return "None"
	}
	return v.String()
}

func isNone(v starlark.Value) bool {
	return v == nil || v == starlark.None
}

func (s *Session) poke(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	if len(args) == 0 || len(kwargs) != 0 {
		err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2)
		return
	}

	addr, err := uint32Of(b, "addr", args[0])
	if err != nil {
		return
	}

	values := make([]uint8, 0, len(args)-1)
	for _, arg := range args[1:] {
		var value uint32
		value, err = uint32Of(b, "value", arg)
		if err == nil && value > math.MaxUint8 {
			err = &ErrArgument{Builtin: b.Name(), Name: "value", Value: arg.String()}
		}
		if err != nil {
			return
		}
		values = append(values, uint8(value))
	}

	err = s.Machine.Poke(addr, values...)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.None
	return
}

func (s *Session) peek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var addrArg starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &addrArg)
	if err != nil {
		return
	}

	addr, err := uint32Of(b, "addr", addrArg)
	if err != nil {
		return
	}

	value, err := s.Machine.Peek(addr)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.MakeInt(int(value))
	return
}

func (s *Session) pc(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var valueArg starlark.Value
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &valueArg)
	if err != nil {
		return
	}

	if !isNone(valueArg) {
		var value uint32
		value, err = uint32Of(b, "value", valueArg)
		if err != nil {
			return
		}
		s.Machine.PC = value
	}

	result = starlark.MakeUint64(uint64(s.Machine.PC))
	return
}

// reg reads a register, or defines and sets it when given a value.
func (s *Session) reg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var name string
	var valueArg starlark.Value
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value?", &valueArg)
	if err != nil {
		return
	}

	if !isNone(valueArg) {
		var value uint32
		value, err = uint32Of(b, "value", valueArg)
		if err != nil {
			return
		}
		s.Machine.DefineRegister(name, value)
	}

	value, ok := s.Machine.Register(name)
	if !ok {
		err = &ErrResult{Builtin: b.Name(), Err: breakpoint.ErrRegisterUnknown(name)}
		return
	}

	result = starlark.MakeUint64(uint64(value))
	return
}

func (s *Session) regs(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return
	}

	dict := starlark.NewDict(len(s.Machine.RegisterNames()))
	for _, name := range s.Machine.RegisterNames() {
		value, _ := s.Machine.Register(name)
		dict.SetKey(starlark.String(name), starlark.MakeUint64(uint64(value)))
	}

	result = dict
	return
}

func (s *Session) bankMap(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var baseArg, sizeArg starlark.Value
	var count int
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "base", &baseArg, "size", &sizeArg, "count", &count)
	if err != nil {
		return
	}

	base, err := uint32Of(b, "base", baseArg)
	if err != nil {
		return
	}
	size, err := uint32Of(b, "size", sizeArg)
	if err != nil {
		return
	}
	if count < 1 {
		err = &ErrArgument{Builtin: b.Name(), Name: "count", Value: starlark.MakeInt(count).String()}
		return
	}

	err = s.Machine.MapBanks(base, size, count)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.None
	return
}

func (s *Session) bankSelect(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var bank int
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &bank)
	if err != nil {
		return
	}

	err = s.Machine.SelectBank(bank)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.None
	return
}

// opcode defines an instruction of the machine.
func (s *Session) opcode(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var op int
	var name string
	var length int
	var jump bool
	var prefixArg starlark.Value
	err = starlark.UnpackArgs(b.Name(), args, kwargs,
		"op", &op, "name", &name, "length", &length,
		"jump?", &jump, "prefix?", &prefixArg)
	if err != nil {
		return
	}

	if op < 0 || op > math.MaxUint8 {
		err = &ErrArgument{Builtin: b.Name(), Name: "op", Value: starlark.MakeInt(op).String()}
		return
	}
	if length < 1 {
		err = &ErrArgument{Builtin: b.Name(), Name: "length", Value: starlark.MakeInt(length).String()}
		return
	}

	ins := machine.Instruction{Name: name, Length: length, Jump: jump}
	if isNone(prefixArg) {
		s.Machine.ISA.Add(uint8(op), ins)
	} else {
		var prefix uint32
		prefix, err = uint32Of(b, "prefix", prefixArg)
		if err == nil && prefix > math.MaxUint8 {
			err = &ErrArgument{Builtin: b.Name(), Name: "prefix", Value: prefixArg.String()}
		}
		if err != nil {
			return
		}
		s.Machine.ISA.AddExtended(uint8(prefix), uint8(op), ins)
	}

	result = starlark.None
	return
}

func (s *Session) breakAt(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var addrArg, bankArg starlark.Value
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addrArg, "bank?", &bankArg)
	if err != nil {
		return
	}

	addr, err := uint32Of(b, "addr", addrArg)
	if err != nil {
		return
	}
	bank, err := bankOf(b, bankArg)
	if err != nil {
		return
	}

	result = starlark.MakeUint64(uint64(s.Engine.SetBreakpoint(addr, bank)))
	return
}

// watch returns the builtin setting a memory watchpoint of a kind.
func (s *Session) watch(kind breakpoint.Kind) builtinFunc {
	set := map[breakpoint.Kind]func(uint32, breakpoint.Bank) uint32{
		breakpoint.WATCHPOINT:      s.Engine.SetWatchpoint,
		breakpoint.READ_WATCHPOINT: s.Engine.SetReadWatchpoint,
		breakpoint.ANY_WATCHPOINT:  s.Engine.SetAnyWatchpoint,
	}[kind]

	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
		var addrArg, bankArg starlark.Value
		err = starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addrArg, "bank?", &bankArg)
		if err != nil {
			return
		}

		addr, err := uint32Of(b, "addr", addrArg)
		if err != nil {
			return
		}
		bank, err := bankOf(b, bankArg)
		if err != nil {
			return
		}

		result = starlark.MakeUint64(uint64(set(addr, bank)))
		return
	}
}

func (s *Session) watchReg(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var name string
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name)
	if err != nil {
		return
	}

	num, err := s.Engine.SetRegisterWatchpoint(name)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.MakeUint64(uint64(num))
	return
}

func (s *Session) cond(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var numArg starlark.Value
	var text string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "num", &numArg, "text?", &text)
	if err != nil {
		return
	}

	num, err := uint32Of(b, "num", numArg)
	if err != nil {
		return
	}

	err = s.Engine.SetCondition(num, text)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.None
	return
}

func (s *Session) dispose(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var numArg starlark.Value
	var name string
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "num", &numArg, "disp", &name)
	if err != nil {
		return
	}

	num, err := uint32Of(b, "num", numArg)
	if err != nil {
		return
	}

	disp, err := dispositionOf(name)
	if err == nil {
		err = s.Engine.SetDisposition(num, disp)
	}
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.None
	return
}

// dispositionOf looks up a disposition by its short name.
func dispositionOf(name string) (disp breakpoint.Disposition, err error) {
	for _, disp = range []breakpoint.Disposition{breakpoint.DISP_KEEP, breakpoint.DISP_DELETE, breakpoint.DISP_DISABLE} {
		if disp.String() == name {
			return
		}
	}

	err = ErrDisposition(name)
	return
}

func (s *Session) enable(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	nums, err := numbers(b, args, kwargs)
	if err != nil {
		return
	}

	result = starlark.Bool(s.Engine.EnableBreakpoints(nums...))
	return
}

func (s *Session) disable(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	nums, err := numbers(b, args, kwargs)
	if err != nil {
		return
	}

	result = starlark.Bool(s.Engine.DisableBreakpoints(nums...))
	return
}

func (s *Session) delete(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	nums, err := numbers(b, args, kwargs)
	if err != nil {
		return
	}

	result = starlark.MakeInt(s.Engine.DeleteBreakpoints(nums...))
	return
}

func (s *Session) info(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	nums, err := numbers(b, args, kwargs)
	if err != nil {
		return
	}

	list := []starlark.Value{}
	for _, info := range s.Engine.BreakpointInfo(nums...) {
		list = append(list, infoDict(info))
	}

	result = starlark.NewList(list)
	return
}

func (s *Session) lastHit(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return
	}

	result = infoDict(s.Engine.LastHit())
	return
}

// run continues until the engine stops execution.
func (s *Session) run(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	skip := 0
	limit := RUN_LIMIT
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "skip?", &skip, "limit?", &limit)
	if err != nil {
		return
	}

	s.Engine.Run(skip)
	result = s.execute(limit)
	return
}

// step runs count instructions.
func (s *Session) step(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	count := 1
	limit := RUN_LIMIT
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "count?", &count, "limit?", &limit)
	if err != nil {
		return
	}

	s.Engine.RunInstructions(count)
	result = s.execute(limit)
	return
}

// finish runs up to the next jump instruction.
func (s *Session) finish(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	limit := RUN_LIMIT
	err = starlark.UnpackArgs(b.Name(), args, kwargs, "limit?", &limit)
	if err != nil {
		return
	}

	s.Engine.RunTillJump()
	result = s.execute(limit)
	return
}

func (s *Session) execute(limit int) starlark.Value {
	stop, hit, steps := s.Machine.Run(s.Engine, limit)
	return s.stopDict(stop, hit, steps)
}

// poll makes one stop decision at the current instruction boundary.
func (s *Session) poll(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0)
	if err != nil {
		return
	}

	stop, hit := s.Engine.Poll()
	result = s.stopDict(stop, hit, 0)
	return
}

// eval evaluates an expression against the machine, and renders the result.
func (s *Session) eval(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (result starlark.Value, err error) {
	var text string
	err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text)
	if err != nil {
		return
	}

	tree, err := expr.Compile(text)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	value, err := expr.NewInterpreter(s.Machine).String(tree)
	if err != nil {
		err = &ErrResult{Builtin: b.Name(), Err: err}
		return
	}

	result = starlark.String(value)
	return
}

func (s *Session) stopDict(stop bool, hit breakpoint.Info, steps int) *starlark.Dict {
	dict := starlark.NewDict(4)
	dict.SetKey(starlark.String("stop"), starlark.Bool(stop))
	dict.SetKey(starlark.String("steps"), starlark.MakeInt(steps))
	dict.SetKey(starlark.String("pc"), starlark.MakeUint64(uint64(s.Machine.PC)))
	dict.SetKey(starlark.String("hit"), infoDict(hit))
	return dict
}

// infoDict converts a breakpoint record. The record of no hit is None.
func infoDict(info breakpoint.Info) starlark.Value {
	if !info.Hit() {
		return starlark.None
	}

	var condition, conditionErr starlark.Value = starlark.None, starlark.None
	if info.Condition != nil {
		condition = starlark.String(info.Condition.String())
	}
	if info.ConditionErr != nil {
		conditionErr = starlark.String(info.ConditionErr.Error())
	}

	items := []struct {
		key   string
		value starlark.Value
	}{
		{"number", starlark.MakeUint64(uint64(info.Number))},
		{"kind", starlark.String(info.Kind.String())},
		{"address", starlark.MakeUint64(uint64(info.Address))},
		{"bank", starlark.MakeInt(int(info.Bank))},
		{"register", starlark.String(info.Register)},
		{"disp", starlark.String(info.Disposition.String())},
		{"enabled", starlark.Bool(info.Enabled)},
		{"hits", starlark.MakeInt(info.TimesHit)},
		{"old_value", starlark.MakeUint64(uint64(info.OldValue))},
		{"value", starlark.MakeUint64(uint64(info.Value))},
		{"condition", condition},
		{"condition_error", conditionErr},
		{"text", starlark.String(info.String())},
	}

	dict := starlark.NewDict(len(items))
	for _, item := range items {
		dict.SetKey(starlark.String(item.key), item.value)
	}

	return dict
}
