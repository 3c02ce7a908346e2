// Package breakpoint implements the breakpoint and watchpoint engine of the
// debugger.
//
// An Engine owns every breakpoint record, numbered from 1 in creation
// order. The host polls the engine once per instruction boundary with Poll,
// or with CheckBreakpoints followed by HandleBreakInfo, and stops the
// emulated CPU when told to. Memory watchpoints are armed by the host calling
// WriteMemoryHook and ReadMemoryHook right after each memory access.
//
// Any record may carry a Condition, an expression of package expr evaluated
// against the host's state whenever the record matches. A condition that
// fails to evaluate counts as not satisfied: the record does not fire, and
// the error is kept on the record and logged.
package breakpoint
