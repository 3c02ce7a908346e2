// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script runs starlark debugging scenarios against a machine and
// its breakpoint engine.
package script

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/retrodbg/breakpoint"
	"github.com/ezrec/retrodbg/machine"
)

// RUN_LIMIT is the default number of instructions run, step and finish
// execute before giving up.
const RUN_LIMIT = 100000

// Session is a machine, its breakpoint engine, and the output of the
// scripts run against them.
type Session struct {
	Verbose bool // If set, enables verbose logging.

	Machine *machine.Machine
	Engine  *breakpoint.Engine
	Output  io.Writer
}

// NewSession attaches a new engine to a machine. A nil machine creates one
// with machine.MEMORY_SIZE bytes of memory.
func NewSession(m *machine.Machine, out io.Writer) (s *Session) {
	if m == nil {
		m = machine.NewMachine(machine.MEMORY_SIZE)
	}
	if out == nil {
		out = io.Discard
	}

	eng := breakpoint.NewEngine(m)
	eng.Jumps = m.ISA
	m.Hooks = eng

	s = &Session{
		Machine: m,
		Engine:  eng,
		Output:  out,
	}

	return
}

// Exec runs a starlark program in the session. print() writes to the
// session output.
func (s *Session) Exec(name string, src string) (err error) {
	s.Engine.Verbose = s.Verbose
	s.Machine.Verbose = s.Verbose

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(s.Output, msg)
		},
	}
	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	if s.Verbose {
		log.Printf("script: exec %v", name)
	}

	_, err = starlark.ExecFileOptions(&opts, thread, name, src, s.builtins())
	return
}

// Run executes a starlark program against a new machine.
func Run(name string, src string, out io.Writer) (err error) {
	return NewSession(nil, out).Exec(name, src)
}
