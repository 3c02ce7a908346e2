// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/retrodbg/expr"
	"github.com/ezrec/retrodbg/machine"
	"github.com/ezrec/retrodbg/script"
	"github.com/ezrec/retrodbg/translate"
)

var f = translate.From

// registerList collects repeated -r name=value flags.
type registerList map[string]uint32

func (rl registerList) String() string {
	list := make([]string, 0, len(rl))
	for _, name := range slices.Sorted(maps.Keys(rl)) {
		list = append(list, fmt.Sprintf("%v=0x%x", name, rl[name]))
	}
	return strings.Join(list, ",")
}

func (rl registerList) Set(text string) (err error) {
	name, valueText, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	if !ok || len(name) == 0 {
		err = errors.New(f("register '%v' is not name=value", text))
		return
	}

	value, err := strconv.ParseUint(strings.TrimSpace(valueText), 0, 32)
	if err != nil {
		return
	}

	rl[name] = uint32(value)
	return
}

// Define defines the registers on a machine, in name order.
func (rl registerList) Define(m *machine.Machine) {
	for _, name := range slices.Sorted(maps.Keys(rl)) {
		m.DefineRegister(name, rl[name])
	}
}

func main() {
	var evaluate string
	var printTree bool
	var memory string
	var scenario string
	var verbose bool
	registers := registerList{}

	flag.StringVar(&evaluate, "e", "", "Expression to evaluate")
	flag.BoolVar(&printTree, "p", false, "Print the parse tree instead of evaluating")
	flag.StringVar(&memory, "m", "", "Memory image to load at address 0")
	flag.Var(registers, "r", "Register name=value (repeatable)")
	flag.StringVar(&scenario, "s", "", ".star scenario script to run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	m := machine.NewMachine(machine.MEMORY_SIZE)
	m.Verbose = verbose

	if len(memory) != 0 {
		image, err := os.ReadFile(memory)
		if err != nil {
			log.Fatalf("%v: %v", memory, err)
		}
		err = m.Load(0, image)
		if err != nil {
			log.Fatalf("%v: %v", memory, err)
		}
	}

	registers.Define(m)

	switch {
	case len(scenario) != 0:
		src, err := os.ReadFile(scenario)
		if err != nil {
			log.Fatalf("%v: %v", scenario, err)
		}
		s := script.NewSession(m, os.Stdout)
		s.Verbose = verbose
		err = s.Exec(scenario, string(src))
		if err != nil {
			log.Fatalf("%v: %v", scenario, err)
		}
	case len(evaluate) != 0:
		text, err := evalLine(m, evaluate, printTree)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Println(text)
	default:
		err := console(m, printTree)
		if err != nil {
			log.Fatal(err)
		}
	}
}

// evalLine compiles an expression, and either renders its tree or
// evaluates it against the machine.
func evalLine(state expr.State, line string, printTree bool) (text string, err error) {
	tree, err := expr.Compile(line)
	if err != nil {
		return
	}

	if printTree {
		text = expr.Sprint(tree)
		return
	}

	text, err = expr.NewInterpreter(state).String(tree)
	return
}
