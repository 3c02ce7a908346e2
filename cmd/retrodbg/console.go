package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/retrodbg/expr"
)

const PROMPT = "cond> "

// console reads expressions, one per line, until end of input. A terminal
// gets a line editor, anything else is read plainly.
func console(state expr.State, printTree bool) (err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		err = readLines(os.Stdin, os.Stdout, state, printTree)
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, oldState)

	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	tty := term.NewTerminal(rw, PROMPT)

	for {
		var line string
		line, err = tty.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			fmt.Fprint(tty, "\r\n")
			return
		}
		if err != nil {
			return
		}

		respond(tty, state, line, printTree)
	}
}

// readLines evaluates each line of a plain input.
func readLines(in io.Reader, out io.Writer, state expr.State, printTree bool) (err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		respond(out, state, scanner.Text(), printTree)
	}

	err = scanner.Err()
	return
}

// respond writes the result of one line. Blank lines are ignored.
func respond(out io.Writer, state expr.State, line string, printTree bool) {
	if len(strings.TrimSpace(line)) == 0 {
		return
	}

	text, err := evalLine(state, line, printTree)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}

	fmt.Fprintln(out, text)
}
