package breakpoint

import (
	"strings"

	"github.com/ezrec/retrodbg/expr"
)

// Condition is a compiled expression gating a breakpoint. It is immutable
// once compiled.
type Condition struct {
	text string
	tree expr.Expr
}

// NewCondition compiles condition source text.
func NewCondition(text string) (cond *Condition, err error) {
	text = strings.TrimSpace(text)

	tree, err := expr.Compile(text)
	if err != nil {
		return
	}

	cond = &Condition{text: text, tree: tree}
	return
}

// Evaluate reports whether the condition holds for the current host state.
func (cond *Condition) Evaluate(state expr.State) (ok bool, err error) {
	return expr.NewInterpreter(state).Boolean(cond.tree)
}

// String returns the condition source text.
func (cond *Condition) String() string {
	return cond.text
}

// Tree returns the parenthesized form of the compiled expression.
func (cond *Condition) Tree() string {
	return expr.Sprint(cond.tree)
}
