package expr

import (
	"strings"
)

// Sprint renders an expression tree in a fully parenthesized prefix form,
// for example '*0x100 == 5' prints as '(== (* 256) 5)'. The output depends
// only on the tree, which makes it suitable for parser regression tests.
func Sprint(expr Expr) string {
	sb := &strings.Builder{}
	sprint(sb, expr)
	return sb.String()
}

func sprint(sb *strings.Builder, expr Expr) {
	switch expr := expr.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Literal:
		sb.WriteString(expr.Value.String())
	case *Variable:
		sb.WriteString(expr.Name.Lexeme)
	case *Grouping:
		parenthesize(sb, "group", expr.Expr)
	case *Unary:
		parenthesize(sb, expr.Op.Lexeme, expr.Right)
	case *Binary:
		parenthesize(sb, expr.Op.Lexeme, expr.Left, expr.Right)
	case *Logical:
		parenthesize(sb, expr.Op.Lexeme, expr.Left, expr.Right)
	case *Ternary:
		parenthesize(sb, "?:", expr.Cond, expr.Then, expr.Else)
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		sprint(sb, expr)
	}
	sb.WriteByte(')')
}
