package expr

// Expr is a node of an immutable expression tree.
//
// The concrete types are *Literal, *Variable, *Grouping, *Unary, *Binary,
// *Logical and *Ternary.
type Expr interface {
	isExpr()
}

// Literal is a constant value.
type Literal struct {
	Value Value
}

// Variable is a register name, resolved at evaluation time.
type Variable struct {
	Name Token
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expr Expr
}

// Unary is a prefix operator: '!', '-' or '*' (memory dereference).
type Unary struct {
	Op    Token
	Right Expr
}

// Binary is an arithmetic, bitwise, comparison, equality or ',' operator.
type Binary struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Logical is a short-circuit '&&' or '||'.
type Logical struct {
	Left  Expr
	Op    Token
	Right Expr
}

// Ternary is 'Cond ? Then : Else'. Only one branch is ever evaluated.
type Ternary struct {
	Cond Expr
	Op   Token
	Then Expr
	Else Expr
}

func (*Literal) isExpr()  {}
func (*Variable) isExpr() {}
func (*Grouping) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}
func (*Logical) isExpr()  {}
func (*Ternary) isExpr()  {}
