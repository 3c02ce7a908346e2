// Package expr implements the condition language used to gate breakpoints
// and watchpoints.
//
// A condition is a single-line expression such as
//
//	*0x100 == 5 && (RegisterA & 0x80) != 0
//
// Source text is turned into a token list by Scan, into an expression tree by
// Parse (or both at once by Compile), and evaluated against live emulator
// state by an Interpreter. The State interface is the only view the
// interpreter has of the host: memory reads, banked memory reads, bank
// mapping queries and the named register set.
//
// Operators, lowest to highest precedence:
//
//	,            sequence, value of the right operand
//	? :          ternary, only the selected branch is evaluated
//	||  &&       short-circuit logical
//	|  ^  &      bitwise, integer operands
//	==  !=       equality, never an error
//	<  <=  >  >= numeric comparison
//	+  -         sum, difference (+ concatenates strings)
//	*  /         product, quotient
//	!  -  *      not, negate, memory dereference
//
// A dereference of a bank:address pair, as in *(1:0x100), reads banked memory.
package expr
