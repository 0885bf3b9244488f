package parse

import (
	"math/big"
	"strings"
)

// Op enumerates the binary operators.
type Op int

const (
	// OpAdd is '+'.
	OpAdd Op = iota
	// OpSub is '-'.
	OpSub
	// OpMul is '*' (explicit or implicit).
	OpMul
	// OpDiv is '/'.
	OpDiv
	// OpPow is '^'.
	OpPow
)

// String returns the operator's surface syntax.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "?"
	}
}

// Func enumerates the named matrix operators. Resolved once at parse time so
// the evaluator dispatches on a closed enum, never on strings.
type Func int

const (
	// FuncTranspose is T(x).
	FuncTranspose Func = iota
	// FuncInverse is INV(x).
	FuncInverse
	// FuncDeterminant is DET(x).
	FuncDeterminant
	// FuncTrace is TRACE(x).
	FuncTrace
	// FuncRank is RANK(x).
	FuncRank
	// FuncRREF is RREF(x).
	FuncRREF
)

// String returns the canonical keyword.
func (f Func) String() string {
	switch f {
	case FuncTranspose:
		return "T"
	case FuncInverse:
		return "INV"
	case FuncDeterminant:
		return "DET"
	case FuncTrace:
		return "TRACE"
	case FuncRank:
		return "RANK"
	case FuncRREF:
		return "RREF"
	default:
		return "?"
	}
}

// FuncByName resolves a keyword case-insensitively.
func FuncByName(name string) (Func, bool) {
	switch strings.ToUpper(name) {
	case "T":
		return FuncTranspose, true
	case "INV":
		return FuncInverse, true
	case "DET":
		return FuncDeterminant, true
	case "TRACE":
		return FuncTrace, true
	case "RANK":
		return FuncRank, true
	case "RREF":
		return FuncRREF, true
	default:
		return 0, false
	}
}

// Node is one vertex of the AST: built once, evaluated once, strictly a tree.
type Node interface {
	// Pos returns the byte offset of the node's first token in the source.
	Pos() int
}

// Number is an exact numeric literal; decimal text is already converted to a
// rational, so 1.5 carries 3/2.
type Number struct {
	ValuePos int
	Value    *big.Rat
}

// Pos implements Node.
func (n *Number) Pos() int { return n.ValuePos }

// Variable references a named matrix (expression mode) or a free symbol
// (cell mode).
type Variable struct {
	NamePos int
	Name    string
}

// Pos implements Node.
func (v *Variable) Pos() int { return v.NamePos }

// Binary applies Op to two operands.
type Binary struct {
	OpPos       int
	Op          Op
	Left, Right Node
}

// Pos implements Node.
func (b *Binary) Pos() int { return b.OpPos }

// Negate is unary minus.
type Negate struct {
	MinusPos int
	X        Node
}

// Pos implements Node.
func (n *Negate) Pos() int { return n.MinusPos }

// Call applies one of the named matrix operators to its argument.
type Call struct {
	NamePos int
	Fn      Func
	Arg     Node
}

// Pos implements Node.
func (c *Call) Pos() int { return c.NamePos }
