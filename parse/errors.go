package parse

import "errors"

var (
	// ErrLex indicates a character outside the expression alphabet.
	ErrLex = errors.New("parse: unrecognized character")
	// ErrNumberFormat indicates a number literal with more than one decimal point.
	ErrNumberFormat = errors.New("parse: malformed number literal")
	// ErrSyntax indicates malformed grammar: unbalanced parentheses,
	// a missing operand, or trailing tokens after a complete expression.
	ErrSyntax = errors.New("parse: syntax error")
	// ErrUnknownFunction indicates an identifier used as a function call
	// that is not one of T, INV, DET, TRACE, RANK, RREF.
	ErrUnknownFunction = errors.New("parse: unknown function")
	// ErrCellFunction indicates a function call inside a matrix cell,
	// where only plain scalar expressions are allowed.
	ErrCellFunction = errors.New("parse: function calls are not allowed in matrix cells")
	// ErrNestingDepth indicates expression nesting beyond the parser's
	// bound; the input is rejected instead of exhausting the stack.
	ErrNestingDepth = errors.New("parse: expression nesting too deep")
)
