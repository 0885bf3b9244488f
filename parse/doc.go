// Package parse turns matrix-algebra expression text into an AST.
//
// What:
//
//   - Tokenize — text into NUMBER/IDENT/operator tokens with positions.
//   - ParseExpression — full grammar: + - * / ^, parentheses, implicit
//     multiplication (2A, 2(A+B), (A)(B)), unary minus, and the six named
//     operators T, INV, DET, TRACE, RANK, RREF (matched case-insensitively
//     and resolved into the closed Func enum at parse time).
//   - ParseCell — the restricted grammar for a single matrix cell: same
//     arithmetic, no function calls; an identifier followed by '(' is
//     implicit multiplication there.
//
// Grammar (precedence low → high):
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor | factor)*   // adjacency = '*'
//	factor := '-' factor | power
//	power  := atom ('^' atom)?
//	atom   := NUMBER | IDENT | FUNC '(' expr ')' | '(' expr ')'
//
// In expression mode an IDENT directly followed by '(' must be one of the
// six reserved names; anything else is ErrUnknownFunction.
//
// Errors:
//
//   - ErrLex — unrecognized character.
//   - ErrNumberFormat — number literal with more than one decimal point.
//   - ErrSyntax — unbalanced parentheses, missing operand, trailing tokens.
//   - ErrUnknownFunction — non-reserved identifier used as a call.
//   - ErrCellFunction — function call inside a matrix cell.
//   - ErrNestingDepth — parentheses or unary-minus chains nested deeper
//     than MaxNestingDepth; the parser rejects the input rather than
//     recursing without bound.
//
// The AST is a strict tree, built once and never mutated; evaluation
// discards it afterwards.
package parse
