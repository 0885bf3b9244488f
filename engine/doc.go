// Package engine is the request boundary of the evaluator: named matrices
// in, one tagged result out.
//
// A Request carries matrix operands as grids of cell strings plus one
// expression string. Every cell is parsed through the same tokenizer/parser
// as the expression (restricted to a single scalar expression, no function
// calls) before evaluation. The Result is either
//
//	{kind: "scalar", value: "<canonical text>"}
//	{kind: "matrix", value: [["...", ...], ...]}
//
// Cell policy (explicit, not implicit): an empty or blank cell string means
// "0" — half-filled input grids evaluate with zero holes, matching the
// original editable grid. A non-empty cell that does not parse is a hard
// error naming the matrix and the cell position.
//
// Matrix names are case-sensitive ASCII-letter identifiers, unique within a
// request, and may not collide (case-insensitively) with the reserved
// keywords T, INV, DET, TRACE, RANK, RREF.
//
// Every failure maps onto one stable code via Code: LexError, ParseError,
// UnknownVariable, DimensionMismatch, NotSquare, SingularMatrix,
// DivisionByZero, UnsupportedOperation, ResourceLimitExceeded, or
// InvalidRequest for malformed request envelopes. Callers render the error
// message; the code is the machine-readable kind.
//
// The engine holds no state between requests: operands live for one call,
// the AST is discarded after its single evaluation, and concurrent calls
// share nothing.
package engine
