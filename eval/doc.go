// Package eval walks a parsed expression tree and produces a symbolic
// Value: a Scalar or a Matrix.
//
// What:
//
//   - Value — the evaluator's universal runtime value. A 1×1 matrix is NOT
//     a scalar: classification for the caller happens once at the top
//     level, so intermediate 1×1 results still behave as matrices
//     (T(1x1) is legal and shape-preserving).
//   - Evaluate — binds matrix names to operands and dispatches arithmetic
//     per the operand kinds: scalar⊕scalar, matrix⊕matrix (same shape),
//     scalar×matrix scaling, matrix product, matrix/scalar division, and
//     the named operators T, INV, DET, TRACE, RANK, RREF resolved by the
//     parser into a closed enum.
//   - EvaluateCell — the restricted walk for matrix-cell expressions,
//     where identifiers are free symbols.
//
// Policy decisions (documented, not implicit):
//
//   - Mixed scalar+matrix addition or subtraction is a dimension error,
//     never an auto-broadcast.
//   - Matrix-by-matrix division is unsupported.
//   - '^' exponents must evaluate to integer constants; a square matrix
//     base is repeated multiplication (negative exponents invert first).
//
// Every evaluation is stateless and purely computational: no I/O, no shared
// state, nothing cached between calls, so concurrent evaluations need no
// coordination. Resource limits (maximum matrix dimension, expression
// depth, exponent magnitude) bound the work of a single pass and surface
// as ErrResourceLimit.
//
// Errors: ErrUnknownVariable, ErrUnsupported, ErrResourceLimit, plus
// matrix.ErrDimensionMismatch / ErrNotSquare / ErrSingular and
// expr.ErrDivisionByZero propagated from the operand packages.
package eval
