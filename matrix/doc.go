// Package matrix implements exact operations over matrices of symbolic
// expressions.
//
// What:
//
//   - Matrix — an immutable rows×cols grid of expr.Expr cells, row-major.
//   - Element-wise algebra: Add, Sub, Scale, Neg; matrix product Mul.
//   - Transpose and Trace.
//   - Determinant — Bareiss fraction-free elimination; every division is
//     exact, entries stay polynomial when the input is polynomial.
//   - Inverse — exact symbolic determinant check (SingularMatrix when it
//     simplifies to zero) followed by Gauss–Jordan on the augmented [M|I].
//   - Rank and RREF — one shared exact elimination routine, parameterized
//     "stop at echelon" vs "continue to reduced echelon"; pivot selection
//     prefers purely numeric entries to keep fractions small.
//
// All arithmetic is exact: rational coefficients stay rational, symbols stay
// symbolic. There is no floating-point fallback anywhere.
//
// Complexity:
//
//   - Add/Sub/Scale/Neg/Transpose: O(r·c) cell operations.
//   - Mul: O(r·k·c) cell products.
//   - Determinant/Inverse/Rank/RREF: O(n³) cell operations (cell cost grows
//     with symbolic term counts).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols not positive.
//   - ErrCellCount: cell slice length differs from rows*cols.
//   - ErrIndexOutOfBounds: At with indices outside the matrix.
//   - ErrDimensionMismatch: shape-incompatible operand pair.
//   - ErrNotSquare: Determinant/Inverse/Trace on a non-square matrix.
//   - ErrSingular: Inverse of a matrix whose determinant is exact zero.
package matrix
