// Package symat is an exact symbolic matrix-algebra engine: define named
// matrices whose cells hold integers, rationals or symbols, evaluate a
// free-form expression over them — (2/3)*A*B + T(A) - INV(B) — and get back
// an exact, simplified scalar or matrix. No floating point anywhere.
//
// What symat brings together:
//
//   - expr/   — the symbolic scalar kernel: immutable expressions kept in a
//     canonical polynomial-quotient form over big.Rat, simplified
//     on construction (a + a ⇒ 2*a, det/det ⇒ 1).
//   - parse/  — tokenizer and operator-precedence parser with implicit
//     multiplication (2A, 2(A+B)) and the six named operators
//     T, INV, DET, TRACE, RANK, RREF resolved at parse time.
//   - matrix/ — exact operations over symbolic matrices: transpose, trace,
//     product, Bareiss determinant, Gauss–Jordan inverse, and one
//     shared exact elimination behind RANK and RREF.
//   - eval/   — the AST evaluator with dimension checking and configurable
//     resource limits.
//   - engine/ — the request boundary: matrices-in, tagged scalar/matrix
//     result out, every failure mapped to a stable error code.
//
// Why symat?
//
//   - Exact by construction — rationals stay rationals, symbols stay symbols
//   - Stateless — every evaluation is an independent, lock-free pass
//   - Predictable failures — one sentinel error per way to go wrong
//
// Quick taste:
//
//	A = [[a, 0],
//	     [0, a]]
//
//	DET(A) ⇒ a^2        INV(A) ⇒ [[1/a, 0], [0, 1/a]]
//
// See engine for the JSON boundary and cmd/symat for the CLI.
package symat
