// Package expr implements the exact symbolic scalar kernel: immutable
// algebraic expressions over integers, rationals and named symbols, kept in
// canonical form so that algebraically equal expressions are structurally
// equal.
//
// What:
//
//   - Expr — an immutable expression value; arithmetic returns new values.
//   - Constructors Int, Rat, FromRat, ParseNumber, Symbol, Zero, One.
//   - Arithmetic Add, Sub, Mul, Neg (total) and Div, Pow (may fail).
//   - Structural predicates IsZero, IsOne, IsNumeric, AsRat, AsInt, Equal.
//
// How:
//
// Every Expr is held as a quotient num/den of two multivariate polynomials
// with big.Rat coefficients. All simplification happens inside construction,
// never as a separate pass: like monomials are combined, numeric subtrees
// folded, rational coefficients reduced, common monomial factors of num and
// den stripped, den is divided out entirely whenever it divides num exactly
// (multivariate polynomial division), and any remaining quotient is reduced
// by the polynomial GCD of num and den (primitive Euclidean remainder
// sequence). Terms are ordered graded-lex and den is monic, so a given
// algebraic value has exactly one representation and Equal is a deep
// structural comparison.
//
// Exponents are integers: the kernel works in the field of rational
// functions, which is what keeps Gaussian elimination, Bareiss determinants
// and inverse computation exact with no floating fallback.
//
// Complexity: Add/Mul are O(n·m) in term counts (plus normalization);
// Div adds one polynomial division attempt. Space is proportional to the
// resulting term count.
//
// Errors:
//
//   - ErrDivisionByZero — Div or negative Pow of an expression that
//     simplifies to exact zero.
package expr
