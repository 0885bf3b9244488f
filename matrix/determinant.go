package matrix

import (
	"fmt"

	"github.com/symatlab/symat/expr"
)

// Determinant computes det(m) by Bareiss fraction-free elimination.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Eliminate): for each column pick a non-zero pivot (numeric
//	        preferred), swap it in tracking the sign, then apply the Bareiss
//	        update a[i][j] = (a[i][j]·a[k][k] - a[i][k]·a[k][j]) / prev.
//	        Every division is exact over the polynomial entries.
//	Stage 3 (Finalize): the last diagonal entry, sign-adjusted, is det(m).
//
// An all-zero pivot column short-circuits to the exact zero determinant.
// Complexity: O(n³) cell operations.
func Determinant(m *Matrix) (expr.Expr, error) {
	// Stage 1: shape check
	if !m.IsSquare() {
		return expr.Expr{}, fmt.Errorf("Determinant: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	n := m.rows
	if n == 1 {
		return m.at(0, 0), nil
	}

	// Stage 2: fraction-free elimination on a working copy
	a := m.grid()
	prev := expr.One()
	negated := false
	for k := 0; k < n-1; k++ {
		p := pivotRow(a, k, k)
		if p < 0 {
			return expr.Zero(), nil
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			negated = !negated
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := expr.Sub(expr.Mul(a[i][j], a[k][k]), expr.Mul(a[i][k], a[k][j]))
				v, err := expr.Div(num, prev)
				if err != nil {
					return expr.Expr{}, fmt.Errorf("Determinant: %w", err)
				}
				a[i][j] = v
			}
			a[i][k] = expr.Zero()
		}
		prev = a[k][k]
	}

	// Stage 3: sign-adjusted last pivot
	det := a[n-1][n-1]
	if negated {
		det = expr.Neg(det)
	}

	return det, nil
}
