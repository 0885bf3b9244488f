package matrix

import (
	"fmt"

	"github.com/symatlab/symat/expr"
)

// pivotRow selects the pivot row for column col among rows from..len(a)-1:
// the first purely numeric non-zero entry when one exists, otherwise the
// first non-zero entry scanning top to bottom. Returns -1 when the column
// is exactly zero below from. The numeric preference keeps fractions small;
// it never changes the result.
func pivotRow(a [][]expr.Expr, from, col int) int {
	first := -1
	for i := from; i < len(a); i++ {
		if a[i][col].IsZero() {
			continue
		}
		if a[i][col].IsNumeric() {
			return i
		}
		if first < 0 {
			first = i
		}
	}

	return first
}

// eliminate runs exact Gauss–Jordan elimination on a working grid.
// With reduce=false it stops at row-echelon form (enough to count pivots);
// with reduce=true it normalizes each pivot to 1 and clears the entries
// above as well, yielding the reduced row-echelon form. Returns the pivot
// count. Divisions are by chosen non-zero pivots only, so they cannot fail.
func eliminate(a [][]expr.Expr, reduce bool) (int, error) {
	rows := len(a)
	cols := len(a[0])
	pivots := 0
	r := 0
	for lead := 0; lead < cols && r < rows; lead++ {
		p := pivotRow(a, r, lead)
		if p < 0 {
			continue
		}
		a[p], a[r] = a[r], a[p]
		piv := a[r][lead]
		for j := lead; j < cols; j++ {
			v, err := expr.Div(a[r][j], piv)
			if err != nil {
				return 0, fmt.Errorf("eliminate: %w", err)
			}
			a[r][j] = v
		}
		for i := 0; i < rows; i++ {
			if i == r || !reduce && i < r {
				continue
			}
			f := a[i][lead]
			if f.IsZero() {
				continue
			}
			for j := lead; j < cols; j++ {
				a[i][j] = expr.Sub(a[i][j], expr.Mul(f, a[r][j]))
			}
		}
		pivots++
		r++
	}

	return pivots, nil
}

// Rank returns the number of non-zero rows after exact row reduction.
// Accepts any shape. Complexity: O(min(r,c)·r·c) cell operations.
func Rank(m *Matrix) (int, error) {
	a := m.grid()
	pivots, err := eliminate(a, false)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}

	return pivots, nil
}

// RREF returns the reduced row-echelon form, same shape as the input.
// Applying RREF to its own output is the identity transformation.
func RREF(m *Matrix) (*Matrix, error) {
	a := m.grid()
	if _, err := eliminate(a, true); err != nil {
		return nil, fmt.Errorf("RREF: %w", err)
	}

	return fromGrid(a), nil
}
