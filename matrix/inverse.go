package matrix

import (
	"fmt"

	"github.com/symatlab/symat/expr"
)

// Inverse computes the exact inverse of a square matrix.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Singularity): compute det(m) symbolically; a determinant that
//	        simplifies to exact zero is ErrSingular.
//	Stage 3 (Augment): build the n×2n working grid [M | I].
//	Stage 4 (Execute): reduce to [I | M⁻¹] with the shared exact
//	        Gauss–Jordan elimination.
//	Stage 5 (Finalize): extract the right block.
//
// Entries of the result are exact symbolic expressions (e.g. 1/a), never
// floating approximations. Complexity: O(n³) cell operations plus one
// determinant.
func Inverse(m *Matrix) (*Matrix, error) {
	// Stage 1: shape check
	if !m.IsSquare() {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	n := m.rows

	// Stage 2: exact singularity check
	det, err := Determinant(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}
	if det.IsZero() {
		return nil, fmt.Errorf("Inverse: determinant is zero: %w", ErrSingular)
	}

	// Stage 3: augmented grid [M | I]
	a := make([][]expr.Expr, n)
	for i := 0; i < n; i++ {
		row := make([]expr.Expr, 2*n)
		for j := 0; j < n; j++ {
			row[j] = m.at(i, j)
			row[n+j] = expr.Zero()
		}
		row[n+i] = expr.One()
		a[i] = row
	}

	// Stage 4: full reduction; det != 0 guarantees n pivots in the left block
	if _, err = eliminate(a, true); err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	// Stage 5: right block is the inverse
	cells := make([]expr.Expr, 0, n*n)
	for i := 0; i < n; i++ {
		cells = append(cells, a[i][n:]...)
	}

	return &Matrix{rows: n, cols: n, cells: cells}, nil
}
