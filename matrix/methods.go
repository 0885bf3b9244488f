package matrix

import (
	"fmt"

	"github.com/symatlab/symat/expr"
)

// Add returns a+b. Shapes must match exactly; returns ErrDimensionMismatch
// otherwise. Complexity: O(r·c).
func Add(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("Add: %dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	cells := make([]expr.Expr, len(a.cells))
	for i := range cells {
		cells[i] = expr.Add(a.cells[i], b.cells[i])
	}

	return &Matrix{rows: a.rows, cols: a.cols, cells: cells}, nil
}

// Sub returns a-b under the same shape rule as Add.
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("Sub: %dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	cells := make([]expr.Expr, len(a.cells))
	for i := range cells {
		cells[i] = expr.Sub(a.cells[i], b.cells[i])
	}

	return &Matrix{rows: a.rows, cols: a.cols, cells: cells}, nil
}

// Mul returns the matrix product a·b; requires a.Cols() == b.Rows() and
// fails with ErrDimensionMismatch otherwise. Each result entry is the
// symbolic dot product, already simplified by construction.
// Complexity: O(r·k·c) cell products.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	cells := make([]expr.Expr, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := expr.Zero()
			for k := 0; k < a.cols; k++ {
				sum = expr.Add(sum, expr.Mul(a.at(i, k), b.at(k, j)))
			}
			cells[i*b.cols+j] = sum
		}
	}

	return &Matrix{rows: a.rows, cols: b.cols, cells: cells}, nil
}

// Scale returns the element-wise product s·m.
func (m *Matrix) Scale(s expr.Expr) *Matrix {
	cells := make([]expr.Expr, len(m.cells))
	for i := range cells {
		cells[i] = expr.Mul(s, m.cells[i])
	}

	return &Matrix{rows: m.rows, cols: m.cols, cells: cells}
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	cells := make([]expr.Expr, len(m.cells))
	for i := range cells {
		cells[i] = expr.Neg(m.cells[i])
	}

	return &Matrix{rows: m.rows, cols: m.cols, cells: cells}
}

// Transpose returns the c×r matrix with indices swapped. Complexity: O(r·c).
func (m *Matrix) Transpose() *Matrix {
	cells := make([]expr.Expr, len(m.cells))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cells[j*m.rows+i] = m.at(i, j)
		}
	}

	return &Matrix{rows: m.cols, cols: m.rows, cells: cells}
}

// Trace returns the sum of the diagonal; requires a square matrix.
func (m *Matrix) Trace() (expr.Expr, error) {
	if !m.IsSquare() {
		return expr.Expr{}, fmt.Errorf("Trace: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	sum := expr.Zero()
	for i := 0; i < m.rows; i++ {
		sum = expr.Add(sum, m.at(i, i))
	}

	return sum, nil
}
