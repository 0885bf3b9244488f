package matrix

import (
	"fmt"

	"github.com/symatlab/symat/expr"
)

// Matrix is an immutable rows×cols grid of symbolic cells, stored row-major.
// Operations return fresh matrices; a Matrix is safe to share.
type Matrix struct {
	rows, cols int
	cells      []expr.Expr
}

// New validates dimensions and builds a matrix from row-major cells.
// Returns ErrBadDimensions for non-positive dimensions and ErrCellCount when
// len(cells) != rows*cols. The slice is copied.
func New(rows, cols int, cells []expr.Expr) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New: %dx%d: %w", rows, cols, ErrBadDimensions)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("New: %d cells for %dx%d: %w", len(cells), rows, cols, ErrCellCount)
	}
	own := make([]expr.Expr, len(cells))
	copy(own, cells)

	return &Matrix{rows: rows, cols: cols, cells: own}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("Identity: %d: %w", n, ErrBadDimensions)
	}
	cells := make([]expr.Expr, n*n)
	for i := range cells {
		cells[i] = expr.Zero()
	}
	for i := 0; i < n; i++ {
		cells[i*n+i] = expr.One()
	}

	return &Matrix{rows: n, cols: n, cells: cells}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At retrieves the cell at (i, j).
// Returns ErrIndexOutOfBounds when i or j is outside the matrix.
func (m *Matrix) At(i, j int) (expr.Expr, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return expr.Expr{}, fmt.Errorf("At: (%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrIndexOutOfBounds)
	}

	return m.at(i, j), nil
}

// at is the unchecked accessor used by the algorithms, which manage their
// own index ranges.
func (m *Matrix) at(i, j int) expr.Expr { return m.cells[i*m.cols+j] }

// Clone returns an independent deep copy. Complexity: O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	cells := make([]expr.Expr, len(m.cells))
	copy(cells, m.cells)

	return &Matrix{rows: m.rows, cols: m.cols, cells: cells}
}

// Equal reports shape equality plus cell-wise simplified-equality.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.cells {
		if !m.cells[i].Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Strings renders every cell in canonical textual form, row-major by row.
func (m *Matrix) Strings() [][]string {
	out := make([][]string, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			row[j] = m.at(i, j).String()
		}
		out[i] = row
	}

	return out
}

// grid copies the cells into a mutable [][]expr.Expr working area for the
// elimination algorithms.
func (m *Matrix) grid() [][]expr.Expr {
	g := make([][]expr.Expr, m.rows)
	for i := 0; i < m.rows; i++ {
		g[i] = make([]expr.Expr, m.cols)
		for j := 0; j < m.cols; j++ {
			g[i][j] = m.at(i, j)
		}
	}

	return g
}

// fromGrid rebuilds a Matrix from a working grid.
func fromGrid(g [][]expr.Expr) *Matrix {
	rows := len(g)
	cols := len(g[0])
	cells := make([]expr.Expr, 0, rows*cols)
	for i := 0; i < rows; i++ {
		cells = append(cells, g[i]...)
	}

	return &Matrix{rows: rows, cols: cols, cells: cells}
}
