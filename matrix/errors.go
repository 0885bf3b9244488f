package matrix

import "errors"

var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("matrix: rows and cols must be positive")
	// ErrCellCount indicates the cell slice does not hold rows*cols entries.
	ErrCellCount = errors.New("matrix: cell count must equal rows*cols")
	// ErrIndexOutOfBounds indicates an At access outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
	// ErrDimensionMismatch indicates a shape-incompatible operand pair.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrNotSquare indicates a square-only operation on a non-square matrix.
	ErrNotSquare = errors.New("matrix: matrix is not square")
	// ErrSingular indicates inversion of a matrix whose determinant
	// simplifies to exact zero.
	ErrSingular = errors.New("matrix: matrix is singular")
)
