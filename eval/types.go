package eval

import (
	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
)

// Kind tags a Value as scalar or matrix.
type Kind int

const (
	// KindScalar is a single symbolic expression.
	KindScalar Kind = iota
	// KindMatrix is a matrix of symbolic expressions. 1×1 matrices keep
	// this kind throughout evaluation.
	KindMatrix
)

// Value is the evaluator's runtime value: exactly one of Scalar or Matrix.
// The zero value is the scalar 0.
type Value struct {
	kind   Kind
	scalar expr.Expr
	mat    *matrix.Matrix
}

// ScalarValue wraps a scalar expression.
func ScalarValue(e expr.Expr) Value { return Value{kind: KindScalar, scalar: e} }

// MatrixValue wraps a matrix.
func MatrixValue(m *matrix.Matrix) Value { return Value{kind: KindMatrix, mat: m} }

// Kind returns the value's tag.
func (v Value) Kind() Kind { return v.kind }

// Scalar returns the scalar expression when the value is a scalar.
func (v Value) Scalar() (expr.Expr, bool) {
	if v.kind != KindScalar {
		return expr.Expr{}, false
	}

	return v.scalar, true
}

// Matrix returns the matrix when the value is a matrix.
func (v Value) Matrix() (*matrix.Matrix, bool) {
	if v.kind != KindMatrix {
		return nil, false
	}

	return v.mat, true
}
