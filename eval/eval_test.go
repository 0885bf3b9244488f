package eval_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symatlab/symat/eval"
	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
	"github.com/symatlab/symat/parse"
)

// operand builds a matrix from cell strings through the same cell pipeline
// the request boundary uses.
func operand(t *testing.T, rows, cols int, data ...string) *matrix.Matrix {
	t.Helper()
	require.Len(t, data, rows*cols)
	cells := make([]expr.Expr, len(data))
	for i, text := range data {
		root, err := parse.ParseCell(text)
		require.NoError(t, err, "cell %q", text)
		cell, err := eval.EvaluateCell(root)
		require.NoError(t, err, "cell %q", text)
		cells[i] = cell
	}
	m, err := matrix.New(rows, cols, cells)
	require.NoError(t, err)

	return m
}

// run parses and evaluates src against the operands.
func run(t *testing.T, src string, ops map[string]*matrix.Matrix, o ...eval.Option) (eval.Value, error) {
	t.Helper()
	root, err := parse.ParseExpression(src)
	require.NoError(t, err)

	return eval.Evaluate(root, ops, o...)
}

// TestScalarArithmetic checks pure scalar evaluation with precedence and
// exact rationals.
func TestScalarArithmetic(t *testing.T) {
	v, err := run(t, "2 + 3 * 4", nil)
	require.NoError(t, err)
	s, ok := v.Scalar()
	require.True(t, ok)
	assert.Equal(t, "14", s.String())

	v, err = run(t, "(2/3) / 2", nil)
	require.NoError(t, err)
	s, _ = v.Scalar()
	assert.Equal(t, "1/3", s.String())

	v, err = run(t, "2^3", nil)
	require.NoError(t, err)
	s, _ = v.Scalar()
	assert.Equal(t, "8", s.String())
}

// TestUnknownVariable ensures undeclared names fail with the sentinel.
func TestUnknownVariable(t *testing.T) {
	_, err := run(t, "A + B", map[string]*matrix.Matrix{
		"A": operand(t, 1, 1, "1"),
	})
	assert.ErrorIs(t, err, eval.ErrUnknownVariable)
}

// TestMatrixExpressionScenario runs A*B + T(A) for A = [[a,0],[0,a]],
// B = [[1,a],[3,0]]: entrywise a·B + T(A).
func TestMatrixExpressionScenario(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 2, 2, "a", "0", "0", "a"),
		"B": operand(t, 2, 2, "1", "a", "3", "0"),
	}
	v, err := run(t, "A*B + T(A)", ops)
	require.NoError(t, err)

	m, ok := v.Matrix()
	require.True(t, ok, "result kind must be matrix")
	assert.Equal(t, [][]string{
		{"2*a", "a^2"},
		{"3*a", "a"},
	}, m.Strings())
}

// TestScalarMatrixProduct checks both scaling orders and implicit
// multiplication of a literal against a matrix.
func TestScalarMatrixProduct(t *testing.T) {
	ops := map[string]*matrix.Matrix{"A": operand(t, 2, 2, "1", "2", "3", "4")}

	v, err := run(t, "(2/3)A", ops)
	require.NoError(t, err)
	m, ok := v.Matrix()
	require.True(t, ok)
	assert.Equal(t, [][]string{{"2/3", "4/3"}, {"2", "8/3"}}, m.Strings())

	v, err = run(t, "A * 3", ops)
	require.NoError(t, err)
	m, _ = v.Matrix()
	assert.Equal(t, [][]string{{"3", "6"}, {"9", "12"}}, m.Strings())
}

// TestMixedAddIsDimensionError: scalar+matrix addition never broadcasts.
func TestMixedAddIsDimensionError(t *testing.T) {
	ops := map[string]*matrix.Matrix{"A": operand(t, 2, 2, "1", "0", "0", "1")}

	_, err := run(t, "A + 1", ops)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = run(t, "2 - A", ops)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDimensionMismatchProduct: 2x3 by 2x2 fails, never truncates.
func TestDimensionMismatchProduct(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 2, 3, "1", "2", "3", "4", "5", "6"),
		"B": operand(t, 2, 2, "1", "0", "0", "1"),
	}
	_, err := run(t, "A * B", ops)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDivision covers matrix/scalar, division by exact zero, and the two
// unsupported division shapes.
func TestDivision(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 1, 2, "2", "a"),
		"B": operand(t, 1, 2, "1", "1"),
	}

	v, err := run(t, "A / 2", ops)
	require.NoError(t, err)
	m, _ := v.Matrix()
	assert.Equal(t, [][]string{{"1", "(1/2)*a"}}, m.Strings())

	_, err = run(t, "A / 0", ops)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)

	_, err = run(t, "1 / (2 - 2)", nil)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)

	_, err = run(t, "A / B", ops)
	assert.ErrorIs(t, err, eval.ErrUnsupported, "matrix/matrix division is undefined")

	_, err = run(t, "2 / A", ops)
	assert.ErrorIs(t, err, eval.ErrUnsupported)
}

// TestNamedOperators drives T, DET, TRACE, RANK, RREF, INV end to end.
func TestNamedOperators(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 2, 2, "a", "0", "0", "a"),
		"R": operand(t, 2, 3, "1", "2", "3", "2", "4", "6"),
	}

	v, err := run(t, "DET(A)", ops)
	require.NoError(t, err)
	s, ok := v.Scalar()
	require.True(t, ok, "DET yields a scalar")
	assert.Equal(t, "a^2", s.String())

	v, err = run(t, "TRACE(A)", ops)
	require.NoError(t, err)
	s, _ = v.Scalar()
	assert.Equal(t, "2*a", s.String())

	v, err = run(t, "RANK(R)", ops)
	require.NoError(t, err)
	s, _ = v.Scalar()
	assert.Equal(t, "1", s.String())

	v, err = run(t, "RREF(R)", ops)
	require.NoError(t, err)
	m, ok := v.Matrix()
	require.True(t, ok)
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"0", "0", "0"}}, m.Strings())

	v, err = run(t, "A * INV(A)", ops)
	require.NoError(t, err)
	m, _ = v.Matrix()
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	assert.True(t, m.Equal(id))

	v, err = run(t, "T(R)", ops)
	require.NoError(t, err)
	m, _ = v.Matrix()
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

// TestOperatorShapeErrors: named operators on wrong shapes and scalars.
func TestOperatorShapeErrors(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"R": operand(t, 2, 3, "1", "2", "3", "4", "5", "6"),
		"S": operand(t, 2, 2, "1", "0", "0", "0"),
	}

	_, err := run(t, "DET(R)", ops)
	assert.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = run(t, "TRACE(R)", ops)
	assert.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = run(t, "INV(S)", ops)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = run(t, "DET(2)", nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "DET of a scalar is a shape error")

	// T of a scalar is the identity, not an error.
	v, err := run(t, "T(DET(S))", ops)
	require.NoError(t, err)
	s, ok := v.Scalar()
	require.True(t, ok)
	assert.True(t, s.IsZero())
}

// TestOneByOneStaysMatrix: a 1×1 matrix result keeps matrix semantics
// during evaluation; classification happens at the boundary, not here.
func TestOneByOneStaysMatrix(t *testing.T) {
	ops := map[string]*matrix.Matrix{"M": operand(t, 1, 1, "a")}
	v, err := run(t, "T(M)", ops)
	require.NoError(t, err)
	assert.Equal(t, eval.KindMatrix, v.Kind())
}

// TestMatrixPower covers A^2, A^0 and the non-square/non-integer rejections.
func TestMatrixPower(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 2, 2, "0", "1", "1", "0"),
		"R": operand(t, 2, 3, "1", "2", "3", "4", "5", "6"),
	}

	v, err := run(t, "A^2", ops)
	require.NoError(t, err)
	m, _ := v.Matrix()
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	assert.True(t, m.Equal(id), "the swap matrix squares to the identity")

	v, err = run(t, "A^0", ops)
	require.NoError(t, err)
	m, _ = v.Matrix()
	assert.True(t, m.Equal(id))

	_, err = run(t, "R^2", ops)
	assert.ErrorIs(t, err, matrix.ErrNotSquare)

	_, err = run(t, "2^(1/2)", nil)
	assert.ErrorIs(t, err, eval.ErrUnsupported, "non-integer exponents are out of the algebra")
}

// TestResourceLimits exercises the dimension, depth and exponent bounds.
func TestResourceLimits(t *testing.T) {
	ops := map[string]*matrix.Matrix{
		"A": operand(t, 2, 2, "1", "0", "0", "1"),
	}

	_, err := run(t, "A", ops, eval.WithMaxDimension(1))
	assert.ErrorIs(t, err, eval.ErrResourceLimit)

	_, err = run(t, strings.Repeat("-", 80)+"1", nil)
	assert.ErrorIs(t, err, eval.ErrResourceLimit, "default depth bound is 64")

	_, err = run(t, "2^9", nil, eval.WithMaxExponent(8))
	assert.ErrorIs(t, err, eval.ErrResourceLimit)
}

// TestEvaluateCell maps identifiers to free symbols and keeps cells scalar.
func TestEvaluateCell(t *testing.T) {
	root, err := parse.ParseCell("2a^2 - 1/3")
	require.NoError(t, err)
	cell, err := eval.EvaluateCell(root)
	require.NoError(t, err)
	assert.Equal(t, "2*a^2 - 1/3", cell.String())

	root, err = parse.ParseCell("a(b+1)")
	require.NoError(t, err)
	cell, err = eval.EvaluateCell(root)
	require.NoError(t, err)
	want := expr.Mul(expr.Symbol("a"), expr.Add(expr.Symbol("b"), expr.Int(1)))
	assert.True(t, cell.Equal(want))
}

// TestOptionsDefaults pins the documented defaults.
func TestOptionsDefaults(t *testing.T) {
	o := eval.NewOptions()
	assert.Equal(t, eval.DefaultMaxDimension, o.MaxDimension())
	assert.Equal(t, eval.DefaultMaxDepth, o.MaxDepth())
	assert.Equal(t, eval.DefaultMaxExponent, o.MaxExponent())

	o = eval.NewOptions(eval.WithMaxDimension(4), eval.WithMaxDepth(8), eval.WithMaxExponent(2))
	assert.Equal(t, 4, o.MaxDimension())
	assert.Equal(t, 8, o.MaxDepth())
	assert.Equal(t, 2, o.MaxExponent())

	assert.Panics(t, func() { eval.WithMaxDimension(0) })
	assert.Panics(t, func() { eval.WithMaxDepth(-1) })
	assert.Panics(t, func() { eval.WithMaxExponent(0) })
}
