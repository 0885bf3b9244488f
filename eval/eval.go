package eval

import (
	"fmt"

	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
	"github.com/symatlab/symat/parse"
)

// Evaluate walks the AST once, binding Variable nodes to the supplied
// operands, and returns the resulting Value. Operand dimensions and the
// tree depth are checked against the configured limits before any
// arithmetic runs. All errors are terminal: there is no partial result.
func Evaluate(root parse.Node, operands map[string]*matrix.Matrix, opts ...Option) (Value, error) {
	o := NewOptions(opts...)
	for name, m := range operands {
		if m.Rows() > o.maxDimension || m.Cols() > o.maxDimension {
			return Value{}, fmt.Errorf("Evaluate: operand %q is %dx%d, limit %d: %w",
				name, m.Rows(), m.Cols(), o.maxDimension, ErrResourceLimit)
		}
	}
	ev := &evaluator{operands: operands, opts: o}

	return ev.eval(root, 0)
}

// EvaluateCell walks a cell AST, mapping identifiers to free symbols, and
// returns the scalar cell expression. The parser has already excluded
// function calls from the cell grammar.
func EvaluateCell(root parse.Node, opts ...Option) (expr.Expr, error) {
	o := NewOptions(opts...)
	ev := &evaluator{opts: o, symbolic: true}
	v, err := ev.eval(root, 0)
	if err != nil {
		return expr.Expr{}, err
	}
	s, ok := v.Scalar()
	if !ok {
		return expr.Expr{}, fmt.Errorf("EvaluateCell: non-scalar cell value: %w", ErrUnsupported)
	}

	return s, nil
}

// evaluator carries the per-request bindings; it holds no state between
// requests and is discarded with the AST.
type evaluator struct {
	operands map[string]*matrix.Matrix
	opts     Options
	symbolic bool // cell mode: identifiers are free symbols
}

func (ev *evaluator) eval(node parse.Node, depth int) (Value, error) {
	if depth > ev.opts.maxDepth {
		return Value{}, fmt.Errorf("eval: expression depth exceeds %d: %w", ev.opts.maxDepth, ErrResourceLimit)
	}

	switch n := node.(type) {
	case *parse.Number:
		return ScalarValue(expr.FromRat(n.Value)), nil

	case *parse.Variable:
		if ev.symbolic {
			return ScalarValue(expr.Symbol(n.Name)), nil
		}
		m, ok := ev.operands[n.Name]
		if !ok {
			return Value{}, fmt.Errorf("eval: position %d: %q: %w", n.Pos(), n.Name, ErrUnknownVariable)
		}

		return MatrixValue(m), nil

	case *parse.Negate:
		v, err := ev.eval(n.X, depth+1)
		if err != nil {
			return Value{}, err
		}
		if m, ok := v.Matrix(); ok {
			return MatrixValue(m.Neg()), nil
		}
		s, _ := v.Scalar()

		return ScalarValue(expr.Neg(s)), nil

	case *parse.Binary:
		if n.Op == parse.OpPow {
			return ev.power(n, depth)
		}
		left, err := ev.eval(n.Left, depth+1)
		if err != nil {
			return Value{}, err
		}
		right, err := ev.eval(n.Right, depth+1)
		if err != nil {
			return Value{}, err
		}

		return ev.binary(n, left, right)

	case *parse.Call:
		arg, err := ev.eval(n.Arg, depth+1)
		if err != nil {
			return Value{}, err
		}

		return ev.call(n, arg)

	default:
		return Value{}, fmt.Errorf("eval: unexpected node %T: %w", node, ErrUnsupported)
	}
}

// binary dispatches + - * / on the operand kind pair.
func (ev *evaluator) binary(n *parse.Binary, left, right Value) (Value, error) {
	ls, leftScalar := left.Scalar()
	rs, rightScalar := right.Scalar()
	lm, _ := left.Matrix()
	rm, _ := right.Matrix()

	switch n.Op {
	case parse.OpAdd, parse.OpSub:
		switch {
		case leftScalar && rightScalar:
			if n.Op == parse.OpAdd {
				return ScalarValue(expr.Add(ls, rs)), nil
			}

			return ScalarValue(expr.Sub(ls, rs)), nil
		case !leftScalar && !rightScalar:
			var (
				m   *matrix.Matrix
				err error
			)
			if n.Op == parse.OpAdd {
				m, err = matrix.Add(lm, rm)
			} else {
				m, err = matrix.Sub(lm, rm)
			}
			if err != nil {
				return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
			}

			return MatrixValue(m), nil
		default:
			// Mixed scalar+matrix addition is a dimension error, not a
			// broadcast.
			return Value{}, fmt.Errorf("eval: position %d: scalar %s matrix: %w",
				n.Pos(), n.Op, matrix.ErrDimensionMismatch)
		}

	case parse.OpMul:
		switch {
		case leftScalar && rightScalar:
			return ScalarValue(expr.Mul(ls, rs)), nil
		case leftScalar:
			return MatrixValue(rm.Scale(ls)), nil
		case rightScalar:
			return MatrixValue(lm.Scale(rs)), nil
		default:
			m, err := matrix.Mul(lm, rm)
			if err != nil {
				return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
			}

			return MatrixValue(m), nil
		}

	case parse.OpDiv:
		if !rightScalar {
			return Value{}, fmt.Errorf("eval: position %d: division by a matrix: %w", n.Pos(), ErrUnsupported)
		}
		if leftScalar {
			q, err := expr.Div(ls, rs)
			if err != nil {
				return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
			}

			return ScalarValue(q), nil
		}
		recip, err := expr.Div(expr.One(), rs)
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return MatrixValue(lm.Scale(recip)), nil

	default:
		return Value{}, fmt.Errorf("eval: position %d: operator %q: %w", n.Pos(), n.Op.String(), ErrUnsupported)
	}
}

// power handles x^n: the exponent must evaluate to an integer constant
// within the configured bound; a matrix base must be square and multiplies
// repeatedly (negative exponents invert first).
func (ev *evaluator) power(n *parse.Binary, depth int) (Value, error) {
	base, err := ev.eval(n.Left, depth+1)
	if err != nil {
		return Value{}, err
	}
	expVal, err := ev.eval(n.Right, depth+1)
	if err != nil {
		return Value{}, err
	}
	es, ok := expVal.Scalar()
	if !ok {
		return Value{}, fmt.Errorf("eval: position %d: matrix exponent: %w", n.Pos(), ErrUnsupported)
	}
	k, ok := es.AsInt()
	if !ok {
		return Value{}, fmt.Errorf("eval: position %d: exponent %s is not an integer: %w",
			n.Pos(), es.String(), ErrUnsupported)
	}
	abs := k
	if abs < 0 {
		abs = -abs
	}
	if abs > int64(ev.opts.maxExponent) {
		return Value{}, fmt.Errorf("eval: position %d: exponent %d exceeds %d: %w",
			n.Pos(), k, ev.opts.maxExponent, ErrResourceLimit)
	}

	if s, isScalar := base.Scalar(); isScalar {
		p, err := expr.Pow(s, int(k))
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return ScalarValue(p), nil
	}

	m, _ := base.Matrix()
	if !m.IsSquare() {
		return Value{}, fmt.Errorf("eval: position %d: power of %dx%d: %w",
			n.Pos(), m.Rows(), m.Cols(), matrix.ErrNotSquare)
	}
	if k < 0 {
		if m, err = matrix.Inverse(m); err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}
		k = -k
	}
	acc, err := matrix.Identity(m.Rows())
	if err != nil {
		return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
	}
	for ; k > 0; k-- {
		if acc, err = matrix.Mul(acc, m); err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}
	}

	return MatrixValue(acc), nil
}

// call dispatches the named operators on the closed Func enum.
func (ev *evaluator) call(n *parse.Call, arg Value) (Value, error) {
	if s, isScalar := arg.Scalar(); isScalar {
		// Transposing a 1×1 scalar is the identity; every other operator
		// requires a matrix operand.
		if n.Fn == parse.FuncTranspose {
			return ScalarValue(s), nil
		}

		return Value{}, fmt.Errorf("eval: position %d: %s expects a matrix: %w",
			n.Pos(), n.Fn, matrix.ErrDimensionMismatch)
	}
	m, _ := arg.Matrix()

	switch n.Fn {
	case parse.FuncTranspose:
		return MatrixValue(m.Transpose()), nil

	case parse.FuncInverse:
		inv, err := matrix.Inverse(m)
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return MatrixValue(inv), nil

	case parse.FuncDeterminant:
		det, err := matrix.Determinant(m)
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return ScalarValue(det), nil

	case parse.FuncTrace:
		tr, err := m.Trace()
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return ScalarValue(tr), nil

	case parse.FuncRank:
		r, err := matrix.Rank(m)
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return ScalarValue(expr.Int(int64(r))), nil

	case parse.FuncRREF:
		red, err := matrix.RREF(m)
		if err != nil {
			return Value{}, fmt.Errorf("eval: position %d: %w", n.Pos(), err)
		}

		return MatrixValue(red), nil

	default:
		return Value{}, fmt.Errorf("eval: position %d: function %s: %w", n.Pos(), n.Fn, ErrUnsupported)
	}
}
