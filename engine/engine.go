package engine

import (
	"fmt"
	"strings"

	"github.com/symatlab/symat/eval"
	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
	"github.com/symatlab/symat/parse"
)

// Evaluate validates the request envelope, builds the operands by parsing
// every cell, parses the expression and evaluates it. Options tighten or
// relax the evaluator's resource limits for the whole request, cells
// included.
//
// Blueprint:
//  1. Validate names, dimensions and grid shape (ErrInvalidRequest).
//  2. Parse and evaluate every cell; blank cells read as zero.
//  3. Parse the expression and evaluate it against the operands.
//  4. Classify the value: scalar or matrix of canonical strings.
func Evaluate(req Request, opts ...eval.Option) (Result, error) {
	operands, err := buildOperands(req.Matrices, opts)
	if err != nil {
		return Result{}, err
	}

	root, err := parse.ParseExpression(req.Expression)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: expression: %w", err)
	}
	v, err := eval.Evaluate(root, operands, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}

	if m, ok := v.Matrix(); ok {
		return Result{Kind: KindMatrix, Matrix: m.Strings()}, nil
	}
	s, _ := v.Scalar()

	return Result{Kind: KindScalar, Scalar: s.String()}, nil
}

// buildOperands checks the envelope and parses every cell into an exact
// expression.
func buildOperands(inputs []MatrixInput, opts []eval.Option) (map[string]*matrix.Matrix, error) {
	operands := make(map[string]*matrix.Matrix, len(inputs))
	for _, in := range inputs {
		if err := checkName(in.Name, operands); err != nil {
			return nil, err
		}
		if in.Rows < 1 || in.Cols < 1 {
			return nil, fmt.Errorf("buildOperands: matrix %q: %dx%d is not a valid shape: %w",
				in.Name, in.Rows, in.Cols, ErrInvalidRequest)
		}
		if len(in.Data) != in.Rows {
			return nil, fmt.Errorf("buildOperands: matrix %q: %d data rows, declared %d: %w",
				in.Name, len(in.Data), in.Rows, ErrInvalidRequest)
		}

		cells := make([]expr.Expr, 0, in.Rows*in.Cols)
		for i, row := range in.Data {
			if len(row) != in.Cols {
				return nil, fmt.Errorf("buildOperands: matrix %q: row %d has %d cells, declared %d: %w",
					in.Name, i, len(row), in.Cols, ErrInvalidRequest)
			}
			for j, text := range row {
				cell, err := parseCell(text, opts)
				if err != nil {
					return nil, fmt.Errorf("buildOperands: matrix %q cell (%d,%d): %w", in.Name, i, j, err)
				}
				cells = append(cells, cell)
			}
		}

		m, err := matrix.New(in.Rows, in.Cols, cells)
		if err != nil {
			return nil, fmt.Errorf("buildOperands: matrix %q: %w", in.Name, err)
		}
		operands[in.Name] = m
	}

	return operands, nil
}

// parseCell turns one cell string into an exact expression. Blank cells are
// holes in the input grid and read as zero.
func parseCell(text string, opts []eval.Option) (expr.Expr, error) {
	if strings.TrimSpace(text) == "" {
		return expr.Zero(), nil
	}
	root, err := parse.ParseCell(text)
	if err != nil {
		return expr.Expr{}, err
	}

	return eval.EvaluateCell(root, opts...)
}

// checkName enforces the operand naming rules: non-empty ASCII letters,
// unique within the request, and not shadowing a reserved keyword.
func checkName(name string, seen map[string]*matrix.Matrix) error {
	if name == "" {
		return fmt.Errorf("checkName: empty matrix name: %w", ErrInvalidRequest)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return fmt.Errorf("checkName: matrix name %q: byte %q is not a letter: %w",
				name, c, ErrInvalidRequest)
		}
	}
	if _, reserved := parse.FuncByName(name); reserved {
		return fmt.Errorf("checkName: matrix name %q shadows a reserved keyword: %w",
			name, ErrInvalidRequest)
	}
	if _, dup := seen[name]; dup {
		return fmt.Errorf("checkName: duplicate matrix name %q: %w", name, ErrInvalidRequest)
	}

	return nil
}
