package engine

import (
	"errors"

	"github.com/symatlab/symat/eval"
	"github.com/symatlab/symat/expr"
	"github.com/symatlab/symat/matrix"
	"github.com/symatlab/symat/parse"
)

// ErrInvalidRequest indicates a malformed request envelope: duplicate,
// empty, malformed or reserved matrix names, non-positive dimensions, or a
// data grid that disagrees with rows×cols.
var ErrInvalidRequest = errors.New("engine: invalid request")

// Stable error codes surfaced to callers alongside the human-readable
// message.
const (
	CodeLex               = "LexError"
	CodeParse             = "ParseError"
	CodeUnknownVariable   = "UnknownVariable"
	CodeDimensionMismatch = "DimensionMismatch"
	CodeNotSquare         = "NotSquare"
	CodeSingularMatrix    = "SingularMatrix"
	CodeDivisionByZero    = "DivisionByZero"
	CodeUnsupported       = "UnsupportedOperation"
	CodeResourceLimit     = "ResourceLimitExceeded"
	CodeInvalidRequest    = "InvalidRequest"
	CodeInternal          = "InternalError"
)

// Code maps any error returned by Evaluate onto its stable code.
// Unrecognized errors fall through to InternalError.
func Code(err error) string {
	switch {
	case errors.Is(err, parse.ErrLex), errors.Is(err, parse.ErrNumberFormat):
		return CodeLex
	case errors.Is(err, parse.ErrSyntax),
		errors.Is(err, parse.ErrUnknownFunction),
		errors.Is(err, parse.ErrCellFunction):
		return CodeParse
	case errors.Is(err, eval.ErrUnknownVariable):
		return CodeUnknownVariable
	case errors.Is(err, matrix.ErrNotSquare):
		return CodeNotSquare
	case errors.Is(err, matrix.ErrSingular):
		return CodeSingularMatrix
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return CodeDimensionMismatch
	case errors.Is(err, expr.ErrDivisionByZero):
		return CodeDivisionByZero
	case errors.Is(err, eval.ErrUnsupported):
		return CodeUnsupported
	case errors.Is(err, eval.ErrResourceLimit), errors.Is(err, parse.ErrNestingDepth):
		return CodeResourceLimit
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	default:
		return CodeInternal
	}
}
