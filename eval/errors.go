package eval

import "errors"

var (
	// ErrUnknownVariable indicates the expression references a matrix name
	// that was not supplied in the operand map.
	ErrUnknownVariable = errors.New("eval: unknown matrix name")
	// ErrUnsupported indicates an operation outside the algebra: matrix-by-
	// matrix division, scalar/matrix division, or a non-integer exponent.
	ErrUnsupported = errors.New("eval: unsupported operation")
	// ErrResourceLimit indicates an input exceeding the configured bounds
	// (matrix dimension, expression depth or exponent magnitude).
	ErrResourceLimit = errors.New("eval: resource limit exceeded")
)
