package expr

import "errors"

// ErrDivisionByZero indicates division (or a negative power) by an
// expression that simplifies to exact zero.
var ErrDivisionByZero = errors.New("expr: division by zero")
