package eval

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxDimension bounds operand rows and cols. Elimination and
	// inversion are O(n³) in cell operations with symbolic cell growth on
	// top, so the default stays deliberately small.
	DefaultMaxDimension = 16

	// DefaultMaxDepth bounds the expression-tree depth walked by the
	// evaluator (and by cell evaluation).
	DefaultMaxDepth = 64

	// DefaultMaxExponent bounds |n| in x^n; polynomial term counts grow
	// with the exponent.
	DefaultMaxExponent = 64
)

const (
	panicDimensionInvalid = "eval: WithMaxDimension: n must be positive"
	panicDepthInvalid     = "eval: WithMaxDepth: n must be positive"
	panicExponentInvalid  = "eval: WithMaxExponent: n must be positive"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); oversized user input is a runtime
// ErrResourceLimit, never a panic.
type Option func(*Options)

// Options stores the effective limits after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxDimension int
	maxDepth     int
	maxExponent  int
}

// MaxDimension returns the effective matrix-dimension bound.
func (o Options) MaxDimension() int { return o.maxDimension }

// MaxDepth returns the effective expression-depth bound.
func (o Options) MaxDepth() int { return o.maxDepth }

// MaxExponent returns the effective exponent-magnitude bound.
func (o Options) MaxExponent() int { return o.maxExponent }

// WithMaxDimension bounds operand rows and cols. Panics when n < 1.
func WithMaxDimension(n int) Option {
	if n < 1 {
		panic(panicDimensionInvalid)
	}

	return func(o *Options) { o.maxDimension = n }
}

// WithMaxDepth bounds the expression-tree depth. Panics when n < 1.
func WithMaxDepth(n int) Option {
	if n < 1 {
		panic(panicDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = n }
}

// WithMaxExponent bounds |n| in x^n. Panics when n < 1.
func WithMaxExponent(n int) Option {
	if n < 1 {
		panic(panicExponentInvalid)
	}

	return func(o *Options) { o.maxExponent = n }
}

// NewOptions resolves option setters against the documented defaults,
// last-writer-wins.
func NewOptions(opts ...Option) Options {
	o := Options{
		maxDimension: DefaultMaxDimension,
		maxDepth:     DefaultMaxDepth,
		maxExponent:  DefaultMaxExponent,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
