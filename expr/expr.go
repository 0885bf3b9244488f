package expr

import (
	"fmt"
	"math/big"
)

// Expr is one exact algebraic expression: a quotient of two canonical
// polynomials. The zero value is the number 0. Expr is immutable; every
// operation returns a fresh value, so sharing across goroutines is safe.
type Expr struct {
	num poly
	den poly // nil means 1 (kept so the zero value is usable)
}

// ------------------------------------------------------------- constructors

// Int returns the integer constant v.
func Int(v int64) Expr {
	return Expr{num: polyConst(new(big.Rat).SetInt64(v)), den: polyOne()}
}

// Rat returns the exact rational p/q. Returns ErrDivisionByZero when q == 0.
func Rat(p, q int64) (Expr, error) {
	if q == 0 {
		return Expr{}, fmt.Errorf("Rat: %d/%d: %w", p, q, ErrDivisionByZero)
	}

	return FromRat(new(big.Rat).SetFrac64(p, q)), nil
}

// FromRat returns the exact rational r. The value is copied.
func FromRat(r *big.Rat) Expr {
	return Expr{num: polyConst(r), den: polyOne()}
}

// ParseNumber converts an integer or decimal literal ("42", "1.5", ".25")
// into an exact rational constant; 1.5 becomes 3/2, never a float.
func ParseNumber(text string) (Expr, error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return Expr{}, fmt.Errorf("ParseNumber: invalid numeric literal %q", text)
	}

	return FromRat(r), nil
}

// Symbol returns the free symbol name (e.g. "a").
func Symbol(name string) Expr {
	return Expr{num: polySym(name), den: polyOne()}
}

// Zero returns the constant 0.
func Zero() Expr { return Expr{num: polyZero(), den: polyOne()} }

// One returns the constant 1.
func One() Expr { return Expr{num: polyOne(), den: polyOne()} }

// numDen resolves the zero-value convention (nil den means 1).
func (e Expr) numDen() (poly, poly) {
	d := e.den
	if d == nil {
		d = polyOne()
	}
	n := e.num
	if n == nil {
		n = polyZero()
	}

	return n, d
}

// --------------------------------------------------------------- arithmetic

// Add returns a+b in canonical form (like terms combined on construction).
func Add(a, b Expr) Expr {
	an, ad := a.numDen()
	bn, bd := b.numDen()

	return canonical(polyAdd(polyMul(an, bd), polyMul(bn, ad)), polyMul(ad, bd))
}

// Sub returns a-b in canonical form.
func Sub(a, b Expr) Expr {
	an, ad := a.numDen()
	bn, bd := b.numDen()

	return canonical(polySub(polyMul(an, bd), polyMul(bn, ad)), polyMul(ad, bd))
}

// Mul returns a*b in canonical form.
func Mul(a, b Expr) Expr {
	an, ad := a.numDen()
	bn, bd := b.numDen()

	return canonical(polyMul(an, bn), polyMul(ad, bd))
}

// Neg returns -a.
func Neg(a Expr) Expr {
	an, ad := a.numDen()

	return Expr{num: polyNeg(an), den: ad}
}

// Div returns a/b, or ErrDivisionByZero when b simplifies to exact zero.
func Div(a, b Expr) (Expr, error) {
	bn, bd := b.numDen()
	if bn.isZero() {
		return Expr{}, fmt.Errorf("Div: %w", ErrDivisionByZero)
	}
	an, ad := a.numDen()

	return canonical(polyMul(an, bd), polyMul(ad, bn)), nil
}

// Pow returns a**n for an integer exponent. n == 0 yields 1 (including 0**0,
// by the usual algebraic convention); negative n inverts first and fails
// with ErrDivisionByZero when a is exact zero.
func Pow(a Expr, n int) (Expr, error) {
	if n == 0 {
		return One(), nil
	}
	base := a
	if n < 0 {
		inv, err := Div(One(), a)
		if err != nil {
			return Expr{}, fmt.Errorf("Pow: exponent %d: %w", n, ErrDivisionByZero)
		}
		base = inv
		n = -n
	}
	// Square-and-multiply keeps the number of polynomial products at O(log n).
	acc := One()
	sq := base
	for n > 0 {
		if n&1 == 1 {
			acc = Mul(acc, sq)
		}
		n >>= 1
		if n > 0 {
			sq = Mul(sq, sq)
		}
	}

	return acc, nil
}

// canonical normalizes a raw num/den pair into the unique representation:
//  1. zero numerator collapses to 0/1;
//  2. monomial factors common to every term of num and den are stripped;
//  3. when den divides num exactly the quotient replaces the pair
//     (this also collapses num == c·den to the constant c);
//  4. otherwise num and den are reduced by their polynomial GCD, so
//     (2a+2b)/(a+b)^2 and 2/(a+b) land on the same form;
//  5. finally den is made monic so the scale lives in num.
func canonical(num, den poly) Expr {
	if num.isZero() {
		return Zero()
	}
	cn, cd := polyContent(num), polyContent(den)
	if len(cn) > 0 && len(cd) > 0 {
		if g := monoGCD(cn, cd); len(g) > 0 {
			num = polyShiftDown(num, g)
			den = polyShiftDown(den, g)
		}
	}
	if q, ok := polyDivExact(num, den); ok {
		return Expr{num: q, den: polyOne()}
	}
	if g := polyGCD(num, den); len(g) > 0 {
		if _, constant := g.isConst(); !constant {
			if qn, ok := polyDivExact(num, g); ok {
				if qd, ok := polyDivExact(den, g); ok {
					num, den = qn, qd
				}
			}
		}
	}
	if den[0].coef.Cmp(ratOne) != 0 {
		inv := new(big.Rat).Inv(den[0].coef)
		num = polyScale(num, inv)
		den = polyScale(den, inv)
	}

	return Expr{num: num, den: den}
}

// --------------------------------------------------------------- predicates

// IsZero reports whether e is exact zero.
func (e Expr) IsZero() bool {
	n, _ := e.numDen()

	return n.isZero()
}

// IsOne reports whether e is exact one.
func (e Expr) IsOne() bool {
	r, ok := e.AsRat()

	return ok && r.Cmp(ratOne) == 0
}

// IsNumeric reports whether e is a pure number (no symbols).
func (e Expr) IsNumeric() bool {
	_, ok := e.AsRat()

	return ok
}

// AsRat returns the exact rational value of e when e is numeric.
// The returned value is a copy.
func (e Expr) AsRat() (*big.Rat, bool) {
	n, d := e.numDen()
	dc, ok := d.isConst()
	if !ok || dc.Sign() == 0 {
		return nil, false
	}
	nc, ok := n.isConst()
	if !ok {
		return nil, false
	}

	return new(big.Rat).Quo(nc, dc), true
}

// AsInt returns the value of e when e is an integer constant.
func (e Expr) AsInt() (int64, bool) {
	r, ok := e.AsRat()
	if !ok || !r.IsInt() {
		return 0, false
	}

	return r.Num().Int64(), true
}

// Equal reports simplified-equality: both sides are canonical, so this is a
// deep structural comparison.
func (e Expr) Equal(o Expr) bool {
	en, ed := e.numDen()
	on, od := o.numDen()

	return polyEqual(en, on) && polyEqual(ed, od)
}
