// Internal polynomial machinery for the canonical form.
//
// A poly is a slice of terms sorted by graded-lex monomial order, highest
// first, with no zero coefficients and no duplicate monomials. The empty
// slice is the zero polynomial. Terms and monomials are treated as
// immutable once built; arithmetic allocates fresh slices and big.Rats.

package expr

import (
	"math/big"
	"sort"
)

// factor is one symbol raised to a positive integer power.
type factor struct {
	sym string
	exp int
}

// mono is a product of factors, sorted by symbol name ascending.
// The empty mono is the constant monomial 1.
type mono []factor

// term is a non-zero rational coefficient times a monomial.
type term struct {
	coef *big.Rat
	mon  mono
}

// poly is a canonical multivariate polynomial.
type poly []term

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
)

// ---------------------------------------------------------------- monomials

// degree returns the total degree of m.
func (m mono) degree() int {
	d := 0
	for _, f := range m {
		d += f.exp
	}

	return d
}

// monoCmp orders monomials graded-lex: higher total degree first, ties broken
// by comparing exponent vectors variable-by-variable in alphabetical order
// (larger exponent on the earlier variable wins). Returns +1 if a > b,
// -1 if a < b, 0 if equal.
func monoCmp(a, b mono) int {
	da, db := a.degree(), b.degree()
	if da != db {
		if da > db {
			return 1
		}

		return -1
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		fa, fb := a[i], b[j]
		if fa.sym != fb.sym {
			// The earlier variable name is present in one monomial only;
			// that monomial is lex-greater.
			if fa.sym < fb.sym {
				return 1
			}

			return -1
		}
		if fa.exp != fb.exp {
			if fa.exp > fb.exp {
				return 1
			}

			return -1
		}
		i++
		j++
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	default:
		return 0
	}
}

// monoMul multiplies two monomials (merge of sorted factor lists).
func monoMul(a, b mono) mono {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(mono, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].sym == b[j].sym:
			out = append(out, factor{sym: a[i].sym, exp: a[i].exp + b[j].exp})
			i++
			j++
		case a[i].sym < b[j].sym:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// monoDiv returns a/b and true when b divides a, nil and false otherwise.
func monoDiv(a, b mono) (mono, bool) {
	out := make(mono, 0, len(a))
	i := 0
	for _, fb := range b {
		for i < len(a) && a[i].sym < fb.sym {
			out = append(out, a[i])
			i++
		}
		if i >= len(a) || a[i].sym != fb.sym || a[i].exp < fb.exp {
			return nil, false
		}
		if rest := a[i].exp - fb.exp; rest > 0 {
			out = append(out, factor{sym: a[i].sym, exp: rest})
		}
		i++
	}
	out = append(out, a[i:]...)

	return out, true
}

// monoGCD returns the factor-wise minimum of a and b.
func monoGCD(a, b mono) mono {
	out := make(mono, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].sym == b[j].sym:
			e := a[i].exp
			if b[j].exp < e {
				e = b[j].exp
			}
			out = append(out, factor{sym: a[i].sym, exp: e})
			i++
			j++
		case a[i].sym < b[j].sym:
			i++
		default:
			j++
		}
	}

	return out
}

// -------------------------------------------------------------- polynomials

func polyZero() poly { return poly{} }

func polyOne() poly { return poly{term{coef: ratOne, mon: nil}} }

func polyConst(r *big.Rat) poly {
	if r.Sign() == 0 {
		return polyZero()
	}

	return poly{term{coef: new(big.Rat).Set(r), mon: nil}}
}

func polySym(name string) poly {
	return poly{term{coef: ratOne, mon: mono{{sym: name, exp: 1}}}}
}

func (p poly) isZero() bool { return len(p) == 0 }

// isConst reports whether p is a constant and returns its value.
func (p poly) isConst() (*big.Rat, bool) {
	if len(p) == 0 {
		return ratZero, true
	}
	if len(p) == 1 && len(p[0].mon) == 0 {
		return p[0].coef, true
	}

	return nil, false
}

// sortCombine sorts raw terms into canonical order, merges equal monomials
// and drops zero coefficients. The workhorse behind every poly operation.
func sortCombine(raw []term) poly {
	if len(raw) == 0 {
		return polyZero()
	}
	sort.SliceStable(raw, func(i, j int) bool {
		return monoCmp(raw[i].mon, raw[j].mon) > 0
	})
	out := make(poly, 0, len(raw))
	for _, t := range raw {
		if n := len(out); n > 0 && monoCmp(out[n-1].mon, t.mon) == 0 {
			sum := new(big.Rat).Add(out[n-1].coef, t.coef)
			if sum.Sign() == 0 {
				out = out[:n-1]
			} else {
				out[n-1] = term{coef: sum, mon: t.mon}
			}
			continue
		}
		if t.coef.Sign() != 0 {
			out = append(out, t)
		}
	}

	return out
}

func polyAdd(a, b poly) poly {
	raw := make([]term, 0, len(a)+len(b))
	raw = append(raw, a...)
	raw = append(raw, b...)

	return sortCombine(raw)
}

func polyNeg(a poly) poly {
	out := make(poly, len(a))
	for i, t := range a {
		out[i] = term{coef: new(big.Rat).Neg(t.coef), mon: t.mon}
	}

	return out
}

func polySub(a, b poly) poly { return polyAdd(a, polyNeg(b)) }

func polyMul(a, b poly) poly {
	if a.isZero() || b.isZero() {
		return polyZero()
	}
	raw := make([]term, 0, len(a)*len(b))
	for _, ta := range a {
		for _, tb := range b {
			raw = append(raw, term{
				coef: new(big.Rat).Mul(ta.coef, tb.coef),
				mon:  monoMul(ta.mon, tb.mon),
			})
		}
	}

	return sortCombine(raw)
}

// polyMulTerm multiplies every term of a by t.
func polyMulTerm(a poly, t term) poly {
	out := make(poly, len(a))
	for i, ta := range a {
		out[i] = term{
			coef: new(big.Rat).Mul(ta.coef, t.coef),
			mon:  monoMul(ta.mon, t.mon),
		}
	}

	return out
}

// polyScale multiplies every coefficient by r (r must be non-zero).
func polyScale(a poly, r *big.Rat) poly {
	out := make(poly, len(a))
	for i, t := range a {
		out[i] = term{coef: new(big.Rat).Mul(t.coef, r), mon: t.mon}
	}

	return out
}

// polyDivExact performs multivariate polynomial long division and reports
// whether d divides n with zero remainder. Graded-lex leading terms make the
// remainder strictly decrease, so the loop terminates.
func polyDivExact(n, d poly) (poly, bool) {
	if d.isZero() {
		return nil, false
	}
	quo := make([]term, 0)
	rem := n
	for !rem.isZero() {
		qm, ok := monoDiv(rem[0].mon, d[0].mon)
		if !ok {
			return nil, false
		}
		qt := term{coef: new(big.Rat).Quo(rem[0].coef, d[0].coef), mon: qm}
		quo = append(quo, qt)
		rem = polySub(rem, polyMulTerm(d, qt))
	}

	return sortCombine(quo), true
}

// polyContent returns the monomial common to every term of p
// (the factor-wise minimum), or nil when p is zero or has a constant term.
func polyContent(p poly) mono {
	if p.isZero() {
		return nil
	}
	g := p[0].mon
	for _, t := range p[1:] {
		if len(g) == 0 {
			return nil
		}
		g = monoGCD(g, t.mon)
	}
	if len(g) == 0 {
		return nil
	}

	return g
}

// polyShiftDown divides every term of p by the monomial g (g must divide
// every term; guaranteed by polyContent).
func polyShiftDown(p poly, g mono) poly {
	if len(g) == 0 {
		return p
	}
	out := make(poly, len(p))
	for i, t := range p {
		m, _ := monoDiv(t.mon, g)
		out[i] = term{coef: t.coef, mon: m}
	}

	return out
}

func polyEqual(a, b poly) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].coef.Cmp(b[i].coef) != 0 || monoCmp(a[i].mon, b[i].mon) != 0 {
			return false
		}
	}

	return true
}
