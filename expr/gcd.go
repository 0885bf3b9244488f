// Polynomial GCD machinery backing the quotient reduction in canonical.
//
// The algorithm is the classical primitive Euclidean remainder sequence:
// view both polynomials as univariate in their alphabetically first variable
// with polynomial coefficients in the remaining ones, run Euclid on
// pseudo-remainders, and strip contents recursively. Recursion depth is the
// number of distinct variables; the inner loop strictly decreases the degree
// in the main variable.

package expr

// upoly views a multivariate polynomial as univariate in one symbol:
// index = degree in the main variable, entry = coefficient polynomial over
// the remaining variables. The leading (highest-index) entry is non-zero.
type upoly []poly

func (u upoly) isZero() bool { return len(u) == 0 }

func (u upoly) deg() int { return len(u) - 1 }

func (u upoly) lead() poly { return u[len(u)-1] }

// norm trims zero leading coefficients.
func (u upoly) norm() upoly {
	n := len(u)
	for n > 0 && u[n-1].isZero() {
		n--
	}

	return u[:n]
}

// mainSymbol returns the alphabetically first symbol of p, or "" for a
// constant.
func mainSymbol(p poly) string {
	best := ""
	for _, t := range p {
		for _, f := range t.mon {
			if best == "" || f.sym < best {
				best = f.sym
			}
		}
	}

	return best
}

// toUni regroups p by its degree in x. Distinct monomials of p stay distinct
// inside their coefficient polynomial, so no entry cancels to zero.
func toUni(p poly, x string) upoly {
	maxDeg := 0
	grouped := make(map[int][]term)
	for _, t := range p {
		deg := 0
		rest := make(mono, 0, len(t.mon))
		for _, f := range t.mon {
			if f.sym == x {
				deg = f.exp
			} else {
				rest = append(rest, f)
			}
		}
		if len(rest) == 0 {
			rest = nil
		}
		grouped[deg] = append(grouped[deg], term{coef: t.coef, mon: rest})
		if deg > maxDeg {
			maxDeg = deg
		}
	}
	u := make(upoly, maxDeg+1)
	for d := range u {
		u[d] = sortCombine(grouped[d])
	}

	return u
}

// fromUni rebuilds the flat polynomial sum of u[d]·x^d.
func fromUni(u upoly, x string) poly {
	raw := make([]term, 0)
	for d, c := range u {
		for _, t := range c {
			m := t.mon
			if d > 0 {
				m = monoMul(m, mono{{sym: x, exp: d}})
			}
			raw = append(raw, term{coef: t.coef, mon: m})
		}
	}

	return sortCombine(raw)
}

func uniMulCoef(u upoly, c poly) upoly {
	out := make(upoly, len(u))
	for i, p := range u {
		out[i] = polyMul(p, c)
	}

	return out.norm()
}

func uniSub(a, b upoly) upoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(upoly, n)
	for i := range out {
		pa, pb := polyZero(), polyZero()
		if i < len(a) {
			pa = a[i]
		}
		if i < len(b) {
			pb = b[i]
		}
		out[i] = polySub(pa, pb)
	}

	return out.norm()
}

// uniShift multiplies u by x^k.
func uniShift(u upoly, k int) upoly {
	if u.isZero() || k == 0 {
		return u
	}
	out := make(upoly, len(u)+k)
	for i := range out[:k] {
		out[i] = polyZero()
	}
	copy(out[k:], u)

	return out
}

// prem returns the pseudo-remainder of a by b (b non-zero): a is scaled by
// the leading coefficient of b as needed, so every cancellation is exact and
// the degree strictly decreases each round.
func prem(a, b upoly) upoly {
	d := b.lead()
	for !a.isZero() && a.deg() >= b.deg() {
		shift := a.deg() - b.deg()
		a = uniSub(uniMulCoef(a, d), uniShift(uniMulCoef(b, a.lead()), shift))
	}

	return a
}

// uniContent returns the recursive GCD of the non-zero coefficients.
func uniContent(u upoly) poly {
	g := polyZero()
	for _, c := range u {
		if !c.isZero() {
			g = polyGCD(g, c)
		}
	}

	return g
}

// uniDivContent divides every coefficient by c exactly.
func uniDivContent(u upoly, c poly) upoly {
	out := make(upoly, len(u))
	for i, p := range u {
		if p.isZero() {
			out[i] = p
			continue
		}
		q, _ := polyDivExact(p, c)
		out[i] = q
	}

	return out
}

func uniPrimitive(u upoly) upoly {
	if u.isZero() {
		return u
	}

	return uniDivContent(u, uniContent(u))
}

// polyGCD returns a greatest common divisor of a and b over the rationals,
// unique up to a constant factor (canonical normalizes afterwards).
// gcd(0, p) = p; non-zero constants are units, so their GCD is 1.
func polyGCD(a, b poly) poly {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	if _, constant := a.isConst(); constant {
		return polyOne()
	}
	if _, constant := b.isConst(); constant {
		return polyOne()
	}

	x := mainSymbol(a)
	if sb := mainSymbol(b); sb < x {
		x = sb
	}
	ua, ub := toUni(a, x), toUni(b, x)
	ca, cb := uniContent(ua), uniContent(ub)
	cg := polyGCD(ca, cb)
	pa, pb := uniDivContent(ua, ca), uniDivContent(ub, cb)

	for !pb.isZero() {
		r := uniPrimitive(prem(pa, pb))
		pa, pb = pb, r
	}

	return polyMul(cg, fromUni(uniPrimitive(pa), x))
}
