package expr

import (
	"math/big"
	"strconv"
	"strings"
)

// String renders the canonical textual form: terms in graded-lex order,
// products with explicit '*', powers with '^', e.g. "a^2 + 3*a - 1/2" or
// "(a + 1)/(a*b)". The output is deterministic: equal expressions render
// identically.
func (e Expr) String() string {
	n, d := e.numDen()
	if dc, ok := d.isConst(); ok && dc.Cmp(ratOne) == 0 {
		return renderPoly(n)
	}
	numStr := renderPoly(n)
	if len(n) > 1 {
		numStr = "(" + numStr + ")"
	}
	denStr := renderPoly(d)
	if len(d) > 1 || len(d) == 1 && len(d[0].mon) > 1 {
		denStr = "(" + denStr + ")"
	}

	return numStr + "/" + denStr
}

func renderPoly(p poly) string {
	if p.isZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range p {
		c := t.coef
		neg := c.Sign() < 0
		if i == 0 {
			if neg {
				b.WriteByte('-')
			}
		} else {
			if neg {
				b.WriteString(" - ")
			} else {
				b.WriteString(" + ")
			}
		}
		if neg {
			c = new(big.Rat).Neg(c)
		}
		b.WriteString(renderTerm(c, t.mon))
	}

	return b.String()
}

// renderTerm renders |coef|*mono; the coefficient is omitted when it is 1
// and parenthesized when it is a non-integer rational next to symbols.
func renderTerm(c *big.Rat, m mono) string {
	if len(m) == 0 {
		return c.RatString()
	}
	ms := renderMono(m)
	if c.Cmp(ratOne) == 0 {
		return ms
	}
	if c.IsInt() {
		return c.RatString() + "*" + ms
	}

	return "(" + c.RatString() + ")*" + ms
}

func renderMono(m mono) string {
	parts := make([]string, len(m))
	for i, f := range m {
		if f.exp == 1 {
			parts[i] = f.sym
		} else {
			parts[i] = f.sym + "^" + strconv.Itoa(f.exp)
		}
	}

	return strings.Join(parts, "*")
}
