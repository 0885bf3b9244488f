package parse

import (
	"fmt"
	"math/big"
)

// ParseExpression tokenizes and parses a full matrix-algebra expression.
func ParseExpression(src string) (Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse builds the AST from an expression-mode token stream. The stream must
// end with the END token Tokenize emits; anything left over after a complete
// expression is ErrSyntax.
func Parse(tokens []Token) (Node, error) {
	return run(tokens, false)
}

// ParseCell tokenizes and parses a single matrix-cell expression: identifiers
// are free symbols, function calls are rejected, and an identifier followed
// by '(' multiplies (a(b+1) means a*(b+1), as the original input grids did).
func ParseCell(src string) (Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}

	return run(tokens, true)
}

func run(tokens []Token, cellMode bool) (Node, error) {
	p := &parser{tokens: tokens, cellMode: cellMode}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != KindEnd {
		return nil, p.errSyntax(tok, "end of input")
	}

	return root, nil
}

// MaxNestingDepth bounds the recursion of the parser itself: parentheses
// and unary-minus chains nested deeper than this are rejected with
// ErrNestingDepth rather than left to exhaust the goroutine stack.
const MaxNestingDepth = 512

// parser is a plain recursive-descent parser over the token slice.
type parser struct {
	tokens   []Token
	i        int
	depth    int
	cellMode bool
}

func (p *parser) peek() Token { return p.tokens[p.i] }

func (p *parser) next() Token {
	tok := p.tokens[p.i]
	if tok.Kind != KindEnd {
		p.i++
	}

	return tok
}

func (p *parser) errSyntax(tok Token, expected string) error {
	found := tok.Kind.String()
	if tok.Kind == KindNumber || tok.Kind == KindIdent {
		found = fmt.Sprintf("%q", tok.Text)
	}

	return fmt.Errorf("Parse: position %d: expected %s, found %s: %w",
		tok.Pos, expected, found, ErrSyntax)
}

// parseExpr handles the lowest precedence level: term (('+'|'-') term)*.
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		var op Op
		switch tok.Kind {
		case KindPlus:
			op = OpAdd
		case KindMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{OpPos: tok.Pos, Op: op, Left: left, Right: right}
	}
}

// parseTerm handles '*', '/' and implicit multiplication: a factor directly
// followed by a factor-starting token (NUMBER, IDENT, '(') multiplies.
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.Kind {
		case KindStar, KindSlash:
			p.next()
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			op := OpMul
			if tok.Kind == KindSlash {
				op = OpDiv
			}
			left = &Binary{OpPos: tok.Pos, Op: op, Left: left, Right: right}
		case KindNumber, KindIdent, KindLParen:
			right, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			left = &Binary{OpPos: tok.Pos, Op: OpMul, Left: left, Right: right}
		default:
			return left, nil
		}
	}
}

// parseFactor handles unary minus, which binds tighter than binary '+'/'-'
// but looser than '^': -a^2 parses as -(a^2). Every recursion cycle of the
// grammar passes through here, so this is where the nesting bound lives.
func (p *parser) parseFactor() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNestingDepth {
		return nil, fmt.Errorf("Parse: position %d: nesting deeper than %d: %w",
			p.peek().Pos, MaxNestingDepth, ErrNestingDepth)
	}

	if tok := p.peek(); tok.Kind == KindMinus {
		p.next()
		x, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		return &Negate{MinusPos: tok.Pos, X: x}, nil
	}

	return p.parsePower()
}

// parsePower handles atom ('^' atom)?.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind == KindCaret {
		p.next()
		exp, err := p.parseAtom()
		if err != nil {
			return nil, err
		}

		return &Binary{OpPos: tok.Pos, Op: OpPow, Left: base, Right: exp}, nil
	}

	return base, nil
}

func (p *parser) parseAtom() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case KindNumber:
		p.next()
		value, ok := new(big.Rat).SetString(tok.Text)
		if !ok {
			return nil, fmt.Errorf("Parse: position %d: %q: %w", tok.Pos, tok.Text, ErrNumberFormat)
		}

		return &Number{ValuePos: tok.Pos, Value: value}, nil

	case KindIdent:
		p.next()
		if p.peek().Kind != KindLParen {
			return &Variable{NamePos: tok.Pos, Name: tok.Text}, nil
		}
		fn, reserved := FuncByName(tok.Text)
		if reserved {
			if p.cellMode {
				return nil, fmt.Errorf("Parse: position %d: %q: %w", tok.Pos, tok.Text, ErrCellFunction)
			}

			return p.parseCallArg(tok, fn)
		}
		if p.cellMode {
			// Cell grammar: symbol adjacent to '(' multiplies; the term
			// loop picks up the parenthesized factor.
			return &Variable{NamePos: tok.Pos, Name: tok.Text}, nil
		}

		return nil, fmt.Errorf("Parse: position %d: %q: %w", tok.Pos, tok.Text, ErrUnknownFunction)

	case KindLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.Kind != KindRParen {
			return nil, p.errSyntax(closing, "')'")
		}
		p.next()

		return inner, nil

	default:
		return nil, p.errSyntax(tok, "an operand")
	}
}

// parseCallArg consumes '(' expr ')' after a resolved function keyword.
func (p *parser) parseCallArg(name Token, fn Func) (Node, error) {
	p.next() // consume '('
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if closing := p.peek(); closing.Kind != KindRParen {
		return nil, p.errSyntax(closing, "')'")
	}
	p.next()

	return &Call{NamePos: name.Pos, Fn: fn, Arg: arg}, nil
}
