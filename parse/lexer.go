package parse

import "fmt"

// Tokenize converts raw expression text into tokens, left to right, skipping
// whitespace. Digits with at most one decimal point form a NUMBER (a leading
// dot as in ".5" is accepted); ASCII letter runs form an IDENT; the six
// operator characters map one-to-one; input ends with a single END token.
// Returns ErrLex on any other character and ErrNumberFormat on a literal
// with two decimal points. Complexity: O(len(src)).
func Tokenize(src string) ([]Token, error) {
	tokens := make([]Token, 0, len(src)/2+1)
	i := 0
	for i < len(src) {
		ch := src[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '+':
			tokens = append(tokens, Token{Kind: KindPlus, Text: "+", Pos: i})
			i++
		case ch == '-':
			tokens = append(tokens, Token{Kind: KindMinus, Text: "-", Pos: i})
			i++
		case ch == '*':
			tokens = append(tokens, Token{Kind: KindStar, Text: "*", Pos: i})
			i++
		case ch == '/':
			tokens = append(tokens, Token{Kind: KindSlash, Text: "/", Pos: i})
			i++
		case ch == '^':
			tokens = append(tokens, Token{Kind: KindCaret, Text: "^", Pos: i})
			i++
		case ch == '(':
			tokens = append(tokens, Token{Kind: KindLParen, Text: "(", Pos: i})
			i++
		case ch == ')':
			tokens = append(tokens, Token{Kind: KindRParen, Text: ")", Pos: i})
			i++
		case isDigit(ch) || ch == '.' && i+1 < len(src) && isDigit(src[i+1]):
			start := i
			dots := 0
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				if src[i] == '.' {
					dots++
					if dots > 1 {
						return nil, fmt.Errorf("Tokenize: position %d: %w", i, ErrNumberFormat)
					}
				}
				i++
			}
			tokens = append(tokens, Token{Kind: KindNumber, Text: src[start:i], Pos: start})
		case isLetter(ch):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: KindIdent, Text: src[start:i], Pos: start})
		default:
			return nil, fmt.Errorf("Tokenize: position %d: %q: %w", i, string(ch), ErrLex)
		}
	}
	tokens = append(tokens, Token{Kind: KindEnd, Pos: len(src)})

	return tokens, nil
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
