package parse

// Kind enumerates the token kinds of the expression alphabet.
type Kind int

const (
	// KindNumber is an integer or decimal literal (no scientific notation).
	KindNumber Kind = iota
	// KindIdent is a run of ASCII letters: a matrix name, a cell symbol,
	// or one of the reserved function keywords.
	KindIdent
	// KindPlus is '+'.
	KindPlus
	// KindMinus is '-'.
	KindMinus
	// KindStar is '*'.
	KindStar
	// KindSlash is '/'.
	KindSlash
	// KindCaret is '^'.
	KindCaret
	// KindLParen is '('.
	KindLParen
	// KindRParen is ')'.
	KindRParen
	// KindEnd marks end of input; every token stream carries exactly one.
	KindEnd
)

// String returns a human-readable name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindIdent:
		return "identifier"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	case KindStar:
		return "'*'"
	case KindSlash:
		return "'/'"
	case KindCaret:
		return "'^'"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	case KindEnd:
		return "end of input"
	default:
		return "unknown"
	}
}

// Token is one lexeme with its byte offset in the source text.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}
