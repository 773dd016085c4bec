package parser

// TokenType distinguishes the two kinds of token an arithmetic chain is made of
type TokenType int

const (
	TOKEN_EOF     TokenType = iota
	TOKEN_OPERAND           // number literal or variable reference, possibly empty
	TOKEN_OPERATOR          // + - * /
)

// Operators is the set of characters that split an arithmetic chain
const Operators = "+-*/"

// Position represents a position in the source code
type Position struct {
	Line   int
	Column int
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_OPERAND:
		return "OPERAND"
	case TOKEN_OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether s is exactly one of + - * /
func IsOperator(s string) bool {
	return len(s) == 1 && isOperatorChar(s[0])
}

func isOperatorChar(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}
