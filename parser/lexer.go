package parser

import "strings"

// Lexer splits an arithmetic chain immediately before and after every
// operator character. Operand text between operators is returned verbatim
// (trimmed), so a chain always alternates operand, operator, operand, ...
// and "-5" yields an empty leading operand.
type Lexer struct {
	input    string
	position int // current position in input
	column   int
	emitted  TokenType
	done     bool
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, column: 1, emitted: TOKEN_OPERATOR}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	if l.done {
		return Token{Type: TOKEN_EOF, Position: Position{Line: 1, Column: l.column}}
	}

	// After an operand, the next token is the operator that ended it
	if l.emitted == TOKEN_OPERAND {
		if l.position >= len(l.input) {
			l.done = true
			return l.NextToken()
		}
		tok := Token{
			Type:     TOKEN_OPERATOR,
			Value:    l.input[l.position : l.position+1],
			Position: Position{Line: 1, Column: l.column},
		}
		l.position++
		l.column++
		l.emitted = TOKEN_OPERATOR
		return tok
	}

	start := l.position
	for l.position < len(l.input) && !isOperatorChar(l.input[l.position]) {
		l.position++
	}
	tok := Token{
		Type:     TOKEN_OPERAND,
		Value:    strings.TrimSpace(l.input[start:l.position]),
		Position: Position{Line: 1, Column: l.column},
	}
	l.column += l.position - start
	l.emitted = TOKEN_OPERAND
	return tok
}

// Tokenize returns every token of a chain, excluding EOF.
// The result has odd length: operands at even indexes, operators at odd ones.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// SplitChain returns the raw token texts of a chain with empty operands
// dropped, the form the chained evaluator folds over ("2+3" -> 2 + 3,
// "-5" -> - 5).
func SplitChain(input string) []string {
	var parts []string
	for _, tok := range Tokenize(input) {
		if tok.Type == TOKEN_OPERAND && tok.Value == "" {
			continue
		}
		parts = append(parts, tok.Value)
	}
	return parts
}

// ContainsOperator reports whether s contains any of + - * /
func ContainsOperator(s string) bool {
	return strings.ContainsAny(s, Operators)
}
