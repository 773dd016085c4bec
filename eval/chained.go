package eval

import (
	"blockrun/parser"
	"blockrun/types"
	"strings"
)

// EvaluateChained evaluates a bare arithmetic chain such as "2+3*4".
// Operators apply strictly left to right with no precedence, and the
// accumulator is always a single-precision float: "2+3*4" is 20, "7/2" is 3.5.
// This is the evaluator for bare expression statements and the declaration
// doubling shorthand; DISPLAY uses EvaluatePairwiseTyped instead.
func EvaluateChained(expr string) types.Result {
	return foldChain(expr, parser.SplitChain(expr))
}

// FoldChain folds pre-split tokens of the form number (operator number)*
func FoldChain(tokens []string) types.Result {
	return foldChain(strings.Join(tokens, ""), tokens)
}

func foldChain(expr string, tokens []string) types.Result {
	if len(tokens) == 0 {
		return types.Err(types.E_NUM, expr)
	}

	acc, ok := parseNumber(tokens[0])
	if !ok {
		return types.Err(types.E_NUM, expr)
	}

	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i]
		if i+1 >= len(tokens) {
			// Trailing operator with nothing to apply it to
			return types.Err(types.E_NUM, expr)
		}
		next, ok := parseNumber(tokens[i+1])
		if !ok {
			return types.Err(types.E_NUM, expr)
		}

		switch op {
		case "+":
			acc += next
		case "-":
			acc -= next
		case "*":
			acc *= next
		case "/":
			if next == 0 {
				return types.Err(types.E_DIV, expr)
			}
			acc /= next
		default:
			return types.Err(types.E_OP, op)
		}
	}

	return types.Ok(types.NewFloat(acc))
}
