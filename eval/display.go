package eval

import (
	"blockrun/parser"
	"blockrun/types"
	"strconv"
	"strings"
)

// operandStripper removes the grouping and quote characters operands may carry
var operandStripper = strings.NewReplacer("(", "", ")", "", `"`, "", "'", "")

// Render expands a display template against the session store and returns
// the rendered text with any reports raised along the way.
func (in *Interpreter) Render(template string) (string, []types.Report) {
	ctx := &execContext{kind: parser.StmtDisplay}
	text := in.render(template, ctx)
	return text, ctx.reports
}

// render emits each '&'-separated segment in turn:
//
//	$...           line break
//	[...  or ...]  nothing
//	variable name  its value, NULL when absent
//	a+b, a*b-c     typed pairwise arithmetic, folded left to right
//	anything else  the text with double quotes removed
//
// A segment whose arithmetic fails emits nothing.
func (in *Interpreter) render(template string, ctx *execContext) string {
	var out strings.Builder

	for _, seg := range parser.SplitTemplate(template) {
		switch {
		case strings.HasPrefix(seg, "$"):
			out.WriteString("\n")

		case strings.HasPrefix(seg, "[") || strings.HasSuffix(seg, "]"):
			// directive placeholder

		case in.store.Has(seg):
			v, _ := in.store.Lookup(seg)
			out.WriteString(v.String())

		case parser.ContainsOperator(seg):
			res := in.EvaluateSegment(seg)
			if res.IsError() {
				ctx.report(res)
				continue
			}
			out.WriteString(res.Val.String())

		default:
			out.WriteString(strings.ReplaceAll(seg, `"`, ""))
		}
	}

	return out.String()
}

// EvaluateSegment computes an arithmetic display segment. Operands are
// resolved with ResolveOperand and combined with EvaluatePairwiseTyped;
// "a+b" is one step, and longer chains fold strictly left to right with the
// running result keeping its INT or FLOAT type.
func (in *Interpreter) EvaluateSegment(seg string) types.Result {
	tokens := parser.Tokenize(seg)

	acc := in.ResolveOperand(tokens[0].Value)
	if acc.IsError() {
		return acc
	}

	for i := 1; i+1 < len(tokens); i += 2 {
		right := in.ResolveOperand(tokens[i+1].Value)
		if right.IsError() {
			return right
		}
		acc = EvaluatePairwiseTyped(tokens[i].Value, acc.Val, right.Val)
		if acc.IsError() {
			return acc
		}
	}

	return acc
}

// ResolveOperand turns a raw operand into a value. Parentheses and both
// quote kinds are stripped first; an integer literal wins over a variable of
// the same spelling. Unknown names raise E_VARNF.
func (in *Interpreter) ResolveOperand(raw string) types.Result {
	name := strings.TrimSpace(operandStripper.Replace(raw))

	if n, err := strconv.ParseInt(name, 10, 64); err == nil {
		return types.Ok(types.NewInt(n))
	}

	if v, ok := in.store.Lookup(name); ok {
		return types.Ok(v)
	}

	return types.Err(types.E_VARNF, name)
}
