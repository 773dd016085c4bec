package eval

import (
	"blockrun/types"
	"testing"
)

func TestEvaluatePairwiseTyped(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		left  types.Value
		right types.Value
		want  types.Value
	}{
		{"int add", "+", types.NewInt(3), types.NewInt(4), types.NewInt(7)},
		{"int sub", "-", types.NewInt(3), types.NewInt(4), types.NewInt(-1)},
		{"int mul", "*", types.NewInt(3), types.NewInt(4), types.NewInt(12)},
		{"int div truncates", "/", types.NewInt(7), types.NewInt(2), types.NewInt(3)},
		{"int div toward zero", "/", types.NewInt(-7), types.NewInt(2), types.NewInt(-3)},
		{"int mod", "%", types.NewInt(7), types.NewInt(3), types.NewInt(1)},
		{"float add", "+", types.NewFloat(1.5), types.NewFloat(2), types.NewFloat(3.5)},
		{"float div", "/", types.NewFloat(7), types.NewFloat(2), types.NewFloat(3.5)},
		{"float mod", "%", types.NewFloat(7.5), types.NewFloat(2), types.NewFloat(1.5)},
		{"int+float promotes", "+", types.NewInt(3), types.NewFloat(2), types.NewFloat(5)},
		{"float*int promotes", "*", types.NewFloat(1.5), types.NewInt(2), types.NewFloat(3)},
		{"int/float promotes", "/", types.NewInt(1), types.NewFloat(4), types.NewFloat(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluatePairwiseTyped(tt.op, tt.left, tt.right)
			if !res.IsNormal() {
				t.Fatalf("unexpected error %s", res.Error)
			}
			if !res.Val.Equal(tt.want) {
				t.Errorf("got %v (%s), want %v (%s)", res.Val, res.Val.Type(), tt.want, tt.want.Type())
			}
		})
	}
}

func TestEvaluatePairwiseTypedErrors(t *testing.T) {
	tests := []struct {
		name  string
		op    string
		left  types.Value
		right types.Value
		code  types.ErrorCode
	}{
		{"int div zero", "/", types.NewInt(5), types.NewInt(0), types.E_DIV},
		{"int mod zero", "%", types.NewInt(5), types.NewInt(0), types.E_DIV},
		{"float div zero", "/", types.NewFloat(5), types.NewFloat(0), types.E_DIV},
		{"mixed div zero", "/", types.NewFloat(5), types.NewInt(0), types.E_DIV},
		{"int bad op", "^", types.NewInt(1), types.NewInt(2), types.E_OP},
		{"float bad op", "&", types.NewFloat(1), types.NewFloat(2), types.E_OP},
		{"char operand", "+", types.NewChar('a'), types.NewInt(1), types.E_OPTYPES},
		{"bool operand", "+", types.NewInt(1), types.NewBool(true), types.E_OPTYPES},
		{"absent operand", "+", types.Absent, types.NewInt(1), types.E_OPTYPES},
		{"nil operand", "+", types.NewInt(1), nil, types.E_OPTYPES},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluatePairwiseTyped(tt.op, tt.left, tt.right)
			if res.Error != tt.code {
				t.Errorf("got %s, want %s", res.Error, tt.code)
			}
		})
	}
}

// The two evaluators disagree on result type by design of the language:
// bare expressions always produce FLOAT, DISPLAY arithmetic keeps INT.
// Both spellings happen to print the same for whole numbers.
func TestChainedAndPairwiseDiffer(t *testing.T) {
	chained := EvaluateChained("7/2")
	pairwise := EvaluatePairwiseTyped("/", types.NewInt(7), types.NewInt(2))

	if chained.Val.String() != "3.5" {
		t.Errorf("chained 7/2 = %v, want 3.5", chained.Val)
	}
	if pairwise.Val.String() != "3" {
		t.Errorf("pairwise 7/2 = %v, want 3", pairwise.Val)
	}

	sumChained := EvaluateChained("2+3")
	sumPairwise := EvaluatePairwiseTyped("+", types.NewInt(2), types.NewInt(3))
	if sumChained.Val.Type() != types.TYPE_FLOAT || sumPairwise.Val.Type() != types.TYPE_INT {
		t.Errorf("types = %s/%s, want FLOAT/INT", sumChained.Val.Type(), sumPairwise.Val.Type())
	}
	if sumChained.Val.String() != sumPairwise.Val.String() {
		t.Errorf("whole-number results should print alike: %v vs %v", sumChained.Val, sumPairwise.Val)
	}
}
