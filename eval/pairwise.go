package eval

import (
	"blockrun/types"
	"fmt"
	"math"
)

// EvaluatePairwiseTyped applies one operator to two values, keeping the
// operands' numeric type:
//
//	INT   op INT   -> INT   (+ - * / %, / truncates toward zero)
//	FLOAT op FLOAT -> FLOAT (% is the float remainder)
//	INT   op FLOAT -> FLOAT (the INT side is promoted)
//	FLOAT op INT   -> FLOAT
//
// A zero divisor for / or % raises E_DIV. Any other operand variants
// (CHAR, BOOL, absent) raise E_OPTYPES.
func EvaluatePairwiseTyped(op string, left, right types.Value) types.Result {
	if left == nil {
		left = types.Absent
	}
	if right == nil {
		right = types.Absent
	}

	switch l := left.(type) {
	case types.IntValue:
		switch r := right.(type) {
		case types.IntValue:
			return intArith(op, l.Val, r.Val)
		case types.FloatValue:
			return floatArith(op, float32(l.Val), r.Val)
		}
	case types.FloatValue:
		switch r := right.(type) {
		case types.IntValue:
			return floatArith(op, l.Val, float32(r.Val))
		case types.FloatValue:
			return floatArith(op, l.Val, r.Val)
		}
	}

	return types.Err(types.E_OPTYPES, fmt.Sprintf("%s %s %s", left.Type(), op, right.Type()))
}

func intArith(op string, l, r int64) types.Result {
	switch op {
	case "+":
		return types.Ok(types.NewInt(l + r))
	case "-":
		return types.Ok(types.NewInt(l - r))
	case "*":
		return types.Ok(types.NewInt(l * r))
	case "/", "%":
		if r == 0 {
			return types.Err(types.E_DIV, fmt.Sprintf("%d%s%d", l, op, r))
		}
		if op == "/" {
			return types.Ok(types.NewInt(l / r))
		}
		return types.Ok(types.NewInt(l % r))
	default:
		return types.Err(types.E_OP, op)
	}
}

func floatArith(op string, l, r float32) types.Result {
	switch op {
	case "+":
		return types.Ok(types.NewFloat(l + r))
	case "-":
		return types.Ok(types.NewFloat(l - r))
	case "*":
		return types.Ok(types.NewFloat(l * r))
	case "/", "%":
		if r == 0 {
			return types.Err(types.E_DIV, fmt.Sprintf("%s%s%s",
				types.NewFloat(l), op, types.NewFloat(r)))
		}
		if op == "/" {
			return types.Ok(types.NewFloat(l / r))
		}
		return types.Ok(types.NewFloat(float32(math.Mod(float64(l), float64(r)))))
	default:
		return types.Err(types.E_OP, op)
	}
}
