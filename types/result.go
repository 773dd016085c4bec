package types

// Result represents the outcome of evaluating a literal, operand or expression.
// On failure Val is Absent and Error/Detail describe what went wrong.
type Result struct {
	Val    Value
	Error  ErrorCode
	Detail string // offending text (token, operator, expression)
}

// Ok creates a successful Result
func Ok(v Value) Result {
	return Result{Val: v, Error: E_NONE}
}

// Err creates a failed Result carrying the absent value
func Err(code ErrorCode, detail string) Result {
	return Result{Val: Absent, Error: code, Detail: detail}
}

// IsNormal returns true if evaluation succeeded
func (r Result) IsNormal() bool {
	return r.Error == E_NONE
}

// IsError returns true if evaluation failed
func (r Result) IsError() bool {
	return r.Error != E_NONE
}

// Value returns the result's value, substituting Absent for a nil Val
func (r Result) Value() Value {
	if r.Val == nil {
		return Absent
	}
	return r.Val
}
