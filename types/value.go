package types

// Value is the closed set of runtime values: IntValue, FloatValue, CharValue,
// BoolValue and AbsentValue. The unexported marker keeps other packages from
// adding variants, so type switches over Value can be exhaustive.
type Value interface {
	Type() TypeTag
	String() string   // textual form used by DISPLAY and bare expressions
	Equal(Value) bool // same variant and same payload
	value()
}

// Absent is the shared AbsentValue instance
var Absent Value = AbsentValue{}

// IsAbsent reports whether v is missing or the absent sentinel
func IsAbsent(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(AbsentValue)
	return ok
}
