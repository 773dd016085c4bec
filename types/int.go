package types

import "strconv"

// IntValue represents an INT value
type IntValue struct {
	Val int64
}

// NewInt creates a new IntValue
func NewInt(val int64) IntValue {
	return IntValue{Val: val}
}

// Type returns the type tag for integers
func (i IntValue) Type() TypeTag {
	return TYPE_INT
}

// String returns the base-10 representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Equal checks deep equality
func (i IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	return ok && i.Val == o.Val
}

func (IntValue) value() {}
