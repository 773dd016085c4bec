package types

// CharValue represents a CHAR value
type CharValue struct {
	Val rune
}

// NewChar creates a new CharValue
func NewChar(val rune) CharValue {
	return CharValue{Val: val}
}

// Type returns the type tag for characters
func (c CharValue) Type() TypeTag {
	return TYPE_CHAR
}

// String returns the character itself
func (c CharValue) String() string {
	return string(c.Val)
}

// Equal checks deep equality
func (c CharValue) Equal(other Value) bool {
	o, ok := other.(CharValue)
	return ok && c.Val == o.Val
}

func (CharValue) value() {}
