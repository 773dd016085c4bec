package types

// BoolValue represents a BOOL value
type BoolValue struct {
	Val bool
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}

// Type returns the type tag for booleans
func (b BoolValue) Type() TypeTag {
	return TYPE_BOOL
}

// String renders booleans capitalised, as DISPLAY has always shown them
func (b BoolValue) String() string {
	if b.Val {
		return "True"
	}
	return "False"
}

// Equal checks deep equality
func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && b.Val == o.Val
}

func (BoolValue) value() {}
