package types

// AbsentValue is the result of a failed coercion or computation.
// It renders as NULL instead of aborting the run.
type AbsentValue struct{}

func (AbsentValue) Type() TypeTag {
	return TYPE_ABSENT
}

func (AbsentValue) String() string {
	return "NULL"
}

func (AbsentValue) Equal(other Value) bool {
	_, ok := other.(AbsentValue)
	return ok
}

func (AbsentValue) value() {}
