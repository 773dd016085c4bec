package types

import (
	"math"
	"strconv"
)

// FloatValue represents a single-precision FLOAT value
type FloatValue struct {
	Val float32
}

// NewFloat creates a new FloatValue
func NewFloat(val float32) FloatValue {
	return FloatValue{Val: val}
}

// Type returns the type tag for floats
func (f FloatValue) Type() TypeTag {
	return TYPE_FLOAT
}

// String returns the shortest decimal that round-trips at single precision.
// Whole numbers print without a fractional part (5, not 5.0).
func (f FloatValue) String() string {
	v := float64(f.Val)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// Equal checks deep equality
// NaN is never equal to anything, matching IEEE 754
func (f FloatValue) Equal(other Value) bool {
	o, ok := other.(FloatValue)
	return ok && f.Val == o.Val
}

func (FloatValue) value() {}
