package types

import (
	"math"
	"testing"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"int", NewInt(42), "42"},
		{"negative int", NewInt(-7), "-7"},
		{"whole float", NewFloat(5), "5"},
		{"fractional float", NewFloat(2.5), "2.5"},
		{"single precision", NewFloat(0.1), "0.1"},
		{"nan", NewFloat(float32(math.NaN())), "NaN"},
		{"inf", NewFloat(float32(math.Inf(1))), "Infinity"},
		{"char", NewChar('x'), "x"},
		{"true", NewBool(true), "True"},
		{"false", NewBool(false), "False"},
		{"absent", Absent, "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueEqualityIsVariantStrict(t *testing.T) {
	if NewInt(5).Equal(NewFloat(5)) {
		t.Error("INT 5 must not equal FLOAT 5")
	}
	if !NewFloat(2.5).Equal(NewFloat(2.5)) {
		t.Error("equal floats should compare equal")
	}
	if NewFloat(float32(math.NaN())).Equal(NewFloat(float32(math.NaN()))) {
		t.Error("NaN must not equal NaN")
	}
	if !Absent.Equal(AbsentValue{}) {
		t.Error("absent values should compare equal")
	}
	if NewChar('a').Equal(NewChar('b')) {
		t.Error("different chars compared equal")
	}
}

func TestValueTypeTags(t *testing.T) {
	tests := []struct {
		val  Value
		want TypeTag
	}{
		{NewInt(1), TYPE_INT},
		{NewFloat(1), TYPE_FLOAT},
		{NewChar('c'), TYPE_CHAR},
		{NewBool(true), TYPE_BOOL},
		{Absent, TYPE_ABSENT},
	}
	for _, tt := range tests {
		if tt.val.Type() != tt.want {
			t.Errorf("%v: Type() = %s, want %s", tt.val, tt.val.Type(), tt.want)
		}
	}
}

func TestParseTypeTag(t *testing.T) {
	for _, name := range []string{"INT", "FLOAT", "CHAR", "BOOL"} {
		tag, ok := ParseTypeTag(name)
		if !ok || tag.String() != name {
			t.Errorf("ParseTypeTag(%q) = %s, %v", name, tag, ok)
		}
	}
	for _, name := range []string{"int", "STRING", "ABSENT", ""} {
		if tag, ok := ParseTypeTag(name); ok || tag != TYPE_INVALID {
			t.Errorf("ParseTypeTag(%q) should be invalid, got %s", name, tag)
		}
	}
}
