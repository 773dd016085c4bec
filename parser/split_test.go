package parser

import (
	"reflect"
	"testing"
)

func TestCleanLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  INT a = 5  ", "INT a = 5"},
		{"INT a = 5 # five", "INT a = 5"},
		{"# whole line comment", ""},
		{`DISPLAY: "no # escape"`, `DISPLAY: "no`},
		{"\t\t", ""},
	}

	for _, tt := range tests {
		if got := CleanLine(tt.input); got != tt.want {
			t.Errorf("CleanLine(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\nc")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %q, want %q", got, want)
	}
}

func TestSplitDeclaration(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"INT a = 5", []string{"INT", "a", "5"}},
		{"INT a=5 b=3", []string{"INT", "a", "5", "b", "3"}},
		{"FLOAT x = 1.5, y = 2", []string{"FLOAT", "x", "1.5,", "y", "2"}},
		{"INT x = 5 + 5", []string{"INT", "x", "5", "+", "5"}},
		{"= =", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SplitDeclaration(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitDeclaration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitTemplate(t *testing.T) {
	got := SplitTemplate(`"A" & $ &  x+y &[note]`)
	want := []string{`"A"`, "$", "x+y", "[note]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTemplate = %q, want %q", got, want)
	}
}
