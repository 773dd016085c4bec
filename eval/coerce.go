package eval

import (
	"blockrun/types"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Coerce converts a declaration literal to a value of the declared type.
//
//	INT   signed base-10 integer
//	FLOAT base-10 floating point, single precision
//	CHAR  first character after stripping surrounding single quotes
//	BOOL  true iff the text, without double quotes and uppercased, is TRUE
//
// Any other type name raises E_TYPE and yields the absent value.
func Coerce(typeName, literal string) types.Result {
	tag, ok := types.ParseTypeTag(typeName)
	if !ok {
		return types.Err(types.E_TYPE, typeName)
	}

	switch tag {
	case types.TYPE_INT:
		n, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return types.Err(types.E_NUM, literal)
		}
		return types.Ok(types.NewInt(n))

	case types.TYPE_FLOAT:
		f, ok := parseFloat32(literal)
		if !ok {
			return types.Err(types.E_NUM, literal)
		}
		return types.Ok(types.NewFloat(f))

	case types.TYPE_CHAR:
		r, size := utf8.DecodeRuneInString(strings.Trim(literal, "'"))
		if size == 0 {
			return types.Err(types.E_CHAR, literal)
		}
		return types.Ok(types.NewChar(r))

	case types.TYPE_BOOL:
		text := cases.Upper(language.Und).String(strings.Trim(literal, `"`))
		return types.Ok(types.NewBool(text == "TRUE"))
	}

	return types.Err(types.E_TYPE, typeName)
}

// parseNumber reads an integer or, failing that, a float literal, widened
// to the float domain the chained evaluator folds in.
func parseNumber(s string) (float32, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float32(n), true
	}
	return parseFloat32(s)
}

// parseFloat32 accepts plain decimal notation only: no hex, inf, nan or
// digit separators.
func parseFloat32(s string) (float32, bool) {
	if s == "" || strings.IndexFunc(s, notDecimalRune) >= 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

func notDecimalRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}
	return true
}
