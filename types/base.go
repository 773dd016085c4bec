package types

// ErrorCode identifies a language-level error raised while interpreting a block
type ErrorCode int

const (
	E_NONE    ErrorCode = 0
	E_DECL    ErrorCode = 1
	E_TYPE    ErrorCode = 2
	E_NUM     ErrorCode = 3
	E_OP      ErrorCode = 4
	E_DIV     ErrorCode = 5
	E_OPTYPES ErrorCode = 6
	E_VARNF   ErrorCode = 7
	E_CHAR    ErrorCode = 8
)

// String returns the code's constant name (E_DIV, E_VARNF, ...)
func (e ErrorCode) String() string {
	switch e {
	case E_NONE:
		return "E_NONE"
	case E_DECL:
		return "E_DECL"
	case E_TYPE:
		return "E_TYPE"
	case E_NUM:
		return "E_NUM"
	case E_OP:
		return "E_OP"
	case E_DIV:
		return "E_DIV"
	case E_OPTYPES:
		return "E_OPTYPES"
	case E_VARNF:
		return "E_VARNF"
	case E_CHAR:
		return "E_CHAR"
	default:
		return "E_UNKNOWN"
	}
}

// Name returns the descriptive kind name used in reports and test suites
func (e ErrorCode) Name() string {
	switch e {
	case E_NONE:
		return "None"
	case E_DECL:
		return "MalformedDeclaration"
	case E_TYPE:
		return "InvalidType"
	case E_NUM:
		return "InvalidNumberFormat"
	case E_OP:
		return "InvalidOperator"
	case E_DIV:
		return "DivisionByZero"
	case E_OPTYPES:
		return "InvalidOperandTypes"
	case E_VARNF:
		return "VariableNotFound"
	case E_CHAR:
		return "InvalidCharLiteral"
	default:
		return "Unknown"
	}
}

// Message returns a human-readable message for an error code
func (e ErrorCode) Message() string {
	switch e {
	case E_NONE:
		return "No error"
	case E_DECL:
		return "Invalid variable declaration"
	case E_TYPE:
		return "Invalid variable type"
	case E_NUM:
		return "Invalid number format in expression"
	case E_OP:
		return "Invalid operator"
	case E_DIV:
		return "Division by zero error"
	case E_OPTYPES:
		return "Invalid operand types for arithmetic operation"
	case E_VARNF:
		return "Variable not found"
	case E_CHAR:
		return "Invalid character literal"
	default:
		return "Unknown error"
	}
}

var allCodes = []ErrorCode{E_NONE, E_DECL, E_TYPE, E_NUM, E_OP, E_DIV, E_OPTYPES, E_VARNF, E_CHAR}

// ErrorFromString converts either spelling ("E_DIV" or "DivisionByZero") to an ErrorCode
func ErrorFromString(s string) (ErrorCode, bool) {
	for _, code := range allCodes {
		if s == code.String() || s == code.Name() {
			return code, true
		}
	}
	return E_NONE, false
}
