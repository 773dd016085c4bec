package types

// TypeTag names the declared type of a variable and the runtime variant of a Value
type TypeTag int

const (
	TYPE_INVALID TypeTag = iota
	TYPE_INT
	TYPE_FLOAT
	TYPE_CHAR
	TYPE_BOOL
	TYPE_ABSENT
)

// String returns the source spelling of the type tag
func (t TypeTag) String() string {
	switch t {
	case TYPE_INT:
		return "INT"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_CHAR:
		return "CHAR"
	case TYPE_BOOL:
		return "BOOL"
	case TYPE_ABSENT:
		return "ABSENT"
	default:
		return "INVALID"
	}
}

// ParseTypeTag converts a declaration keyword to a TypeTag.
// Only INT, FLOAT, CHAR and BOOL are declarable; ABSENT is a runtime-only variant.
func ParseTypeTag(s string) (TypeTag, bool) {
	switch s {
	case "INT":
		return TYPE_INT, true
	case "FLOAT":
		return TYPE_FLOAT, true
	case "CHAR":
		return TYPE_CHAR, true
	case "BOOL":
		return TYPE_BOOL, true
	default:
		return TYPE_INVALID, false
	}
}
