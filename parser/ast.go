package parser

// StmtKind names the three statement forms
type StmtKind int

const (
	StmtDisplay StmtKind = iota
	StmtDeclare
	StmtExpr
)

// String returns the kind name used by tracing and logs
func (k StmtKind) String() string {
	switch k {
	case StmtDisplay:
		return "DISPLAY"
	case StmtDeclare:
		return "DECLARE"
	case StmtExpr:
		return "EXPR"
	default:
		return "UNKNOWN"
	}
}

// Stmt represents one dispatched line of a code block
type Stmt interface {
	Position() Position
	Kind() StmtKind
	Source() string // cleaned source line
}

// DisplayStmt is a DISPLAY: line; Template is the text after the prefix, trimmed
type DisplayStmt struct {
	Pos      Position
	Text     string
	Template string
}

func (s *DisplayStmt) Position() Position { return s.Pos }
func (s *DisplayStmt) Kind() StmtKind     { return StmtDisplay }
func (s *DisplayStmt) Source() string     { return s.Text }

// DeclStmt is a line containing '='. Tokens holds the declaration split,
// starting with the type tag.
type DeclStmt struct {
	Pos    Position
	Text   string
	Tokens []string
}

func (s *DeclStmt) Position() Position { return s.Pos }
func (s *DeclStmt) Kind() StmtKind     { return StmtDeclare }
func (s *DeclStmt) Source() string     { return s.Text }

// TypeName returns the declared type token, or "" for an empty declaration
func (s *DeclStmt) TypeName() string {
	if len(s.Tokens) == 0 {
		return ""
	}
	return s.Tokens[0]
}

// ExprStmt is a bare arithmetic chain
type ExprStmt struct {
	Pos  Position
	Expr string
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) Kind() StmtKind     { return StmtExpr }
func (s *ExprStmt) Source() string     { return s.Expr }
