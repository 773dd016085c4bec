package parser

import "strings"

// ParseStatement classifies one cleaned, non-empty line found inside a code
// block. The first matching form wins: DISPLAY: prefix, then any '=', then a
// bare expression.
func ParseStatement(line string, lineNo int) Stmt {
	pos := Position{Line: lineNo, Column: 1}

	if strings.HasPrefix(line, DisplayPrefix) {
		return &DisplayStmt{
			Pos:      pos,
			Text:     line,
			Template: strings.TrimSpace(line[len(DisplayPrefix):]),
		}
	}

	if strings.Contains(line, "=") {
		return &DeclStmt{Pos: pos, Text: line, Tokens: SplitDeclaration(line)}
	}

	return &ExprStmt{Pos: pos, Expr: line}
}

// ScanBlock returns the statements of every code block in source, in order.
// BEGIN CODE and END CODE toggle whether lines are statements; lines outside
// a block are ignored, and missing or unbalanced markers are not an error.
func ScanBlock(source string) []Stmt {
	var stmts []Stmt
	inside := false

	for i, raw := range SplitLines(source) {
		line := CleanLine(raw)
		if line == "" {
			continue
		}

		switch line {
		case BeginMarker:
			inside = true
			continue
		case EndMarker:
			inside = false
			continue
		}

		if inside {
			stmts = append(stmts, ParseStatement(line, i+1))
		}
	}

	return stmts
}
