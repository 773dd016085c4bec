package eval

import (
	"blockrun/parser"
	"blockrun/types"
)

// StatementOutcome is what running one statement produced
type StatementOutcome struct {
	Line    int
	Kind    parser.StmtKind
	Source  string
	Text    string // appended to the run output, followed by a newline, unless Kind is StmtDeclare
	Reports []types.Report
}

// Emits reports whether the statement contributes a line to the output
func (s StatementOutcome) Emits() bool {
	return s.Kind != parser.StmtDeclare
}

// Outcome is the result of one Run: the accumulated output delivered to the
// sink as one unit, plus every report raised, in order.
type Outcome struct {
	Output     string
	Statements []StatementOutcome
	Reports    []types.Report
}

// OK returns true if no statement raised a report
func (o Outcome) OK() bool {
	return len(o.Reports) == 0
}

// Codes returns the error codes of all reports, in the order raised
func (o Outcome) Codes() []types.ErrorCode {
	codes := make([]types.ErrorCode, len(o.Reports))
	for i, r := range o.Reports {
		codes[i] = r.Code
	}
	return codes
}
