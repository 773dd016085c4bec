package types

import "fmt"

// Report is one error notification raised while running a block.
// Reports are accumulated in the order they are raised; none of them stop the run.
type Report struct {
	Line   int // 1-based source line, 0 when not tied to a line
	Code   ErrorCode
	Detail string
}

// NewReport builds a Report from a failed Result
func NewReport(line int, r Result) Report {
	return Report{Line: line, Code: r.Error, Detail: r.Detail}
}

// String formats the report the way the error sink shows it:
//
//	line 4: Division by zero error: 5/0
func (r Report) String() string {
	msg := r.Code.Message()
	if r.Detail != "" {
		msg += ": " + r.Detail
	}
	if r.Line > 0 {
		return fmt.Sprintf("line %d: %s", r.Line, msg)
	}
	return msg
}

// Error lets a Report travel as a Go error where one is expected
func (r Report) Error() string {
	return r.String()
}
