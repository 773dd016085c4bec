package eval

import (
	"blockrun/parser"
	"blockrun/trace"
	"blockrun/types"
	"strings"

	"fortio.org/log"
)

// Interpreter is one session of the block language: a variable store plus
// the statement dispatcher. It is not safe for concurrent use.
type Interpreter struct {
	store   *Store
	persist bool
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithPersistentStore keeps the variable store across Run calls instead of
// resetting it at the start of every run.
func WithPersistentStore() Option {
	return func(in *Interpreter) {
		in.persist = true
	}
}

// WithStore makes the interpreter use an existing store
func WithStore(store *Store) Option {
	return func(in *Interpreter) {
		in.store = store
	}
}

// NewInterpreter creates a new interpreter with a fresh store
func NewInterpreter(opts ...Option) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	if in.store == nil {
		in.store = NewStore()
	}
	return in
}

// Store returns the session's variable store
func (in *Interpreter) Store() *Store {
	return in.store
}

// Reset discards every declared variable
func (in *Interpreter) Reset() {
	in.store.Reset()
}

// execContext collects the reports raised by one statement
type execContext struct {
	line    int
	kind    parser.StmtKind
	reports []types.Report
}

// report records a failed Result against the current statement
func (ctx *execContext) report(r types.Result) {
	rep := types.NewReport(ctx.line, r)
	ctx.reports = append(ctx.reports, rep)
	trace.Report(ctx.kind.String(), rep)
	log.Debugf("line %d: %s", ctx.line, rep.Code.Name())
}

// Run interprets every statement inside the code blocks of source, in order.
// A failing statement raises reports and the run carries on with the next
// line; nothing aborts the run. Unless the interpreter was built with
// WithPersistentStore, the store is reset first.
func (in *Interpreter) Run(source string) Outcome {
	if !in.persist {
		in.Reset()
	}

	var out strings.Builder
	var outcome Outcome

	for _, stmt := range parser.ScanBlock(source) {
		so := in.Exec(stmt)
		if so.Emits() {
			out.WriteString(so.Text)
			out.WriteString("\n")
		}
		outcome.Statements = append(outcome.Statements, so)
		outcome.Reports = append(outcome.Reports, so.Reports...)
	}

	outcome.Output = out.String()
	log.LogVf("run finished: %d statements, %d reports, %d variables",
		len(outcome.Statements), len(outcome.Reports), in.store.Len())
	return outcome
}

// Exec runs a single statement against the session store
func (in *Interpreter) Exec(stmt parser.Stmt) StatementOutcome {
	ctx := &execContext{line: stmt.Position().Line, kind: stmt.Kind()}
	trace.Statement(stmt.Kind().String(), ctx.line, stmt.Source())

	so := StatementOutcome{
		Line:   ctx.line,
		Kind:   stmt.Kind(),
		Source: stmt.Source(),
	}

	switch s := stmt.(type) {
	case *parser.DisplayStmt:
		so.Text = in.render(s.Template, ctx)
	case *parser.DeclStmt:
		in.declare(s, ctx)
	case *parser.ExprStmt:
		res := EvaluateChained(s.Expr)
		if res.IsError() {
			ctx.report(res)
		}
		so.Text = res.Value().String()
	}

	if so.Emits() {
		trace.Emit(stmt.Kind().String(), so.Text)
	}
	so.Reports = ctx.reports
	return so
}

// declare binds every (name, literal) pair of a declaration. The first token
// is the type name; the rest are consumed two at a time. A pair whose literal
// fails to coerce is still written, with the absent value.
func (in *Interpreter) declare(stmt *parser.DeclStmt, ctx *execContext) {
	tokens := stmt.Tokens
	if len(tokens) < 3 {
		ctx.report(types.Err(types.E_DECL, stmt.Text))
		return
	}

	typeName := tokens[0]
	tag, _ := types.ParseTypeTag(typeName)

	for i := 1; i < len(tokens); i += 2 {
		name := tokens[i]
		if i+1 >= len(tokens) {
			ctx.report(types.Err(types.E_DECL, "missing value for "+name))
			return
		}

		var res types.Result
		if isDoubling(tokens, i) {
			// "x = 5 + 5": evaluated as a chain, so the value is a float
			res = EvaluateChained(tokens[i+1] + "+" + tokens[i+3])
			i += 2
		} else {
			res = Coerce(typeName, tokens[i+1])
		}

		if res.IsError() {
			ctx.report(res)
		}
		in.store.Set(name, tag, res.Value())
		trace.Bind(name, tag, res.Value())
	}
}

// isDoubling reports whether the literal at tokens[i+1] is followed by "+"
// and a token with exactly the same text. Only that raw-text match triggers
// the shorthand; "5 + 6" does not.
func isDoubling(tokens []string, i int) bool {
	return i+3 < len(tokens) && tokens[i+2] == "+" && tokens[i+3] == tokens[i+1]
}
