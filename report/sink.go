package report

import (
	"blockrun/eval"
	"fmt"
	"io"

	"fortio.org/log"
)

// Sink consumes the outcome of one run: its reports and its output
type Sink interface {
	Deliver(source string, outcome eval.Outcome) error
}

// ConsoleSink writes every report to Err, then the accumulated output to Out
// as one unit. Reports are also logged as warnings.
type ConsoleSink struct {
	Out io.Writer
	Err io.Writer
}

// NewConsoleSink creates a sink writing to the given streams
func NewConsoleSink(out, errOut io.Writer) *ConsoleSink {
	return &ConsoleSink{Out: out, Err: errOut}
}

// Deliver implements Sink
func (s *ConsoleSink) Deliver(source string, outcome eval.Outcome) error {
	for _, r := range outcome.Reports {
		log.Warnf("%s: %s (%s)", source, r, r.Code.Name())
		if s.Err != nil {
			if _, err := fmt.Fprintf(s.Err, "Error: %s\n", r); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
		}
	}

	if _, err := io.WriteString(s.Out, outcome.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// DumpStore writes one "name TYPE = value" line per variable, sorted by name
func DumpStore(w io.Writer, store *eval.Store) error {
	for _, e := range store.Entries() {
		if _, err := fmt.Fprintf(w, "%s %s = %s\n", e.Name, e.Type, e.Value); err != nil {
			return err
		}
	}
	return nil
}
