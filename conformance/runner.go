package conformance

import (
	"blockrun/eval"
	"blockrun/types"
	"fmt"
	"strings"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case in a fresh interpreter session
func (r *Runner) Run(test LoadedTest) TestResult {
	// Check if test should be skipped
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	src := program(test.Test.Code, test.Test.Source)
	if src == "" {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: "no code/source",
		}
	}

	// The setup and the test share one store
	interp := eval.NewInterpreter(eval.WithPersistentStore())
	if setup := test.Suite.Setup; setup != nil {
		interp.Run(program(setup.Code, setup.Source))
	}

	outcome := interp.Run(src)
	err := r.checkExpectation(test.Test.Expect, outcome, interp.Store())
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Error:  err,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation checks if the outcome matches the expected one
func (r *Runner) checkExpectation(expect Expectation, outcome eval.Outcome, store *eval.Store) error {
	if err := checkErrors(expect.Errors, outcome.Reports); err != nil {
		return err
	}

	if expect.Output != nil && outcome.Output != *expect.Output {
		return fmt.Errorf("expected output %q, got %q", *expect.Output, outcome.Output)
	}

	for name, want := range expect.Vars {
		entry, ok := store.Get(name)
		if !ok {
			return fmt.Errorf("variable %s not declared", name)
		}
		if want.Type != "" && entry.Type.String() != want.Type {
			return fmt.Errorf("variable %s: expected type %s, got %s", name, want.Type, entry.Type)
		}
		if want.Variant != "" && entry.Value.Type().String() != want.Variant {
			return fmt.Errorf("variable %s: expected variant %s, got %s", name, want.Variant, entry.Value.Type())
		}
		if want.Value != "" && entry.Value.String() != want.Value {
			return fmt.Errorf("variable %s: expected %s, got %s", name, want.Value, entry.Value)
		}
	}

	for _, name := range expect.Absent {
		if store.Has(name) {
			return fmt.Errorf("variable %s should not be declared", name)
		}
	}

	return nil
}

// checkErrors compares expected error names with the reports raised, in order
func checkErrors(expected []string, reports []types.Report) error {
	want := make([]types.ErrorCode, len(expected))
	for i, name := range expected {
		code, ok := types.ErrorFromString(name)
		if !ok {
			return fmt.Errorf("unknown error code: %s", name)
		}
		want[i] = code
	}

	got := make([]string, len(reports))
	for i, rep := range reports {
		got[i] = rep.Code.Name()
	}

	if len(want) != len(reports) {
		return fmt.Errorf("expected errors [%s], got [%s]", names(want), strings.Join(got, ", "))
	}
	for i, code := range want {
		if reports[i].Code != code {
			return fmt.Errorf("expected errors [%s], got [%s]", names(want), strings.Join(got, ", "))
		}
	}
	return nil
}

func names(codes []types.ErrorCode) string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.Name()
	}
	return strings.Join(out, ", ")
}
