package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Setup       *SetupBlock `yaml:"setup,omitempty"`
	Tests       []TestCase  `yaml:"tests"`
}

// SetupBlock contains code run before every test of a suite.
// Its declarations are visible to the test; its output and reports are not checked.
type SetupBlock struct {
	Code   string `yaml:"code,omitempty"`   // statements, wrapped in BEGIN CODE/END CODE
	Source string `yaml:"source,omitempty"` // full program text, markers included
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`   // bool or string
	Code        string      `yaml:"code,omitempty"`   // statements, wrapped in BEGIN CODE/END CODE
	Source      string      `yaml:"source,omitempty"` // full program text, markers included
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a run must produce.
// Errors is compared in order; leaving it out means no reports are allowed.
type Expectation struct {
	Output *string                   `yaml:"output,omitempty"` // exact output
	Errors []string                  `yaml:"errors,omitempty"` // DivisionByZero or E_DIV spelling
	Vars   map[string]VarExpectation `yaml:"vars,omitempty"`
	Absent []string                  `yaml:"absent,omitempty"` // names that must not be declared
}

// VarExpectation describes one store entry after the run
type VarExpectation struct {
	Type    string `yaml:"type,omitempty"`    // declared tag: INT, FLOAT, CHAR, BOOL, INVALID
	Variant string `yaml:"variant,omitempty"` // runtime variant, adds ABSENT
	Value   string `yaml:"value,omitempty"`   // textual form, as DISPLAY prints it
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// Program returns the text to run for a test or setup block
func program(code, source string) string {
	if source != "" {
		return source
	}
	if code == "" {
		return ""
	}
	return "BEGIN CODE\n" + code + "\nEND CODE\n"
}
