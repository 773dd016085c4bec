package trace

import (
	"blockrun/types"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// ParseFilters splits a comma-separated filter flag into trimmed glob patterns
func ParseFilters(s string) []string {
	if s == "" {
		return nil
	}
	filters := strings.Split(s, ",")
	for i := range filters {
		filters[i] = strings.TrimSpace(filters[i])
	}
	return filters
}

// matchesFilter checks if a statement kind matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

// Statement logs the dispatch of one statement
func (t *Tracer) Statement(kind string, line int, text string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %s line=%d %q\n", kind, line, text)
}

// Bind logs a store write made by a declaration
func (t *Tracer) Bind(name string, tag types.TypeTag, value types.Value) {
	if !t.enabled || !t.matchesFilter("DECLARE") {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   BIND %s:%s = %s\n", name, tag, value)
}

// Emit logs text appended to the run output
func (t *Tracer) Emit(kind string, text string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long output for readability
	display := text
	if len(display) > 60 {
		display = display[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE]   EMIT %q\n", display)
}

// Report logs an error report raised while running a statement
func (t *Tracer) Report(kind string, r types.Report) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   REPORT %s %s\n", r.Code, r)
}

// Global convenience functions

// Statement logs a statement dispatch using the global tracer
func Statement(kind string, line int, text string) {
	if globalTracer != nil {
		globalTracer.Statement(kind, line, text)
	}
}

// Bind logs a store write using the global tracer
func Bind(name string, tag types.TypeTag, value types.Value) {
	if globalTracer != nil {
		globalTracer.Bind(name, tag, value)
	}
}

// Emit logs emitted output using the global tracer
func Emit(kind string, text string) {
	if globalTracer != nil {
		globalTracer.Emit(kind, text)
	}
}

// Report logs an error report using the global tracer
func Report(kind string, r types.Report) {
	if globalTracer != nil {
		globalTracer.Report(kind, r)
	}
}
