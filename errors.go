package lumen

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/source"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single analysis finding with its source location.
type Diagnostic struct {
	Severity Severity
	Span     *source.Span // nil when the finding has no location
	Message  string
}

// String formats the diagnostic as "span: severity: message".
func (d *Diagnostic) String() string {
	if d.Span == nil {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Span, d.Severity, d.Message)
}

// AnalysisError is returned when analysis produces errors. It carries
// every diagnostic, warnings included.
type AnalysisError struct {
	Diagnostics []Diagnostic
}

// Error returns all error-severity diagnostics, one per line.
func (e *AnalysisError) Error() string {
	var sb strings.Builder
	first := true
	for i := range e.Diagnostics {
		d := &e.Diagnostics[i]
		if d.Severity != SeverityError {
			continue
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(d.String())
	}
	if first {
		return "analysis failed"
	}
	return sb.String()
}

// ErrorCount returns the number of error-severity diagnostics.
func (e *AnalysisError) ErrorCount() int {
	n := 0
	for i := range e.Diagnostics {
		if e.Diagnostics[i].Severity == SeverityError {
			n++
		}
	}
	return n
}
