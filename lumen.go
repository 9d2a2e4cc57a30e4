package lumen

import (
	"fmt"

	"github.com/lumen-lang/lumen/fir"
	"github.com/lumen-lang/lumen/internal/annotations"
	"github.com/lumen-lang/lumen/internal/lower"
	"github.com/lumen-lang/lumen/internal/resolve"
)

// Version is the lumen version string.
const Version = "0.1.0"

// Report summarizes a successful analysis.
type Report struct {
	// Counters from the lowering passes.
	Inferred int // Property types inferred from literal initializers
	Expanded int // Delegates desugared into backing properties
	Pruned   int // Effect-free statements removed

	// Warnings that did not fail the analysis.
	Warnings []Diagnostic
}

// Analyze runs the configured passes over the file and resolves it.
// The tree is rewritten in place by the lowering passes.
//
// Parameters:
//   - file: the tree to analyze
//   - config: analysis configuration (can be nil for defaults)
//
// On failure the returned error is an [*AnalysisError] holding every
// diagnostic, warnings included.
//
// Example:
//
//	report, err := lumen.Analyze(file, nil)
//	if err != nil {
//	    var ae *lumen.AnalysisError
//	    if errors.As(err, &ae) {
//	        for _, d := range ae.Diagnostics {
//	            fmt.Println(d.String())
//	        }
//	    }
//	}
func Analyze(file *fir.File, config *Config) (*Report, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var matcher *annotations.Matcher
	if len(config.AcceptedAnnotations) > 0 {
		m, err := annotations.NewMatcher(config.AcceptedAnnotations)
		if err != nil {
			return nil, fmt.Errorf("analyze: %w", err)
		}
		matcher = m
	}

	var lowered lower.Report
	if config.ExpandDelegates {
		lower.ExpandDelegates(file, &lowered)
	}
	if config.InferTypes {
		lower.InferTypes(file, &lowered)
	}
	if config.SimplifyBlocks {
		lower.SimplifyBlocks(file, &lowered)
	}

	var diags []Diagnostic

	// Resolution errors are collected in the result, the returned error
	// just mirrors them.
	resolved, _ := resolve.Resolve(file)
	for _, e := range resolved.Errors {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Span:     e.Span,
			Message:  e.Message,
		})
	}
	for _, w := range resolved.Warnings {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Span:     w.Span,
			Message:  w.Message,
		})
	}

	if matcher != nil {
		for _, a := range matcher.FindRejected(file) {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Span:     a.Source(),
				Message:  fmt.Sprintf("annotation %q is not accepted", a.QualifiedName),
			})
		}
	}

	report := &Report{
		Inferred: lowered.Inferred,
		Expanded: lowered.Expanded,
		Pruned:   lowered.Pruned,
	}
	failed := false
	for _, d := range diags {
		if d.Severity == SeverityError {
			failed = true
		} else {
			report.Warnings = append(report.Warnings, d)
		}
	}
	if failed {
		return nil, &AnalysisError{Diagnostics: diags}
	}
	return report, nil
}

// MustAnalyze is like Analyze but panics on error. It simplifies
// fixtures and initialization of known-good trees.
func MustAnalyze(file *fir.File, config *Config) *Report {
	report, err := Analyze(file, config)
	if err != nil {
		panic(err)
	}
	return report
}
