// Package lumen provides the analysis frontend for the Lumen language.
//
// The frontend is built around a typed intermediate tree (package
// [github.com/lumen-lang/lumen/fir]) and a pipeline of passes that
// lower and resolve it:
//   - Type inference for literal-initialized properties
//   - Delegation desugaring into backing properties
//   - Block simplification
//   - Name resolution with scope-aware diagnostics
//
// # Quick Start
//
// Build a tree with the fir constructors, then analyze it:
//
//	session := fir.NewSession("demo")
//	file := fir.NewFile(session, nil, "demo")
//	// ... populate file.Decls ...
//
//	report, err := lumen.Analyze(file, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The [Config] type selects which passes run and which annotations the
// analyzer accepts. Configurations load from YAML:
//
//	cfg, err := lumen.LoadConfig(file)
//
// # Error Handling
//
// Analysis failures are returned as [*AnalysisError], which carries the
// individual [Diagnostic] values with their source spans.
//
// # Thread Safety
//
// Sessions and the trees they own are not safe for concurrent
// mutation. Run one analysis per tree at a time.
package lumen
