// Package resolve performs name resolution over a typed tree.
//
// The resolver performs:
//   - Name resolution: binding name refs and type refs to their declarations
//   - Scope analysis: nested scopes for classes, functions and blocks
//   - Duplicate detection: rejecting redeclarations within one scope
//   - Usage tracking: warning about declarations that are never referenced
//
// Lumen scoping rules worth noting:
//   - Type parameters are in scope for the declaring member's supertypes,
//     parameter types and body
//   - Builtin type names (Int, String, ...) resolve without a declaration
//   - Private unused declarations produce warnings, public ones do not
package resolve

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/source"
)

// Error represents a resolution error with source location.
type Error struct {
	Span    *source.Span
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Warning represents a non-fatal resolution issue.
type Warning struct {
	Span    *source.Span
	Message string
}

// String returns the warning as a formatted string.
func (w *Warning) String() string {
	if w.Span == nil {
		return "warning: " + w.Message
	}
	return fmt.Sprintf("%s: warning: %s", w.Span, w.Message)
}

// ErrorList is a collection of resolution errors.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(span *source.Span, format string, args ...any) {
	*el = append(*el, &Error{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// WarningList is a collection of resolution warnings.
type WarningList []*Warning

// Add appends a warning to the list.
func (wl *WarningList) Add(span *source.Span, format string, args ...any) {
	*wl = append(*wl, &Warning{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	})
}

// Common error messages as constants for consistency.
const (
	errUnresolvedType   = "unresolved type %q"
	errUnresolvedName   = "unresolved name %q"
	errDuplicateDecl    = "%s %q already declared in this scope"
	errDuplicateParam   = "duplicate parameter %q in function %q"
	errParamShadowsFunc = "parameter %q shadows function name"
	errBrokenTypeRef    = "broken type ref: %s"
)

// Common warning messages.
const (
	warnUnusedDecl = "%s %q is declared but never used"
)
