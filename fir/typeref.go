package fir

import "github.com/lumen-lang/lumen/source"

// baseTypeRef provides the annotation container shared by most type refs.
// DelegatedTypeRef deliberately does not embed it: its annotations alias
// the wrapped ref's container instead of owning one.
type baseTypeRef struct {
	baseNode
	annotations *AnnotationList
}

func (b *baseTypeRef) Annotations() *AnnotationList { return b.annotations }
func (b *baseTypeRef) typeRefNode()                 {}

func newBaseTypeRef(session *Session, src *source.Span) baseTypeRef {
	return baseTypeRef{
		baseNode:    newBaseNode(session, src),
		annotations: NewAnnotationList(),
	}
}

// ImplicitTypeRef marks a type annotation site with no written type.
// The type is to be supplied by inference.
type ImplicitTypeRef struct {
	baseTypeRef
}

// NewImplicitTypeRef creates an implicit type ref.
func NewImplicitTypeRef(session *Session, src *source.Span) *ImplicitTypeRef {
	return &ImplicitTypeRef{baseTypeRef: newBaseTypeRef(session, src)}
}

// UserTypeRef represents a type written in source, e.g. List<Int>.
type UserTypeRef struct {
	baseTypeRef
	QualifiedName string    // Written type name
	Args          []TypeRef // Type arguments (may be empty)
}

// NewUserTypeRef creates a user-written type ref.
func NewUserTypeRef(session *Session, src *source.Span, qualifiedName string, args ...TypeRef) *UserTypeRef {
	if qualifiedName == "" {
		panic("fir: user type ref constructed without a name")
	}
	return &UserTypeRef{
		baseTypeRef:   newBaseTypeRef(session, src),
		QualifiedName: qualifiedName,
		Args:          args,
	}
}

// ErrorTypeRef marks a type annotation site that failed to resolve.
// Passes produce it instead of aborting so that later passes and tooling
// still see a complete tree.
type ErrorTypeRef struct {
	baseTypeRef
	Message string // Why resolution failed
}

// NewErrorTypeRef creates an error type ref.
func NewErrorTypeRef(session *Session, src *source.Span, message string) *ErrorTypeRef {
	return &ErrorTypeRef{
		baseTypeRef: newBaseTypeRef(session, src),
		Message:     message,
	}
}

// DelegatedTypeRef wraps another type ref together with an optional
// delegate expression, as in delegated-supertype syntax:
//
//	class Logger : Printer by console
//
// Its annotation list is the wrapped ref's list, by reference: reading
// annotations on the wrapper and the wrapped ref must observe the same
// container, so later additions to either are visible through both.
type DelegatedTypeRef struct {
	baseNode
	TypeRef  TypeRef    // Wrapped type ref (never nil)
	Delegate Expression // Delegate expression (nil if none)
}

// NewDelegatedTypeRef creates a delegated type ref.
// A nil wrapped ref is a programming error and fails fast.
func NewDelegatedTypeRef(session *Session, src *source.Span, wrapped TypeRef, delegate Expression) *DelegatedTypeRef {
	if wrapped == nil {
		panic("fir: delegated type ref constructed without a wrapped ref")
	}
	return &DelegatedTypeRef{
		baseNode: newBaseNode(session, src),
		TypeRef:  wrapped,
		Delegate: delegate,
	}
}

// Annotations returns the wrapped ref's annotation list (aliased, not
// copied).
func (r *DelegatedTypeRef) Annotations() *AnnotationList { return r.TypeRef.Annotations() }

func (r *DelegatedTypeRef) typeRefNode() {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ TypeRef = (*ImplicitTypeRef)(nil)
	_ TypeRef = (*UserTypeRef)(nil)
	_ TypeRef = (*ErrorTypeRef)(nil)
	_ TypeRef = (*DelegatedTypeRef)(nil)
)
