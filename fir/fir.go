// Package fir defines the Lumen frontend intermediate representation (FIR).
//
// The FIR is the typed tree that every compiler pass (resolution, type
// inference, lowering) operates on. It is designed for:
//   - A closed variant set with one Go type per node kind
//   - Composable capability facets (annotations, type parameters, status)
//     instead of a deep inheritance chain
//   - Generic visitor/transformer protocol (Go 1.18+ generics)
//   - Structural sharing across rewritten tree snapshots
//
// Node hierarchy:
//
//	Node (interface)
//	├── Declaration (interface) - named program elements
//	│   ├── File - compilation unit root
//	│   ├── Class, Function, Property - member declarations (with status)
//	│   └── TypeParameter, ValueParameter - implicit declarations
//	├── TypeRef (interface) - type annotation sites
//	│   ├── ImplicitTypeRef - absent, to be inferred
//	│   ├── UserTypeRef - written type with optional arguments
//	│   ├── DelegatedTypeRef - wraps a TypeRef plus a delegate expression
//	│   └── ErrorTypeRef - resolution failure marker
//	├── Statement (interface) - constructs usable in statement position
//	│   ├── Expression (interface) - statements that produce values
//	│   │   ├── Literal, NameRef - atoms
//	│   │   └── Call, Block - composites
//	│   └── VariableAssignment - mutation of a variable-like target
//	└── Annotation, DeclarationStatus - facet nodes
//
// Trees are single-threaded per snapshot: nodes are not synchronized and
// concurrent mutation of the same node's child slots is undefined. The
// transform protocol reassigns child slots on the node being transformed
// and never mutates a child in place, so sharing nodes across snapshots
// is safe as long as no snapshot is visited concurrently with a rewrite.
package fir

import "github.com/lumen-lang/lumen/source"

// Node is the interface implemented by all FIR nodes.
// Every node references its owning session (shared, never owned by the
// node) and an optional span into the original source.
type Node interface {
	// Session returns the compilation session the node was created under.
	Session() *Session

	// Source returns the originating source span, or nil for synthetic nodes.
	Source() *source.Span

	node() // marker method to prevent external implementations
}

// Statement is the interface for nodes usable in statement position.
type Statement interface {
	Node
	stmtNode() // marker
}

// Expression is the interface for value-producing nodes. Every expression
// is also a statement, so expressions appear directly in statement lists.
type Expression interface {
	Statement
	exprNode() // marker
}

// TypeRef is the interface for type annotation sites.
// All type refs carry an annotation list; DelegatedTypeRef aliases the
// list of the ref it wraps.
type TypeRef interface {
	Node
	WithAnnotations
	typeRefNode() // marker
}

// Declaration is the interface for named program elements.
type Declaration interface {
	Node
	Named
	declNode() // marker
}

// -----------------------------------------------------------------------------
// Capability facets
// -----------------------------------------------------------------------------

// Named is the facet of declarations that carry a name.
type Named interface {
	Name() string
}

// WithAnnotations is the facet of nodes that carry an annotation list.
// The returned container is shared by reference: additions through one
// holder are visible through every holder of the same container.
type WithAnnotations interface {
	Annotations() *AnnotationList
}

// WithTypeParameters is the facet of declarations that introduce type
// parameters.
type WithTypeParameters interface {
	TypeParameters() []*TypeParameter
}

// WithStatus is the facet of realized declarations carrying a status
// record. Visibility, Modality, IsExpect and IsActual are derived from
// the current status on every read and are never cached separately.
type WithStatus interface {
	Status() *DeclarationStatus
	Visibility() Visibility
	Modality() Modality
	IsExpect() bool
	IsActual() bool
}

// -----------------------------------------------------------------------------
// Base node structs
// -----------------------------------------------------------------------------

// baseNode provides session and source tracking for all node types.
type baseNode struct {
	session *Session
	src     *source.Span
}

func (b *baseNode) Session() *Session    { return b.session }
func (b *baseNode) Source() *source.Span { return b.src }
func (b *baseNode) node()                {}

// baseStmt is embedded in concrete statement types.
type baseStmt struct {
	baseNode
}

func (b *baseStmt) stmtNode() {}

// baseExpr is embedded in concrete expression types.
type baseExpr struct {
	baseStmt
}

func (b *baseExpr) exprNode() {}

// newBaseNode validates the attributes shared by every node.
// A nil session is a programming error and fails fast.
func newBaseNode(session *Session, src *source.Span) baseNode {
	if session == nil {
		panic("fir: node constructed without a session")
	}
	return baseNode{session: session, src: src}
}

// -----------------------------------------------------------------------------
// Transform splice results
// -----------------------------------------------------------------------------

// NodeList is a transformer result carrying multiple replacement nodes
// for a single list element. It is not a tree node: it never appears in
// a tree, Accept panics on it, and it only travels from a transformer
// handler to TransformSlice, which splices its elements in place of the
// transformed element.
type NodeList struct {
	Elements []Node
}

// Splice wraps replacement nodes for a list-slot transform.
func Splice(nodes ...Node) *NodeList {
	return &NodeList{Elements: nodes}
}

func (l *NodeList) Session() *Session    { return nil }
func (l *NodeList) Source() *source.Span { return nil }
func (l *NodeList) node()                {}
