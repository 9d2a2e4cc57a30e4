package fir

import "github.com/lumen-lang/lumen/source"

// AnnotationList is a shared container for a node's annotations.
// Holders keep the container by pointer, so a DelegatedTypeRef returning
// its wrapped ref's list aliases it: an append through either holder is
// observed by both.
type AnnotationList struct {
	items []*Annotation
}

// NewAnnotationList creates a list with the given initial annotations.
func NewAnnotationList(items ...*Annotation) *AnnotationList {
	return &AnnotationList{items: items}
}

// Append adds annotations to the list.
func (l *AnnotationList) Append(items ...*Annotation) {
	l.items = append(l.items, items...)
}

// All returns the annotations in declaration order.
// The returned slice is the live backing store; callers must not retain
// it across mutations.
func (l *AnnotationList) All() []*Annotation { return l.items }

// Len returns the number of annotations.
func (l *AnnotationList) Len() int { return len(l.items) }

// At returns the i-th annotation.
func (l *AnnotationList) At(i int) *Annotation { return l.items[i] }

// Annotation represents one applied annotation, e.g. @lumen.Entity("x").
type Annotation struct {
	baseNode
	QualifiedName string       // Fully qualified annotation name
	Args          []Expression // Constructor arguments (may be empty)
}

// NewAnnotation creates an annotation node.
// An empty qualified name is a programming error and fails fast.
func NewAnnotation(session *Session, src *source.Span, qualifiedName string, args ...Expression) *Annotation {
	if qualifiedName == "" {
		panic("fir: annotation constructed without a qualified name")
	}
	return &Annotation{
		baseNode:      newBaseNode(session, src),
		QualifiedName: qualifiedName,
		Args:          args,
	}
}
