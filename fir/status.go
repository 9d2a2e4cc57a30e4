package fir

import "github.com/lumen-lang/lumen/source"

// Visibility defines who may reference a declaration.
type Visibility int

const (
	Public Visibility = iota
	Internal
	Protected
	Private
)

// String returns a human-readable name for the visibility.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Internal:
		return "internal"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}

// Modality defines whether a declaration may be overridden or instantiated.
type Modality int

const (
	Final Modality = iota
	Open
	Abstract
	Sealed
)

// String returns a human-readable name for the modality.
func (m Modality) String() string {
	switch m {
	case Final:
		return "final"
	case Open:
		return "open"
	case Abstract:
		return "abstract"
	case Sealed:
		return "sealed"
	default:
		return "unknown"
	}
}

// DeclarationStatus holds the modifier record of a realized declaration:
// visibility, modality and the expect/actual multiplatform flags.
// It is itself a node so that traversal and transformation reach it like
// any other child.
type DeclarationStatus struct {
	baseNode
	Visibility Visibility
	Modality   Modality
	Expect     bool
	Actual     bool
}

// NewDeclarationStatus creates a status record.
func NewDeclarationStatus(session *Session, src *source.Span, visibility Visibility, modality Modality) *DeclarationStatus {
	return &DeclarationStatus{
		baseNode:   newBaseNode(session, src),
		Visibility: visibility,
		Modality:   modality,
	}
}
