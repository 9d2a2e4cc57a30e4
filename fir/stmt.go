package fir

import "github.com/lumen-lang/lumen/source"

// Assignment is the interface for statements that mutate a
// variable-like target. Concrete assignment forms implement it.
type Assignment interface {
	Statement
	// Target returns the mutated lvalue expression.
	Target() Expression

	assignNode() // marker
}

// VariableAssignment represents a plain assignment to a variable-like
// target, optionally through an explicit receiver.
// Examples: x = 1, widget.title = name
type VariableAssignment struct {
	baseStmt
	LValue   Expression // Assignment target (never nil)
	Receiver Expression // Explicit receiver (nil if none)
	Value    Expression // Assigned value (never nil)
}

// NewVariableAssignment creates a variable assignment.
func NewVariableAssignment(session *Session, src *source.Span, lvalue, value Expression) *VariableAssignment {
	if lvalue == nil {
		panic("fir: assignment constructed without a target")
	}
	if value == nil {
		panic("fir: assignment constructed without a value")
	}
	return &VariableAssignment{
		baseStmt: baseStmt{newBaseNode(session, src)},
		LValue:   lvalue,
		Value:    value,
	}
}

func (a *VariableAssignment) Target() Expression { return a.LValue }
func (a *VariableAssignment) assignNode()        {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Statement  = (*VariableAssignment)(nil)
	_ Assignment = (*VariableAssignment)(nil)
)
