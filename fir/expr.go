package fir

import "github.com/lumen-lang/lumen/source"

// LiteralKind classifies literal constants.
type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	BoolLiteral
	UnitLiteral
)

// String returns a human-readable name for the literal kind.
func (k LiteralKind) String() string {
	switch k {
	case IntLiteral:
		return "int"
	case FloatLiteral:
		return "float"
	case StringLiteral:
		return "string"
	case BoolLiteral:
		return "bool"
	case UnitLiteral:
		return "unit"
	default:
		return "unknown"
	}
}

// TypeName returns the builtin type name a literal of this kind has.
func (k LiteralKind) TypeName() string {
	switch k {
	case IntLiteral:
		return "Int"
	case FloatLiteral:
		return "Float"
	case StringLiteral:
		return "String"
	case BoolLiteral:
		return "Bool"
	case UnitLiteral:
		return "Unit"
	default:
		return "Any"
	}
}

// Literal represents a constant expression.
// Examples: 42, 3.14, "hello", true
type Literal struct {
	baseExpr
	Kind  LiteralKind
	Value string // Original source text (for exact representation)
}

// NewLiteral creates a literal expression.
func NewLiteral(session *Session, src *source.Span, kind LiteralKind, value string) *Literal {
	return &Literal{
		baseExpr: baseExpr{baseStmt{newBaseNode(session, src)}},
		Kind:     kind,
		Value:    value,
	}
}

// NameRef represents a reference to a named declaration.
// Examples: x, console, Widget
type NameRef struct {
	baseExpr
	Name string // Referenced name
}

// NewNameRef creates a name reference.
func NewNameRef(session *Session, src *source.Span, name string) *NameRef {
	if name == "" {
		panic("fir: name ref constructed without a name")
	}
	return &NameRef{
		baseExpr: baseExpr{baseStmt{newBaseNode(session, src)}},
		Name:     name,
	}
}

// Call represents a call expression.
// Example: render(widget, depth)
type Call struct {
	baseExpr
	Callee Expression   // Called expression (never nil)
	Args   []Expression // Arguments (may be empty)
}

// NewCall creates a call expression.
func NewCall(session *Session, src *source.Span, callee Expression, args ...Expression) *Call {
	if callee == nil {
		panic("fir: call constructed without a callee")
	}
	return &Call{
		baseExpr: baseExpr{baseStmt{newBaseNode(session, src)}},
		Callee:   callee,
		Args:     args,
	}
}

// Block represents a brace-delimited sequence of statements. A block is
// usable in expression position but carries no value of its own.
type Block struct {
	baseExpr
	Statements []Statement
}

// NewBlock creates a block expression.
func NewBlock(session *Session, src *source.Span, stmts ...Statement) *Block {
	return &Block{
		baseExpr:   baseExpr{baseStmt{newBaseNode(session, src)}},
		Statements: stmts,
	}
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expression = (*Literal)(nil)
	_ Expression = (*NameRef)(nil)
	_ Expression = (*Call)(nil)
	_ Expression = (*Block)(nil)
)
