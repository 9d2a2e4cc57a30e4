package fir

import "github.com/lumen-lang/lumen/source"

// memberDecl provides the facets shared by realized member declarations:
// a name, an annotation list, type parameters and a status record.
// Visibility, modality and the expect/actual flags are derived from the
// status record on every read; they are never stored separately, so a
// status mutation is immediately visible through the derived accessors.
type memberDecl struct {
	baseNode
	name        string
	annotations *AnnotationList
	typeParams  []*TypeParameter
	status      *DeclarationStatus
}

func (d *memberDecl) Name() string                     { return d.name }
func (d *memberDecl) Annotations() *AnnotationList     { return d.annotations }
func (d *memberDecl) TypeParameters() []*TypeParameter { return d.typeParams }
func (d *memberDecl) Status() *DeclarationStatus       { return d.status }

func (d *memberDecl) Visibility() Visibility { return d.status.Visibility }
func (d *memberDecl) Modality() Modality     { return d.status.Modality }
func (d *memberDecl) IsExpect() bool         { return d.status.Expect }
func (d *memberDecl) IsActual() bool         { return d.status.Actual }

func (d *memberDecl) declNode() {}

// SetTypeParameters replaces the declaration's type parameter list.
func (d *memberDecl) SetTypeParameters(params []*TypeParameter) { d.typeParams = params }

// newMemberDecl validates the facets required for a realized declaration.
// A missing name or status is a programming error and fails fast.
func newMemberDecl(session *Session, src *source.Span, name string, status *DeclarationStatus) memberDecl {
	if name == "" {
		panic("fir: declaration constructed without a name")
	}
	if status == nil {
		panic("fir: declaration " + name + " constructed without a status")
	}
	return memberDecl{
		baseNode:    newBaseNode(session, src),
		name:        name,
		annotations: NewAnnotationList(),
		status:      status,
	}
}

// -----------------------------------------------------------------------------
// Compilation unit
// -----------------------------------------------------------------------------

// File is the root of one compilation unit.
type File struct {
	baseNode
	PackageName string
	Decls       []Declaration
}

// NewFile creates a compilation unit root.
func NewFile(session *Session, src *source.Span, packageName string) *File {
	return &File{
		baseNode:    newBaseNode(session, src),
		PackageName: packageName,
	}
}

func (f *File) Name() string { return f.PackageName }
func (f *File) declNode()    {}

// -----------------------------------------------------------------------------
// Member declarations
// -----------------------------------------------------------------------------

// Class represents a class declaration with supertypes and members.
type Class struct {
	memberDecl
	Supertypes []TypeRef     // Declared supertypes in source order
	Members    []Declaration // Member declarations in source order
}

// NewClass creates a class declaration.
func NewClass(session *Session, src *source.Span, name string, status *DeclarationStatus) *Class {
	return &Class{memberDecl: newMemberDecl(session, src, name, status)}
}

// Function represents a function declaration.
type Function struct {
	memberDecl
	Params     []*ValueParameter
	ReturnType TypeRef // Never nil; ImplicitTypeRef when unspecified
	Body       *Block  // nil for abstract/expect functions
}

// NewFunction creates a function declaration with an implicit return type.
func NewFunction(session *Session, src *source.Span, name string, status *DeclarationStatus) *Function {
	return &Function{
		memberDecl: newMemberDecl(session, src, name, status),
		ReturnType: NewImplicitTypeRef(session, nil),
	}
}

// Property represents a val/var declaration.
type Property struct {
	memberDecl
	TypeRef     TypeRef    // Never nil; ImplicitTypeRef when to be inferred
	Initializer Expression // nil if none
	Delegate    Expression // nil unless declared with a delegate
	Mutable     bool       // true for var, false for val
}

// NewProperty creates a property declaration. A nil typeRef means the
// type is implicit and will be inferred.
func NewProperty(session *Session, src *source.Span, name string, status *DeclarationStatus, typeRef TypeRef) *Property {
	if typeRef == nil {
		typeRef = NewImplicitTypeRef(session, nil)
	}
	return &Property{
		memberDecl: newMemberDecl(session, src, name, status),
		TypeRef:    typeRef,
	}
}

// -----------------------------------------------------------------------------
// Implicit declarations
// -----------------------------------------------------------------------------

// TypeParameter represents one declared type parameter. Type parameters
// are implicit declarations: they carry no status record.
type TypeParameter struct {
	baseNode
	name        string
	annotations *AnnotationList
	Bounds      []TypeRef // Upper bounds (may be empty)
}

// NewTypeParameter creates a type parameter.
func NewTypeParameter(session *Session, src *source.Span, name string) *TypeParameter {
	if name == "" {
		panic("fir: type parameter constructed without a name")
	}
	return &TypeParameter{
		baseNode:    newBaseNode(session, src),
		name:        name,
		annotations: NewAnnotationList(),
	}
}

func (p *TypeParameter) Name() string                 { return p.name }
func (p *TypeParameter) Annotations() *AnnotationList { return p.annotations }
func (p *TypeParameter) declNode()                    {}

// ValueParameter represents one declared function parameter.
// Like type parameters, value parameters are implicit declarations.
type ValueParameter struct {
	baseNode
	name        string
	annotations *AnnotationList
	TypeRef     TypeRef    // Never nil
	Default     Expression // nil if no default value
}

// NewValueParameter creates a value parameter.
func NewValueParameter(session *Session, src *source.Span, name string, typeRef TypeRef) *ValueParameter {
	if name == "" {
		panic("fir: value parameter constructed without a name")
	}
	if typeRef == nil {
		typeRef = NewImplicitTypeRef(session, nil)
	}
	return &ValueParameter{
		baseNode:    newBaseNode(session, src),
		name:        name,
		annotations: NewAnnotationList(),
		TypeRef:     typeRef,
	}
}

func (p *ValueParameter) Name() string                 { return p.name }
func (p *ValueParameter) Annotations() *AnnotationList { return p.annotations }
func (p *ValueParameter) declNode()                    {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Declaration = (*File)(nil)
	_ Declaration = (*Class)(nil)
	_ Declaration = (*Function)(nil)
	_ Declaration = (*Property)(nil)
	_ Declaration = (*TypeParameter)(nil)
	_ Declaration = (*ValueParameter)(nil)

	_ WithAnnotations = (*Class)(nil)
	_ WithAnnotations = (*TypeParameter)(nil)
	_ WithAnnotations = (*ValueParameter)(nil)

	_ WithTypeParameters = (*Class)(nil)
	_ WithTypeParameters = (*Function)(nil)
	_ WithTypeParameters = (*Property)(nil)

	_ WithStatus = (*Class)(nil)
	_ WithStatus = (*Function)(nil)
	_ WithStatus = (*Property)(nil)
)
