package fir_test

import (
	"testing"

	"github.com/lumen-lang/lumen/fir"
)

// buildSampleFile constructs a small but representative tree.
func buildSampleFile(s *fir.Session) *fir.File {
	file := fir.NewFile(s, nil, "demo")

	class := fir.NewClass(s, nil, "Logger", newStatus(s))
	class.Annotations().Append(fir.NewAnnotation(s, nil, "lumen.Service"))
	class.SetTypeParameters([]*fir.TypeParameter{fir.NewTypeParameter(s, nil, "T")})
	class.Supertypes = []fir.TypeRef{
		fir.NewDelegatedTypeRef(s, nil,
			fir.NewUserTypeRef(s, nil, "Printer"),
			fir.NewNameRef(s, nil, "console")),
	}

	prop := fir.NewProperty(s, nil, "prefix", newStatus(s), nil)
	prop.Initializer = fir.NewLiteral(s, nil, fir.StringLiteral, `"log: "`)
	class.Members = []fir.Declaration{prop}

	fn := fir.NewFunction(s, nil, "log", newStatus(s))
	fn.Params = []*fir.ValueParameter{
		fir.NewValueParameter(s, nil, "message", fir.NewUserTypeRef(s, nil, "String")),
	}
	fn.Body = fir.NewBlock(s, nil,
		fir.NewVariableAssignment(s, nil,
			fir.NewNameRef(s, nil, "last"),
			fir.NewNameRef(s, nil, "message")),
		fir.NewCall(s, nil, fir.NewNameRef(s, nil, "emit"),
			fir.NewNameRef(s, nil, "message")),
	)

	file.Decls = []fir.Declaration{class, fn}
	return file
}

// TestIdentityTransform verifies transforming with the identity
// transformer returns the same instances everywhere: same root, same
// child slots, structurally identical rendering.
func TestIdentityTransform(t *testing.T) {
	s := fir.NewSession("test")
	file := buildSampleFile(s)
	before := fir.String(file)

	class := file.Decls[0].(*fir.Class)
	prop := class.Members[0].(*fir.Property)
	supertype := class.Supertypes[0]
	decls := file.Decls

	ident := fir.Identity[struct{}]()
	result := fir.Accept[fir.Node](file, ident, struct{}{})

	if result != fir.Node(file) {
		t.Fatalf("identity transform replaced the root: got %T", result)
	}
	if file.Decls[0] != fir.Declaration(class) {
		t.Error("identity transform replaced a declaration slot")
	}
	if class.Members[0] != fir.Declaration(prop) {
		t.Error("identity transform replaced a member slot")
	}
	if class.Supertypes[0] != supertype {
		t.Error("identity transform replaced a supertype slot")
	}
	// Unchanged list slots keep their backing slice.
	if &file.Decls[0] != &decls[0] {
		t.Error("identity transform reallocated an unchanged list slot")
	}
	if after := fir.String(file); after != before {
		t.Errorf("identity transform changed the rendering:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

// typeRefReplacer replaces a specific UserTypeRef instance and counts
// every node its handlers are invoked on.
type typeRefReplacer struct {
	fir.DefaultTransformer[struct{}]
	target      *fir.UserTypeRef
	replacement fir.TypeRef
	visited     int
}

func newTypeRefReplacer(target *fir.UserTypeRef, replacement fir.TypeRef) *typeRefReplacer {
	t := &typeRefReplacer{target: target, replacement: replacement}
	t.Element = func(n fir.Node, _ struct{}) fir.Node {
		t.visited++
		return n
	}
	return t
}

func (t *typeRefReplacer) VisitUserTypeRef(n *fir.UserTypeRef, _ struct{}) fir.Node {
	t.visited++
	if n == t.target {
		return t.replacement
	}
	return n
}

// TestTransformReplacesSlot verifies transforming a DelegatedTypeRef's
// children reassigns the wrapped-ref slot to the new instance while the
// unchanged delegate slot keeps its instance.
func TestTransformReplacesSlot(t *testing.T) {
	s := fir.NewSession("test")
	wrapped := fir.NewUserTypeRef(s, nil, "Printer")
	delegate := fir.NewNameRef(s, nil, "console")
	delegated := fir.NewDelegatedTypeRef(s, nil, wrapped, delegate)

	replacement := fir.NewUserTypeRef(s, nil, "resolved.Printer")
	tr := newTypeRefReplacer(wrapped, replacement)

	fir.TransformChildren[struct{}](delegated, tr, struct{}{})

	if delegated.TypeRef != fir.TypeRef(replacement) {
		t.Errorf("wrapped slot = %v, want the replacement instance", delegated.TypeRef)
	}
	if delegated.Delegate != fir.Expression(delegate) {
		t.Error("delegate slot changed although the transformer left it unchanged")
	}
}

// TestOptionalChildShortCircuit verifies absent optional children are
// never handed to the transformer and stay absent.
func TestOptionalChildShortCircuit(t *testing.T) {
	s := fir.NewSession("test")
	assign := fir.NewVariableAssignment(s, nil,
		fir.NewNameRef(s, nil, "x"),
		fir.NewLiteral(s, nil, fir.IntLiteral, "1"))

	tr := newTypeRefReplacer(nil, nil)
	fir.TransformChildren[struct{}](assign, tr, struct{}{})

	// Only the target and value slots were presented.
	if tr.visited != 2 {
		t.Errorf("transformer invoked on %d children, want 2", tr.visited)
	}
	if assign.Receiver != nil {
		t.Error("absent receiver slot became non-nil")
	}
}

// statementRewriter drops "drop" name refs, splices "dup" name refs into
// two copies and leaves everything else alone.
type statementRewriter struct {
	fir.DefaultTransformer[struct{}]
}

func newStatementRewriter() *statementRewriter {
	t := &statementRewriter{}
	t.Element = func(n fir.Node, _ struct{}) fir.Node { return n }
	return t
}

func (t *statementRewriter) VisitNameRef(n *fir.NameRef, _ struct{}) fir.Node {
	switch n.Name {
	case "drop":
		return nil
	case "dup":
		first := fir.NewNameRef(n.Session(), n.Source(), "dup")
		second := fir.NewNameRef(n.Session(), n.Source(), "dup")
		return fir.Splice(first, second)
	default:
		return n
	}
}

// TestTransformSliceCardinality verifies list-slot transforms may drop
// and splice elements.
func TestTransformSliceCardinality(t *testing.T) {
	s := fir.NewSession("test")
	keep := fir.NewLiteral(s, nil, fir.IntLiteral, "1")
	block := fir.NewBlock(s, nil,
		fir.NewNameRef(s, nil, "drop"),
		fir.NewNameRef(s, nil, "dup"),
		keep,
	)

	fir.TransformChildren[struct{}](block, newStatementRewriter(), struct{}{})

	if len(block.Statements) != 3 {
		t.Fatalf("statements after rewrite = %d, want 3", len(block.Statements))
	}
	for i := 0; i < 2; i++ {
		ref, ok := block.Statements[i].(*fir.NameRef)
		if !ok || ref.Name != "dup" {
			t.Errorf("statement %d = %v, want dup name ref", i, block.Statements[i])
		}
	}
	if block.Statements[2] != fir.Statement(keep) {
		t.Error("unchanged statement lost its identity")
	}
}

// TestTransformSliceUnchangedIdentity verifies an all-unchanged list
// transform returns the original slice.
func TestTransformSliceUnchangedIdentity(t *testing.T) {
	s := fir.NewSession("test")
	stmts := []fir.Statement{
		fir.NewLiteral(s, nil, fir.IntLiteral, "1"),
		fir.NewNameRef(s, nil, "x"),
	}

	out := fir.TransformSlice[fir.Statement](stmts, newStatementRewriter(), struct{}{})
	if &out[0] != &stmts[0] {
		t.Error("unchanged list transform reallocated the slice")
	}
}

// TestTransformIncompatibleReplacementPanics verifies a replacement of
// the wrong kind for its slot fails fast.
func TestTransformIncompatibleReplacementPanics(t *testing.T) {
	s := fir.NewSession("test")
	prop := fir.NewProperty(s, nil, "p", newStatus(s), fir.NewUserTypeRef(s, nil, "Int"))

	tr := &badTransformer{}
	tr.Element = func(n fir.Node, _ struct{}) fir.Node { return n }

	defer func() {
		if recover() == nil {
			t.Error("expected incompatible replacement to panic")
		}
	}()
	fir.TransformChildren[struct{}](prop, tr, struct{}{})
}

// badTransformer replaces type refs with a non-TypeRef node.
type badTransformer struct {
	fir.DefaultTransformer[struct{}]
}

func (t *badTransformer) VisitUserTypeRef(n *fir.UserTypeRef, _ struct{}) fir.Node {
	return fir.NewLiteral(n.Session(), nil, fir.IntLiteral, "0")
}

// TestTransformNilSingleSlotPanics verifies a handler returning nil for
// a single slot fails fast instead of nilling an always-occupied child.
// Dropping is only defined for list elements.
func TestTransformNilSingleSlotPanics(t *testing.T) {
	s := fir.NewSession("test")
	prop := fir.NewProperty(s, nil, "p", newStatus(s), fir.NewUserTypeRef(s, nil, "Int"))

	tr := &droppingTransformer{}
	tr.Element = func(n fir.Node, _ struct{}) fir.Node { return n }

	defer func() {
		if recover() == nil {
			t.Error("expected nil replacement in a single slot to panic")
		}
	}()
	fir.TransformChildren[struct{}](prop, tr, struct{}{})
}

// TestTransformNilDropsListElement verifies the same nil return is still
// a drop when the node sits in a list slot.
func TestTransformNilDropsListElement(t *testing.T) {
	s := fir.NewSession("test")
	args := []fir.TypeRef{
		fir.NewUserTypeRef(s, nil, "Int"),
		fir.NewImplicitTypeRef(s, nil),
	}

	tr := &droppingTransformer{}
	tr.Element = func(n fir.Node, _ struct{}) fir.Node { return n }

	out := fir.TransformSlice[fir.TypeRef](args, tr, struct{}{})
	if len(out) != 1 {
		t.Fatalf("expected the user type ref to be dropped, got %d elements", len(out))
	}
	if _, ok := out[0].(*fir.ImplicitTypeRef); !ok {
		t.Errorf("expected the implicit type ref to survive, got %T", out[0])
	}
}

// droppingTransformer returns nil for user type refs.
type droppingTransformer struct {
	fir.DefaultTransformer[struct{}]
}

func (t *droppingTransformer) VisitUserTypeRef(n *fir.UserTypeRef, _ struct{}) fir.Node {
	return nil
}
