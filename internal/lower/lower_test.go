package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/fir"
)

func status(s *fir.Session) *fir.DeclarationStatus {
	return fir.NewDeclarationStatus(s, nil, fir.Public, fir.Final)
}

func TestInferTypesFromLiteral(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	p := fir.NewProperty(s, nil, "prefix", status(s), fir.NewImplicitTypeRef(s, nil))
	p.Initializer = fir.NewLiteral(s, nil, fir.StringLiteral, `"log: "`)
	file.Decls = append(file.Decls, p)

	var rep Report
	InferTypes(file, &rep)

	assert.Equal(t, 1, rep.Inferred)
	ref, ok := p.TypeRef.(*fir.UserTypeRef)
	require.True(t, ok)
	assert.Equal(t, "String", ref.QualifiedName)
}

func TestInferTypesLeavesExplicitAndNonLiteral(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	explicit := fir.NewProperty(s, nil, "a", status(s), fir.NewUserTypeRef(s, nil, "Int"))
	explicit.Initializer = fir.NewLiteral(s, nil, fir.IntLiteral, "1")

	computed := fir.NewProperty(s, nil, "b", status(s), fir.NewImplicitTypeRef(s, nil))
	computed.Initializer = fir.NewCall(s, nil, fir.NewNameRef(s, nil, "f"))

	file.Decls = append(file.Decls, explicit, computed)

	var rep Report
	InferTypes(file, &rep)

	assert.Equal(t, 0, rep.Inferred)
	assert.IsType(t, (*fir.UserTypeRef)(nil), explicit.TypeRef)
	assert.IsType(t, (*fir.ImplicitTypeRef)(nil), computed.TypeRef)
}

func TestInferTypesInsideClass(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	c := fir.NewClass(s, nil, "C", status(s))
	p := fir.NewProperty(s, nil, "count", status(s), fir.NewImplicitTypeRef(s, nil))
	p.Initializer = fir.NewLiteral(s, nil, fir.IntLiteral, "0")
	c.Members = append(c.Members, p)
	file.Decls = append(file.Decls, c)

	var rep Report
	InferTypes(file, &rep)

	assert.Equal(t, 1, rep.Inferred)
	ref, ok := p.TypeRef.(*fir.UserTypeRef)
	require.True(t, ok)
	assert.Equal(t, "Int", ref.QualifiedName)
}

func TestExpandDelegatesProperty(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	p := fir.NewProperty(s, nil, "log", status(s), fir.NewUserTypeRef(s, nil, "Logger"))
	p.Delegate = fir.NewNameRef(s, nil, "provider")
	file.Decls = append(file.Decls, p)

	var rep Report
	ExpandDelegates(file, &rep)

	assert.Equal(t, 1, rep.Expanded)
	require.Len(t, file.Decls, 2)

	backing, ok := file.Decls[0].(*fir.Property)
	require.True(t, ok)
	assert.Equal(t, "log$delegate", backing.Name())
	assert.Equal(t, fir.Private, backing.Visibility())
	ref, ok := backing.Initializer.(*fir.NameRef)
	require.True(t, ok)
	assert.Equal(t, "provider", ref.Name)

	assert.Same(t, p, file.Decls[1])
	assert.Nil(t, p.Delegate)
}

func TestExpandDelegatesSupertype(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	c := fir.NewClass(s, nil, "Logger", status(s))
	printer := fir.NewUserTypeRef(s, nil, "Printer")
	c.Supertypes = append(c.Supertypes,
		fir.NewDelegatedTypeRef(s, nil, printer, fir.NewNameRef(s, nil, "console")))
	file.Decls = append(file.Decls, c)

	var rep Report
	ExpandDelegates(file, &rep)

	assert.Equal(t, 1, rep.Expanded)
	require.Len(t, c.Supertypes, 1)
	assert.Same(t, printer, c.Supertypes[0])

	require.Len(t, c.Members, 1)
	backing, ok := c.Members[0].(*fir.Property)
	require.True(t, ok)
	assert.Equal(t, "printer$delegate", backing.Name())
	assert.Equal(t, fir.Private, backing.Visibility())
}

func TestExpandDelegatesDegenerateSupertypeName(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	tests := []struct {
		name      string
		qualified string
	}{
		{"trailing dot", "ext.pkg."},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fir.NewClass(s, nil, "C", status(s))
			ref := fir.NewUserTypeRef(s, nil, tt.qualified)
			c.Supertypes = append(c.Supertypes,
				fir.NewDelegatedTypeRef(s, nil, ref, fir.NewNameRef(s, nil, "impl")))
			file.Decls = []fir.Declaration{c}

			var rep Report
			ExpandDelegates(file, &rep)

			require.Len(t, c.Members, 1)
			backing, ok := c.Members[0].(*fir.Property)
			require.True(t, ok)
			assert.Equal(t, "super$delegate", backing.Name())
		})
	}
}

func TestExpandDelegatesUnwrapsWithoutDelegate(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	c := fir.NewClass(s, nil, "C", status(s))
	base := fir.NewUserTypeRef(s, nil, "Base")
	c.Supertypes = append(c.Supertypes, fir.NewDelegatedTypeRef(s, nil, base, nil))
	file.Decls = append(file.Decls, c)

	var rep Report
	ExpandDelegates(file, &rep)

	assert.Equal(t, 0, rep.Expanded)
	require.Len(t, c.Supertypes, 1)
	assert.Same(t, base, c.Supertypes[0])
	assert.Empty(t, c.Members)
}

func TestSimplifyBlocksFlattensAndPrunes(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	inner := fir.NewBlock(s, nil,
		fir.NewLiteral(s, nil, fir.IntLiteral, "1"),
		fir.NewCall(s, nil, fir.NewNameRef(s, nil, "emit")),
	)
	body := fir.NewBlock(s, nil,
		fir.NewNameRef(s, nil, "noise"),
		inner,
		fir.NewVariableAssignment(s, nil,
			fir.NewNameRef(s, nil, "x"),
			fir.NewLiteral(s, nil, fir.IntLiteral, "2")),
	)

	fn := fir.NewFunction(s, nil, "f", status(s))
	fn.Body = body
	file.Decls = append(file.Decls, fn)

	var rep Report
	SimplifyBlocks(file, &rep)

	assert.Equal(t, 2, rep.Pruned)
	require.Len(t, body.Statements, 2)
	assert.IsType(t, (*fir.Call)(nil), body.Statements[0])
	assert.IsType(t, (*fir.VariableAssignment)(nil), body.Statements[1])
}

func TestSimplifyBlocksKeepsFunctionBodySlot(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	fn := fir.NewFunction(s, nil, "f", status(s))
	fn.Body = fir.NewBlock(s, nil, fir.NewBlock(s, nil))
	file.Decls = append(file.Decls, fn)

	var rep Report
	SimplifyBlocks(file, &rep)

	require.NotNil(t, fn.Body)
	assert.Empty(t, fn.Body.Statements)
}

func TestPassesCompose(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	p := fir.NewProperty(s, nil, "title", status(s), fir.NewImplicitTypeRef(s, nil))
	p.Delegate = fir.NewNameRef(s, nil, "lazyTitle")
	file.Decls = append(file.Decls, p)

	var rep Report
	ExpandDelegates(file, &rep)
	InferTypes(file, &rep)
	SimplifyBlocks(file, &rep)

	assert.Equal(t, 1, rep.Expanded)
	require.Len(t, file.Decls, 2)
	assert.Equal(t, "title$delegate", file.Decls[0].Name())
}

func TestSimplifyBlocksPrunesInsideCallArgsNot(t *testing.T) {
	s := fir.NewSession("test")
	file := fir.NewFile(s, nil, "demo")

	call := fir.NewCall(s, nil,
		fir.NewNameRef(s, nil, "emit"),
		fir.NewLiteral(s, nil, fir.StringLiteral, `"kept"`))
	fn := fir.NewFunction(s, nil, "f", status(s))
	fn.Body = fir.NewBlock(s, nil, call)
	file.Decls = append(file.Decls, fn)

	var rep Report
	SimplifyBlocks(file, &rep)

	assert.Equal(t, 0, rep.Pruned)
	require.Len(t, call.Args, 1)
}
