package resolve

import (
	"strings"

	"github.com/lumen-lang/lumen/fir"
)

// Result contains the outcome of name resolution.
type Result struct {
	// File scope holding the top-level declarations.
	Globals *Scope

	// Errors encountered during resolution.
	Errors ErrorList

	// Warnings (non-fatal issues).
	Warnings WarningList
}

// resolver walks the tree as a partial visitor, threading the current
// scope through the visit data slot.
type resolver struct {
	fir.DefaultVisitor[struct{}, *Scope]

	session *fir.Session
	result  *Result

	// All scopes created during resolution, for the unused-name sweep.
	scopes []*Scope
}

// Resolve performs name resolution on the given file.
// Returns the result containing the file scope, errors and warnings.
func Resolve(file *fir.File) (*Result, error) {
	r := &resolver{
		session: file.Session(),
		result:  &Result{},
	}
	r.Element = func(n fir.Node, scope *Scope) struct{} {
		fir.AcceptChildren[struct{}](n, r, scope)
		return struct{}{}
	}

	globals := r.newScope(nil, "file")
	r.result.Globals = globals

	// Phase 1: collect top-level declarations so members can reference
	// each other regardless of order.
	r.collect(file.Decls, globals)

	// Phase 2: resolve all references.
	fir.Accept[struct{}](file, r, globals)

	// Phase 3: sweep for unused declarations.
	r.finalize()

	if err := r.result.Errors.Err(); err != nil {
		return r.result, err
	}
	return r.result, nil
}

func (r *resolver) newScope(parent *Scope, name string) *Scope {
	sc := NewScope(parent, name)
	r.scopes = append(r.scopes, sc)
	return sc
}

// collect defines every declaration in the list into scope, reporting
// duplicates. Bodies are not visited.
func (r *resolver) collect(decls []fir.Declaration, scope *Scope) {
	for _, decl := range decls {
		kind := declKind(decl)
		if scope.Define(decl.Name(), kind, decl) == nil {
			r.result.Errors.Add(decl.Source(), errDuplicateDecl, kind, decl.Name())
		}
	}
}

func declKind(decl fir.Declaration) SymbolKind {
	switch decl.(type) {
	case *fir.Class:
		return SymbolClass
	case *fir.Function:
		return SymbolFunction
	default:
		return SymbolProperty
	}
}

// defineTypeParameters brings a member's type parameters into scope.
// They must be visible to the member's own supertypes and signatures.
func (r *resolver) defineTypeParameters(decl fir.WithTypeParameters, scope *Scope) {
	for _, tp := range decl.TypeParameters() {
		if scope.Define(tp.Name(), SymbolTypeParam, tp) == nil {
			r.result.Errors.Add(tp.Source(), errDuplicateDecl, SymbolTypeParam, tp.Name())
		}
	}
}

func (r *resolver) visitAnnotations(list *fir.AnnotationList, scope *Scope) {
	for _, a := range list.All() {
		fir.Accept[struct{}](a, r, scope)
	}
}

// --- Visitor overrides ---

func (r *resolver) VisitFile(f *fir.File, scope *Scope) struct{} {
	for _, decl := range f.Decls {
		fir.Accept[struct{}](decl, r, scope)
	}
	return struct{}{}
}

func (r *resolver) VisitClass(c *fir.Class, scope *Scope) struct{} {
	inner := r.newScope(scope, c.Name())
	r.defineTypeParameters(c, inner)

	r.visitAnnotations(c.Annotations(), inner)
	for _, tp := range c.TypeParameters() {
		fir.Accept[struct{}](tp, r, inner)
	}
	for _, super := range c.Supertypes {
		fir.Accept[struct{}](super, r, inner)
	}

	r.collect(c.Members, inner)
	for _, member := range c.Members {
		fir.Accept[struct{}](member, r, inner)
	}
	return struct{}{}
}

func (r *resolver) VisitFunction(fn *fir.Function, scope *Scope) struct{} {
	inner := r.newScope(scope, fn.Name())
	r.defineTypeParameters(fn, inner)

	r.visitAnnotations(fn.Annotations(), inner)
	for _, tp := range fn.TypeParameters() {
		fir.Accept[struct{}](tp, r, inner)
	}
	for _, param := range fn.Params {
		if _, taken := inner.LookupLocal(param.Name()); taken {
			r.result.Errors.Add(param.Source(), errDuplicateParam, param.Name(), fn.Name())
		} else {
			if sym, ok := scope.Lookup(param.Name()); ok && sym.Kind == SymbolFunction {
				r.result.Errors.Add(param.Source(), errParamShadowsFunc, param.Name())
			}
			inner.Define(param.Name(), SymbolParam, param)
		}
		fir.Accept[struct{}](param, r, inner)
	}
	fir.Accept[struct{}](fn.ReturnType, r, inner)
	if fn.Body != nil {
		r.visitBlockStatements(fn.Body, inner)
	}
	return struct{}{}
}

func (r *resolver) VisitProperty(p *fir.Property, scope *Scope) struct{} {
	inner := r.newScope(scope, p.Name())
	r.defineTypeParameters(p, inner)

	r.visitAnnotations(p.Annotations(), inner)
	for _, tp := range p.TypeParameters() {
		fir.Accept[struct{}](tp, r, inner)
	}
	fir.Accept[struct{}](p.TypeRef, r, inner)
	if p.Initializer != nil {
		fir.Accept[struct{}](p.Initializer, r, inner)
	}
	if p.Delegate != nil {
		fir.Accept[struct{}](p.Delegate, r, inner)
	}
	return struct{}{}
}

func (r *resolver) VisitBlock(b *fir.Block, scope *Scope) struct{} {
	r.visitBlockStatements(b, r.newScope(scope, "block"))
	return struct{}{}
}

// visitBlockStatements resolves a block's statements directly in scope,
// without opening another scope. Function bodies use this so parameters
// and body locals share one scope.
func (r *resolver) visitBlockStatements(b *fir.Block, scope *Scope) {
	for _, stmt := range b.Statements {
		fir.Accept[struct{}](stmt, r, scope)
	}
}

func (r *resolver) VisitUserTypeRef(ref *fir.UserTypeRef, scope *Scope) struct{} {
	r.visitAnnotations(ref.Annotations(), scope)
	for _, arg := range ref.Args {
		fir.Accept[struct{}](arg, r, scope)
	}

	name := ref.QualifiedName
	// Dotted names refer to other modules and resolve outside this file.
	if strings.Contains(name, ".") {
		return struct{}{}
	}
	if r.session.IsBuiltinType(name) {
		return struct{}{}
	}
	sym, ok := scope.Lookup(name)
	if !ok || !sym.IsType() {
		r.result.Errors.Add(ref.Source(), errUnresolvedType, name)
		return struct{}{}
	}
	sym.Used = true
	return struct{}{}
}

func (r *resolver) VisitErrorTypeRef(ref *fir.ErrorTypeRef, scope *Scope) struct{} {
	r.result.Errors.Add(ref.Source(), errBrokenTypeRef, ref.Message)
	return struct{}{}
}

func (r *resolver) VisitNameRef(ref *fir.NameRef, scope *Scope) struct{} {
	sym, ok := scope.Lookup(ref.Name)
	if !ok {
		r.result.Errors.Add(ref.Source(), errUnresolvedName, ref.Name)
		return struct{}{}
	}
	sym.Used = true
	return struct{}{}
}

// finalize sweeps all scopes for declarations that were never referenced.
// Public declarations are part of the module surface and are exempt.
func (r *resolver) finalize() {
	for _, scope := range r.scopes {
		scope.ForEach(func(name string, sym *Symbol) {
			if sym.Used || exported(sym) {
				return
			}
			r.result.Warnings.Add(sym.Span, warnUnusedDecl, sym.Kind, name)
		})
	}
}

func exported(sym *Symbol) bool {
	decl, ok := sym.Decl.(fir.WithStatus)
	if !ok {
		return false
	}
	return decl.Visibility() == fir.Public
}
