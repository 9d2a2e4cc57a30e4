package fir

import "fmt"

// Visitor defines the generic visitor protocol over the FIR taxonomy.
// Type parameter R is the result of visit methods; D is a caller-defined
// context value threaded manually through the traversal, so one visitor
// instance can be reused across independent traversals with different
// accumulation state.
//
// Example usage for collecting declaration names:
//
//	type names struct {
//		fir.DefaultVisitor[struct{}, *[]string]
//	}
//	func (v *names) VisitClass(c *fir.Class, out *[]string) struct{} {
//		*out = append(*out, c.Name())
//		fir.AcceptChildren[struct{}](c, v, out)
//		return struct{}{}
//	}
//
// Partial visitors embed DefaultVisitor and override only the methods
// they care about; every other kind falls back to its Element handler.
type Visitor[R, D any] interface {
	// Compilation unit
	VisitFile(*File, D) R

	// Member declarations
	VisitClass(*Class, D) R
	VisitFunction(*Function, D) R
	VisitProperty(*Property, D) R

	// Implicit declarations
	VisitTypeParameter(*TypeParameter, D) R
	VisitValueParameter(*ValueParameter, D) R

	// Facet nodes
	VisitAnnotation(*Annotation, D) R
	VisitDeclarationStatus(*DeclarationStatus, D) R

	// Type refs
	VisitImplicitTypeRef(*ImplicitTypeRef, D) R
	VisitUserTypeRef(*UserTypeRef, D) R
	VisitDelegatedTypeRef(*DelegatedTypeRef, D) R
	VisitErrorTypeRef(*ErrorTypeRef, D) R

	// Expressions
	VisitLiteral(*Literal, D) R
	VisitNameRef(*NameRef, D) R
	VisitCall(*Call, D) R
	VisitBlock(*Block, D) R

	// Statements
	VisitVariableAssignment(*VariableAssignment, D) R
}

// DefaultVisitor implements every Visitor method by forwarding to its
// Element fallback. Embed it to build partial visitors: overridden
// methods win, every other kind reaches Element. Dispatching a kind with
// neither an override nor an Element handler is a caller configuration
// error and panics.
type DefaultVisitor[R, D any] struct {
	// Element handles any node kind without a specific override.
	Element func(n Node, data D) R
}

func (v DefaultVisitor[R, D]) element(n Node, data D) R {
	if v.Element == nil {
		panic(fmt.Sprintf("fir: no visitor method for %T and no Element fallback configured", n))
	}
	return v.Element(n, data)
}

func (v DefaultVisitor[R, D]) VisitFile(n *File, data D) R               { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitClass(n *Class, data D) R             { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitFunction(n *Function, data D) R       { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitProperty(n *Property, data D) R       { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitTypeParameter(n *TypeParameter, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitValueParameter(n *ValueParameter, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitAnnotation(n *Annotation, data D) R { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitDeclarationStatus(n *DeclarationStatus, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitImplicitTypeRef(n *ImplicitTypeRef, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitUserTypeRef(n *UserTypeRef, data D) R { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitDelegatedTypeRef(n *DelegatedTypeRef, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitErrorTypeRef(n *ErrorTypeRef, data D) R {
	return v.element(n, data)
}
func (v DefaultVisitor[R, D]) VisitLiteral(n *Literal, data D) R { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitNameRef(n *NameRef, data D) R { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitCall(n *Call, data D) R       { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitBlock(n *Block, data D) R     { return v.element(n, data) }
func (v DefaultVisitor[R, D]) VisitVariableAssignment(n *VariableAssignment, data D) R {
	return v.element(n, data)
}

// Accept dispatches to the visitor method matching the node's kind.
// This is the double-dispatch entry point: the node's dynamic type
// selects exactly one visitor method.
//
// Example:
//
//	result := fir.Accept[int](node, myVisitor, myContext)
func Accept[R, D any](node Node, v Visitor[R, D], data D) R {
	switch n := node.(type) {
	case *File:
		return v.VisitFile(n, data)
	case *Class:
		return v.VisitClass(n, data)
	case *Function:
		return v.VisitFunction(n, data)
	case *Property:
		return v.VisitProperty(n, data)
	case *TypeParameter:
		return v.VisitTypeParameter(n, data)
	case *ValueParameter:
		return v.VisitValueParameter(n, data)
	case *Annotation:
		return v.VisitAnnotation(n, data)
	case *DeclarationStatus:
		return v.VisitDeclarationStatus(n, data)
	case *ImplicitTypeRef:
		return v.VisitImplicitTypeRef(n, data)
	case *UserTypeRef:
		return v.VisitUserTypeRef(n, data)
	case *DelegatedTypeRef:
		return v.VisitDelegatedTypeRef(n, data)
	case *ErrorTypeRef:
		return v.VisitErrorTypeRef(n, data)
	case *Literal:
		return v.VisitLiteral(n, data)
	case *NameRef:
		return v.VisitNameRef(n, data)
	case *Call:
		return v.VisitCall(n, data)
	case *Block:
		return v.VisitBlock(n, data)
	case *VariableAssignment:
		return v.VisitVariableAssignment(n, data)
	default:
		panic(fmt.Sprintf("fir: Accept on non-tree node %T", node))
	}
}

// AcceptChildren invokes the visitor on each of the node's children in
// fixed declaration order. For member declarations the order is:
// annotations, type parameters, status, then kind-specific children.
// Passes may rely on this left-to-right order (e.g. type parameters are
// introduced before the supertypes that use them).
//
// A DelegatedTypeRef's annotations alias its wrapped ref's list, so its
// children are the wrapped ref and the delegate only; the annotations
// are reached through the wrapped ref without a double visit.
func AcceptChildren[R, D any](node Node, v Visitor[R, D], data D) {
	switch n := node.(type) {
	case *File:
		for _, d := range n.Decls {
			Accept(d, v, data)
		}

	case *Class:
		acceptMemberFacets(&n.memberDecl, v, data)
		for _, st := range n.Supertypes {
			Accept(st, v, data)
		}
		for _, m := range n.Members {
			Accept(m, v, data)
		}

	case *Function:
		acceptMemberFacets(&n.memberDecl, v, data)
		for _, p := range n.Params {
			Accept(p, v, data)
		}
		Accept(n.ReturnType, v, data)
		if n.Body != nil {
			Accept(n.Body, v, data)
		}

	case *Property:
		acceptMemberFacets(&n.memberDecl, v, data)
		Accept(n.TypeRef, v, data)
		if n.Initializer != nil {
			Accept(n.Initializer, v, data)
		}
		if n.Delegate != nil {
			Accept(n.Delegate, v, data)
		}

	case *TypeParameter:
		acceptAnnotations(n.annotations, v, data)
		for _, b := range n.Bounds {
			Accept(b, v, data)
		}

	case *ValueParameter:
		acceptAnnotations(n.annotations, v, data)
		Accept(n.TypeRef, v, data)
		if n.Default != nil {
			Accept(n.Default, v, data)
		}

	case *Annotation:
		for _, a := range n.Args {
			Accept(a, v, data)
		}

	case *DeclarationStatus:
		// no children

	case *ImplicitTypeRef:
		acceptAnnotations(n.annotations, v, data)

	case *UserTypeRef:
		acceptAnnotations(n.annotations, v, data)
		for _, a := range n.Args {
			Accept(a, v, data)
		}

	case *ErrorTypeRef:
		acceptAnnotations(n.annotations, v, data)

	case *DelegatedTypeRef:
		Accept(n.TypeRef, v, data)
		if n.Delegate != nil {
			Accept(n.Delegate, v, data)
		}

	case *Literal, *NameRef:
		// no children

	case *Call:
		Accept(n.Callee, v, data)
		for _, a := range n.Args {
			Accept(a, v, data)
		}

	case *Block:
		for _, s := range n.Statements {
			Accept(s, v, data)
		}

	case *VariableAssignment:
		Accept(n.LValue, v, data)
		if n.Receiver != nil {
			Accept(n.Receiver, v, data)
		}
		Accept(n.Value, v, data)

	default:
		panic(fmt.Sprintf("fir: AcceptChildren on non-tree node %T", node))
	}
}

// acceptMemberFacets visits the shared member-declaration facets in the
// contractual order: annotations, type parameters, status.
func acceptMemberFacets[R, D any](d *memberDecl, v Visitor[R, D], data D) {
	acceptAnnotations(d.annotations, v, data)
	for _, tp := range d.typeParams {
		Accept(tp, v, data)
	}
	Accept(d.status, v, data)
}

func acceptAnnotations[R, D any](l *AnnotationList, v Visitor[R, D], data D) {
	for _, a := range l.items {
		Accept(a, v, data)
	}
}
