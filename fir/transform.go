package fir

import "fmt"

// Transformer is the visitor specialization used for tree rewriting:
// every visit method returns the replacement node for the visited one.
// Returning the same instance signals "unchanged". Handlers for list
// slots may additionally return nil (drop the element) or a *NodeList
// (splice several replacements); see TransformSlice.
//
// The protocol does not mandate traversal order: a handler that calls
// TransformChildren before rewriting works bottom-up, one that rewrites
// first works top-down. Each pass decides.
type Transformer[D any] interface {
	Visitor[Node, D]
}

// DefaultTransformer is a DefaultVisitor pre-shaped for transformers.
// Set Element to the recursion you want for unhandled kinds; the common
// choice is forwarding to TransformChildren with the transformer itself.
type DefaultTransformer[D any] struct {
	DefaultVisitor[Node, D]
}

// TransformSingle applies the transformer to one child and returns its
// replacement, cast back to the slot type. A nil replacement or one
// whose kind is incompatible with the slot is a programming error and
// panics: single slots are always occupied, only list elements may be
// dropped.
//
// Callers guard optional slots: a nil child short-circuits at the call
// site and the transformer is never invoked for it.
func TransformSingle[T Node, D any](node T, t Transformer[D], data D) T {
	replacement := Accept[Node](node, t, data)
	if replacement == nil {
		panic(fmt.Sprintf("fir: transformer replaced %T with nil in a single slot", node))
	}
	out, ok := replacement.(T)
	if !ok {
		panic(fmt.Sprintf("fir: transformer replaced %T with incompatible %T", node, replacement))
	}
	return out
}

// TransformSlice applies the transformer to each element of a list slot
// and returns the new ordered sequence. The result may change
// cardinality: a handler returning nil drops the element, a *NodeList
// splices its elements in place, anything else replaces one-for-one.
// If no element changed, the input slice is returned as-is.
func TransformSlice[T Node, D any](list []T, t Transformer[D], data D) []T {
	changed := false
	out := make([]T, 0, len(list))
	for _, el := range list {
		replacement := Accept[Node](el, t, data)
		switch r := replacement.(type) {
		case nil:
			changed = true
		case *NodeList:
			changed = true
			for _, item := range r.Elements {
				cast, ok := item.(T)
				if !ok {
					panic(fmt.Sprintf("fir: spliced %T into a list of %T", item, el))
				}
				out = append(out, cast)
			}
		default:
			cast, ok := replacement.(T)
			if !ok {
				panic(fmt.Sprintf("fir: transformer replaced %T with incompatible %T", el, replacement))
			}
			if any(cast) != any(el) {
				changed = true
			}
			out = append(out, cast)
		}
	}
	if !changed {
		return list
	}
	return out
}

// TransformChildren applies the transformer to every mutable child slot
// of the node, reassigning each slot to the returned replacement, in the
// same declaration order AcceptChildren visits them. Optional slots
// short-circuit when absent: the transformer is never invoked on a
// missing child and the slot stays absent.
//
// The node itself is returned unchanged; only its child slots are
// reassigned. This is how immutable-looking trees are rewritten.
func TransformChildren[D any](node Node, t Transformer[D], data D) Node {
	switch n := node.(type) {
	case *File:
		n.Decls = TransformSlice(n.Decls, t, data)

	case *Class:
		transformMemberFacets(&n.memberDecl, t, data)
		n.Supertypes = TransformSlice(n.Supertypes, t, data)
		n.Members = TransformSlice(n.Members, t, data)

	case *Function:
		transformMemberFacets(&n.memberDecl, t, data)
		n.Params = TransformSlice(n.Params, t, data)
		n.ReturnType = TransformSingle(n.ReturnType, t, data)
		if n.Body != nil {
			n.Body = TransformSingle(n.Body, t, data)
		}

	case *Property:
		transformMemberFacets(&n.memberDecl, t, data)
		n.TypeRef = TransformSingle(n.TypeRef, t, data)
		if n.Initializer != nil {
			n.Initializer = TransformSingle(n.Initializer, t, data)
		}
		if n.Delegate != nil {
			n.Delegate = TransformSingle(n.Delegate, t, data)
		}

	case *TypeParameter:
		transformAnnotations(n.annotations, t, data)
		n.Bounds = TransformSlice(n.Bounds, t, data)

	case *ValueParameter:
		transformAnnotations(n.annotations, t, data)
		n.TypeRef = TransformSingle(n.TypeRef, t, data)
		if n.Default != nil {
			n.Default = TransformSingle(n.Default, t, data)
		}

	case *Annotation:
		n.Args = TransformSlice(n.Args, t, data)

	case *DeclarationStatus:
		// no children

	case *ImplicitTypeRef:
		transformAnnotations(n.annotations, t, data)

	case *UserTypeRef:
		transformAnnotations(n.annotations, t, data)
		n.Args = TransformSlice(n.Args, t, data)

	case *ErrorTypeRef:
		transformAnnotations(n.annotations, t, data)

	case *DelegatedTypeRef:
		n.TypeRef = TransformSingle(n.TypeRef, t, data)
		if n.Delegate != nil {
			n.Delegate = TransformSingle(n.Delegate, t, data)
		}

	case *Literal, *NameRef:
		// no children

	case *Call:
		n.Callee = TransformSingle(n.Callee, t, data)
		n.Args = TransformSlice(n.Args, t, data)

	case *Block:
		n.Statements = TransformSlice(n.Statements, t, data)

	case *VariableAssignment:
		n.LValue = TransformSingle(n.LValue, t, data)
		if n.Receiver != nil {
			n.Receiver = TransformSingle(n.Receiver, t, data)
		}
		n.Value = TransformSingle(n.Value, t, data)

	default:
		panic(fmt.Sprintf("fir: TransformChildren on non-tree node %T", node))
	}
	return node
}

// transformMemberFacets rewrites the shared member-declaration facets in
// the contractual order: annotations, type parameters, status.
func transformMemberFacets[D any](d *memberDecl, t Transformer[D], data D) {
	transformAnnotations(d.annotations, t, data)
	d.typeParams = TransformSlice(d.typeParams, t, data)
	d.status = TransformSingle(d.status, t, data)
}

func transformAnnotations[D any](l *AnnotationList, t Transformer[D], data D) {
	l.items = TransformSlice(l.items, t, data)
}

// Identity returns a transformer that leaves every node unchanged.
// Useful as a base for tests and as the no-op pass.
func Identity[D any]() Transformer[D] {
	t := &identity[D]{}
	t.Element = func(n Node, data D) Node {
		return TransformChildren(n, t, data)
	}
	return t
}

type identity[D any] struct {
	DefaultTransformer[D]
}
