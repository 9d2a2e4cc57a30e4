// Package lower implements tree-rewriting passes that run after a file
// is built and before resolution.
//
// Each pass is a transformer over the typed tree:
//   - InferTypes replaces implicit property types that have a literal
//     initializer with the literal's builtin type
//   - ExpandDelegates desugars delegation into hidden backing properties
//   - SimplifyBlocks flattens nested blocks and prunes statements with
//     no effect
//
// Passes mutate the tree in place and report what they did through a
// shared Report, threaded as the transformer data slot.
package lower

import (
	"github.com/lumen-lang/lumen/fir"
)

// Report accumulates counters across lowering passes.
type Report struct {
	Inferred int // Implicit types replaced by InferTypes
	Expanded int // Delegates desugared by ExpandDelegates
	Pruned   int // Statements removed by SimplifyBlocks
}

// InferTypes rewrites properties whose type is implicit and whose
// initializer is a literal, giving them the literal's builtin type.
//
//	val prefix = "log: "   =>   val prefix: String = "log: "
func InferTypes(file *fir.File, report *Report) {
	t := &inferTypes{}
	t.Element = func(n fir.Node, rep *Report) fir.Node {
		return fir.TransformChildren(n, t, rep)
	}
	fir.Accept[fir.Node](file, t, report)
}

type inferTypes struct {
	fir.DefaultTransformer[*Report]
}

func (t *inferTypes) VisitProperty(p *fir.Property, rep *Report) fir.Node {
	fir.TransformChildren[*Report](p, t, rep)

	if _, implicit := p.TypeRef.(*fir.ImplicitTypeRef); !implicit {
		return p
	}
	lit, ok := p.Initializer.(*fir.Literal)
	if !ok {
		return p
	}
	p.TypeRef = fir.NewUserTypeRef(p.Session(), lit.Source(), lit.Kind.TypeName())
	rep.Inferred++
	return p
}
