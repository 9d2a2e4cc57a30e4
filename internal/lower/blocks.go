package lower

import (
	"github.com/lumen-lang/lumen/fir"
)

// SimplifyBlocks flattens nested blocks into their parent and prunes
// statements that cannot have an effect.
//
// A bare literal or name ref in statement position computes a value and
// discards it, so both are dropped. Blocks carry no value of their own,
// which makes inlining a nested block's statements safe.
func SimplifyBlocks(file *fir.File, report *Report) {
	t := &simplifyBlocks{}
	t.Element = func(n fir.Node, rep *Report) fir.Node {
		return fir.TransformChildren(n, t, rep)
	}
	fir.Accept[fir.Node](file, t, report)
}

type simplifyBlocks struct {
	fir.DefaultTransformer[*Report]
}

// VisitBlock rewrites the statement list by hand rather than splicing:
// a block can also fill single slots (a function body), where changing
// cardinality is not an option.
func (t *simplifyBlocks) VisitBlock(b *fir.Block, rep *Report) fir.Node {
	fir.TransformChildren[*Report](b, t, rep)

	out := make([]fir.Statement, 0, len(b.Statements))
	changed := false
	for _, stmt := range b.Statements {
		switch s := stmt.(type) {
		case *fir.Block:
			out = append(out, s.Statements...)
			changed = true
		case *fir.Literal, *fir.NameRef:
			rep.Pruned++
			changed = true
		default:
			out = append(out, stmt)
		}
	}
	if changed {
		b.Statements = out
	}
	return b
}
