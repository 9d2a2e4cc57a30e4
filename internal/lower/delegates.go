package lower

import (
	"strings"

	"github.com/lumen-lang/lumen/fir"
)

// ExpandDelegates desugars delegation into hidden backing properties.
//
// A delegated property becomes a private backing property holding the
// delegate expression, followed by the original property without its
// delegate:
//
//	val log by provider   =>   private val log$delegate = provider
//	                           val log by <backing>
//
// A delegated supertype becomes a private backing property on the class
// and the plain wrapped supertype:
//
//	class Logger : Printer by console
//	    =>   class Logger : Printer { private val printer$delegate = console }
func ExpandDelegates(file *fir.File, report *Report) {
	t := &expandDelegates{}
	t.Element = func(n fir.Node, rep *Report) fir.Node {
		return fir.TransformChildren(n, t, rep)
	}
	fir.Accept[fir.Node](file, t, report)
}

type expandDelegates struct {
	fir.DefaultTransformer[*Report]
}

func (t *expandDelegates) VisitProperty(p *fir.Property, rep *Report) fir.Node {
	fir.TransformChildren[*Report](p, t, rep)

	if p.Delegate == nil {
		return p
	}
	backing := backingProperty(p.Session(), p.Name()+"$delegate", p.Delegate)
	p.Delegate = nil
	rep.Expanded++

	// Properties only ever occupy list slots (file decls or class
	// members), so splicing the backing property in front is safe.
	return fir.Splice(backing, p)
}

func (t *expandDelegates) VisitClass(c *fir.Class, rep *Report) fir.Node {
	fir.TransformChildren[*Report](c, t, rep)

	var backings []fir.Declaration
	for i, super := range c.Supertypes {
		delegated, ok := super.(*fir.DelegatedTypeRef)
		if !ok {
			continue
		}
		if delegated.Delegate != nil {
			name := delegateName(delegated.TypeRef) + "$delegate"
			backings = append(backings,
				backingProperty(c.Session(), name, delegated.Delegate))
			rep.Expanded++
		}
		c.Supertypes[i] = delegated.TypeRef
	}
	if len(backings) > 0 {
		c.Members = append(backings, c.Members...)
	}
	return c
}

// backingProperty builds the hidden property that holds a delegate
// expression. Backing properties are private, final and type-inferred.
func backingProperty(s *fir.Session, name string, init fir.Expression) *fir.Property {
	status := fir.NewDeclarationStatus(s, init.Source(), fir.Private, fir.Final)
	p := fir.NewProperty(s, init.Source(), name, status, fir.NewImplicitTypeRef(s, init.Source()))
	p.Initializer = init
	return p
}

// delegateName derives a backing-property stem from the delegated
// supertype, e.g. "Printer" yields "printer".
func delegateName(ref fir.TypeRef) string {
	name := "super"
	if user, ok := ref.(*fir.UserTypeRef); ok {
		if i := strings.LastIndexByte(user.QualifiedName, '.'); i < len(user.QualifiedName)-1 {
			name = user.QualifiedName[i+1:]
		}
	}
	return strings.ToLower(name[:1]) + name[1:]
}
