package fir

import (
	"fmt"
	"io"
	"strings"
)

// Renderer writes a deterministic indented dump of a tree, one line per
// node, children in declaration order. The output is the comparison
// format external tooling uses for tree equivalence checks, so the shape
// of every line is stable.
type Renderer struct {
	w   io.Writer
	err error
}

// NewRenderer creates a Renderer that writes to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the tree rooted at node.
func (r *Renderer) Render(node Node) error {
	if node == nil {
		return nil
	}
	v := &renderVisitor{r: r}
	v.Element = func(n Node, depth int) struct{} {
		r.line(depth, label(n))
		AcceptChildren[struct{}](n, v, depth+1)
		return struct{}{}
	}
	Accept[struct{}](node, v, 0)
	return r.err
}

type renderVisitor struct {
	DefaultVisitor[struct{}, int]
	r *Renderer
}

func (r *Renderer) line(depth int, text string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "%s%s\n", strings.Repeat("  ", depth), text)
}

// label returns the one-line rendering of a node, without indentation.
func label(n Node) string {
	switch n := n.(type) {
	case *File:
		return "file " + n.PackageName
	case *Class:
		return "class " + n.Name()
	case *Function:
		return "function " + n.Name()
	case *Property:
		if n.Mutable {
			return "property var " + n.Name()
		}
		return "property val " + n.Name()
	case *TypeParameter:
		return "type-parameter " + n.Name()
	case *ValueParameter:
		return "value-parameter " + n.Name()
	case *Annotation:
		return "annotation " + n.QualifiedName
	case *DeclarationStatus:
		var sb strings.Builder
		sb.WriteString("status ")
		sb.WriteString(n.Visibility.String())
		sb.WriteByte(' ')
		sb.WriteString(n.Modality.String())
		if n.Expect {
			sb.WriteString(" expect")
		}
		if n.Actual {
			sb.WriteString(" actual")
		}
		return sb.String()
	case *ImplicitTypeRef:
		return "implicit-type-ref"
	case *UserTypeRef:
		return "type-ref " + n.QualifiedName
	case *DelegatedTypeRef:
		return "delegated-type-ref"
	case *ErrorTypeRef:
		return fmt.Sprintf("error-type-ref %q", n.Message)
	case *Literal:
		return fmt.Sprintf("literal %s %s", n.Kind, n.Value)
	case *NameRef:
		return "name-ref " + n.Name
	case *Call:
		return "call"
	case *Block:
		return "block"
	case *VariableAssignment:
		return "assignment"
	default:
		return fmt.Sprintf("<%T>", n)
	}
}

// String returns the rendered tree as a string.
func String(node Node) string {
	var sb strings.Builder
	r := NewRenderer(&sb)
	_ = r.Render(node)
	return sb.String()
}
