package fir

// Walk traverses a tree in depth-first order, children in declaration
// order. For each node it calls fn(node); if fn returns false, the
// children of that node are not visited.
//
// Example: count all name references
//
//	count := 0
//	fir.Walk(file, func(n fir.Node) bool {
//		if _, ok := n.(*fir.NameRef); ok {
//			count++
//		}
//		return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	w := &walker{fn: fn}
	w.Element = func(n Node, _ struct{}) struct{} {
		if w.fn(n) {
			AcceptChildren[struct{}](n, w, struct{}{})
		}
		return struct{}{}
	}
	Accept[struct{}](node, w, struct{}{})
}

type walker struct {
	DefaultVisitor[struct{}, struct{}]
	fn func(Node) bool
}

// Inspect traverses a tree with parent tracking. For each node it calls
// fn(node, parent); parent is nil for the root. If fn returns false, the
// children of that node are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	if node == nil {
		return
	}
	i := &inspector{fn: fn}
	i.Element = func(n Node, _ struct{}) struct{} {
		var parent Node
		if len(i.parents) > 0 {
			parent = i.parents[len(i.parents)-1]
		}
		if i.fn(n, parent) {
			i.parents = append(i.parents, n)
			AcceptChildren[struct{}](n, i, struct{}{})
			i.parents = i.parents[:len(i.parents)-1]
		}
		return struct{}{}
	}
	Accept[struct{}](node, i, struct{}{})
}

type inspector struct {
	DefaultVisitor[struct{}, struct{}]
	fn      func(node, parent Node) bool
	parents []Node
}
