package fir_test

import (
	"testing"

	"github.com/lumen-lang/lumen/fir"
)

// TestWalk verifies depth-first traversal reaches every node.
func TestWalk(t *testing.T) {
	s := fir.NewSession("test")
	file := buildSampleFile(s)

	var nameRefs, statuses, total int
	fir.Walk(file, func(n fir.Node) bool {
		total++
		switch n.(type) {
		case *fir.NameRef:
			nameRefs++
		case *fir.DeclarationStatus:
			statuses++
		}
		return true
	})

	// console, last, message, emit, message
	if nameRefs != 5 {
		t.Errorf("nameRefs = %d, want 5", nameRefs)
	}
	// Logger, prefix, log
	if statuses != 3 {
		t.Errorf("statuses = %d, want 3", statuses)
	}
	if total < 15 {
		t.Errorf("total = %d, expected at least 15", total)
	}
}

// TestWalkPrune verifies returning false skips a node's children.
func TestWalkPrune(t *testing.T) {
	s := fir.NewSession("test")
	file := buildSampleFile(s)

	var nameRefs int
	fir.Walk(file, func(n fir.Node) bool {
		if _, ok := n.(*fir.Function); ok {
			return false // skip the function body
		}
		if _, ok := n.(*fir.NameRef); ok {
			nameRefs++
		}
		return true
	})

	// Only the delegate expression remains reachable.
	if nameRefs != 1 {
		t.Errorf("nameRefs with pruned function = %d, want 1", nameRefs)
	}
}

// TestInspectWithParent verifies parent tracking.
func TestInspectWithParent(t *testing.T) {
	s := fir.NewSession("test")
	delegate := fir.NewNameRef(s, nil, "console")
	delegated := fir.NewDelegatedTypeRef(s, nil,
		fir.NewUserTypeRef(s, nil, "Printer"), delegate)
	class := fir.NewClass(s, nil, "Logger", newStatus(s))
	class.Supertypes = []fir.TypeRef{delegated}

	var delegateParent, rootParent fir.Node
	rootParent = class // sentinel: must be overwritten with nil
	fir.Inspect(class, func(n, parent fir.Node) bool {
		if n == fir.Node(delegate) {
			delegateParent = parent
		}
		if n == fir.Node(class) {
			rootParent = parent
		}
		return true
	})

	if delegateParent != fir.Node(delegated) {
		t.Errorf("delegate parent = %T, want *DelegatedTypeRef", delegateParent)
	}
	if rootParent != nil {
		t.Errorf("root parent = %T, want nil", rootParent)
	}
}
