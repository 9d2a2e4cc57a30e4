package fir

import (
	"sort"

	"github.com/google/uuid"
)

// Session is the shared compilation context all nodes of a tree reference.
// Sessions outlive every node created under them and are never owned by a
// node. A session is immutable after construction, which makes it safe
// for concurrent reads from independent traversals; it must never be
// mutated during a traversal.
type Session struct {
	id       uuid.UUID
	module   string
	builtins map[string]bool
}

// builtinTypes are the type names every session pre-defines.
var builtinTypes = []string{"Any", "Bool", "Float", "Int", "String", "Unit"}

// NewSession creates a session for the given module name.
func NewSession(module string) *Session {
	builtins := make(map[string]bool, len(builtinTypes))
	for _, name := range builtinTypes {
		builtins[name] = true
	}
	return &Session{
		id:       uuid.New(),
		module:   module,
		builtins: builtins,
	}
}

// ID returns the unique session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Module returns the module name the session was created for.
func (s *Session) Module() string { return s.module }

// IsBuiltinType reports whether name is a pre-defined type.
func (s *Session) IsBuiltinType(name string) bool { return s.builtins[name] }

// BuiltinTypes returns the sorted names of all pre-defined types.
func (s *Session) BuiltinTypes() []string {
	names := make([]string, 0, len(s.builtins))
	for name := range s.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
