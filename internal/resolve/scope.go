package resolve

import (
	"github.com/lumen-lang/lumen/fir"
	"github.com/lumen-lang/lumen/source"
)

// SymbolKind defines the category of a symbol.
type SymbolKind int

const (
	SymbolClass     SymbolKind = iota // Class declaration
	SymbolFunction                    // Function declaration
	SymbolProperty                    // Property declaration
	SymbolParam                       // Value parameter
	SymbolTypeParam                   // Type parameter
)

// String returns a human-readable name for the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case SymbolClass:
		return "class"
	case SymbolFunction:
		return "function"
	case SymbolProperty:
		return "property"
	case SymbolParam:
		return "parameter"
	case SymbolTypeParam:
		return "type parameter"
	default:
		return "unknown"
	}
}

// Symbol holds information about a declared name.
type Symbol struct {
	Name string       // Declared name
	Kind SymbolKind   // Category (class, function, property, ...)
	Decl fir.Node     // Declaring node
	Span *source.Span // Declaration position
	Used bool         // Whether the symbol is referenced (for warnings)
}

// IsType returns true if the symbol names a type.
func (s *Symbol) IsType() bool {
	return s.Kind == SymbolClass || s.Kind == SymbolTypeParam
}

// IsValue returns true if the symbol can appear in expression position.
func (s *Symbol) IsValue() bool {
	return s.Kind == SymbolProperty || s.Kind == SymbolParam ||
		s.Kind == SymbolFunction
}

// Scope implements a hierarchical symbol table.
// Each scope can have a parent, enabling nested lookups.
// Definition order is preserved so diagnostics come out deterministic.
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
	order   []string // names in definition order
	name    string   // Scope name (e.g., member name or "file")
}

// NewScope creates a new scope with the given parent.
// Pass nil for the file scope.
func NewScope(parent *Scope, name string) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]*Symbol),
		name:    name,
	}
}

// Name returns the scope name.
func (sc *Scope) Name() string {
	return sc.name
}

// Parent returns the parent scope, or nil for the file scope.
func (sc *Scope) Parent() *Scope {
	return sc.parent
}

// Define adds a new symbol to the current scope.
// Returns the created symbol, or nil if the name is already taken here.
func (sc *Scope) Define(name string, kind SymbolKind, decl fir.Node) *Symbol {
	if _, exists := sc.symbols[name]; exists {
		return nil
	}
	sym := &Symbol{
		Name: name,
		Kind: kind,
		Decl: decl,
		Span: decl.Source(),
	}
	sc.symbols[name] = sym
	sc.order = append(sc.order, name)
	return sym
}

// Lookup searches for a symbol in this scope and all parent scopes.
func (sc *Scope) Lookup(name string) (*Symbol, bool) {
	for scope := sc; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// LookupLocal searches for a symbol only in the current scope.
func (sc *Scope) LookupLocal(name string) (*Symbol, bool) {
	sym, ok := sc.symbols[name]
	return sym, ok
}

// ForEach iterates over all symbols in the current scope, in the order
// they were defined.
func (sc *Scope) ForEach(fn func(name string, sym *Symbol)) {
	for _, name := range sc.order {
		fn(name, sc.symbols[name])
	}
}

// Count returns the number of symbols in the current scope.
func (sc *Scope) Count() int {
	return len(sc.symbols)
}
