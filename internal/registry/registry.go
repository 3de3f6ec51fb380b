// Package registry implements SupDef's Macro Registry (spec.md §4.4,
// component C4): a name -> pragma lookup built by a pre-order traversal
// of the import tree, where the first declaration of a name wins.
package registry

import (
	"github.com/keurnel/supdef/internal/pragma"
	"github.com/keurnel/supdef/internal/unit"
)

// Registry maps macro names to the Define/Runnable pragma that defines
// them. Import pragmas are never registered.
type Registry struct {
	macros map[string]*pragma.Pragma
	// order preserves the pre-order traversal sequence, useful for
	// diagnostics and deterministic iteration.
	order []string
}

// Build walks root's import tree in pre-order (root first, then each
// child's subtree in import-declaration order) and registers every
// Define/Runnable pragma under its name. A name already registered by
// an earlier unit in traversal order is not overwritten.
func Build(root *unit.InputUnit) *Registry {
	r := &Registry{macros: make(map[string]*pragma.Pragma)}
	r.visit(root)
	return r
}

func (r *Registry) visit(u *unit.InputUnit) {
	for i := range u.Pragmas {
		p := &u.Pragmas[i]
		if p.Kind == pragma.Import {
			continue
		}
		if _, exists := r.macros[p.Name]; exists {
			continue
		}
		r.macros[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	for _, child := range u.Children {
		r.visit(child)
	}
}

// Lookup returns the pragma registered under name, if any.
func (r *Registry) Lookup(name string) (*pragma.Pragma, bool) {
	p, ok := r.macros[name]
	return p, ok
}

// Has reports whether name is a known macro.
func (r *Registry) Has(name string) bool {
	_, ok := r.macros[name]
	return ok
}

// Names returns registered macro names in first-declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
