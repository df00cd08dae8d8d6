/*
File    : salt/scope/scope.go
Package : scope

Package scope holds Salt's variable environment: a single flat table from
name to typed Cell, with no parent pointer. This is a deliberate departure
from the nested-scope-with-parent-chain model most tree-walking
interpreters use (including this project's own teacher, whose Scope.Copy
keeps a Parent link for closures): Salt has no closures and no nested block
scoping — a function call runs against a flat snapshot of every variable
visible at the call site, bindings its own parameters into that snapshot,
and the caller's environment is restored verbatim when the call returns.
The snapshot behavior is modeled directly on the reference interpreter's
`self.variables = old_variables.copy()`.
*/
package scope

import "github.com/crawfordb2026/salt/objects"

// Cell is a single typed variable slot. Type never changes after
// declaration; Value is replaced wholesale on every assignment (coerced to
// Type by the caller before being stored here). ElemType and Size are only
// meaningful when Type is objects.ArrayType.
type Cell struct {
	Type     objects.Type
	ElemType objects.Type
	Size     int
	Value    objects.Value
}

// Scope is a flat mapping from variable name to Cell.
type Scope struct {
	cells map[string]*Cell
}

// New creates an empty scope.
func New() *Scope {
	return &Scope{cells: make(map[string]*Cell)}
}

// Declare introduces a new variable. It returns false, and leaves the
// existing binding alone, if name is already bound. The evaluator's
// declaration handlers check Has first and raise a NameError for that case,
// since Salt has no shadowing.
func (s *Scope) Declare(name string, cell *Cell) bool {
	if _, exists := s.cells[name]; exists {
		return false
	}
	s.cells[name] = cell
	return true
}

// Bind unconditionally binds name to cell, overwriting any existing
// binding. Used for parameter binding against a call's scope snapshot:
// a parameter name that collides with a global already present in the
// snapshot must still take the argument's value, not keep the snapshot's
// stale one, matching the reference interpreter's unconditional
// self.variables[param_name] = {...} assignment.
func (s *Scope) Bind(name string, cell *Cell) {
	s.cells[name] = cell
}

// Lookup returns the cell bound to name, if any.
func (s *Scope) Lookup(name string) (*Cell, bool) {
	cell, ok := s.cells[name]
	return cell, ok
}

// Has reports whether name is bound in this scope.
func (s *Scope) Has(name string) bool {
	_, ok := s.cells[name]
	return ok
}

// Snapshot returns a scope holding a fresh Cell for every binding currently
// in s — used to build the environment a function call executes against.
// Cells are copied by value (a new *Cell, same fields), and an array cell
// also gets its own copy of the element slice, so mutations made inside the
// call never reach the cells or arrays the caller still holds.
func (s *Scope) Snapshot() *Scope {
	out := New()
	for name, cell := range s.cells {
		cp := *cell
		if arr, ok := cell.Value.(*objects.Array); ok {
			elems := make([]objects.Value, len(arr.Elements))
			copy(elems, arr.Elements)
			cp.Value = &objects.Array{ElemType: arr.ElemType, Elements: elems}
		}
		out.cells[name] = &cp
	}
	return out
}

// Names returns every variable name currently bound, in no particular
// order. Used by the REPL's ".vars" introspection command.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.cells))
	for name := range s.cells {
		names = append(names, name)
	}
	return names
}
