/*
File    : salt/function/function.go
Package : function

Package function holds Salt's user-defined-function table entry. Unlike
the teacher's Function object, this one carries no captured scope: Salt
functions are not closures, so a Def is pure syntax — name, parameter
list, declared return type, and body — and every call re-derives its
environment from a snapshot of the caller's scope (see package scope)
rather than from anything stored here.
*/
package function

import (
	"fmt"

	"github.com/crawfordb2026/salt/ast"
)

// Def is a user-defined function's signature and body.
type Def struct {
	Name       string
	ReturnType string
	Params     []ast.Param
	Body       []ast.Stmt
}

// String returns a short signature, e.g. "func(add(int a, int b) int)".
func (f *Def) String() string {
	args := ""
	for i, p := range f.Params {
		if i > 0 {
			args += ", "
		}
		args += fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	return fmt.Sprintf("func(%s(%s) %s)", f.Name, args, f.ReturnType)
}

// Table is the global function table: a definition lands here under its
// name wherever its statement runs, a later definition of the same name
// replaces the earlier one, and Salt has no anonymous functions, so a
// single flat map from name to Def is sufficient.
type Table struct {
	defs map[string]*Def
}

// NewTable creates an empty function table.
func NewTable() *Table {
	return &Table{defs: make(map[string]*Def)}
}

// Define adds or replaces the function named def.Name.
func (t *Table) Define(def *Def) {
	t.defs[def.Name] = def
}

// Lookup returns the function named name, if defined.
func (t *Table) Lookup(name string) (*Def, bool) {
	def, ok := t.defs[name]
	return def, ok
}
