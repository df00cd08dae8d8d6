/*
File    : salt/eval/eval_statements.go
Package : eval
*/
package eval

import (
	"strings"

	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/objects"
	"github.com/crawfordb2026/salt/scope"
)

func (e *Evaluator) execDeclaration(s *ast.DeclarationStmt) error {
	if e.Scope.Has(s.Name) {
		return diagnostics.New(diagnostics.NameError, "variable %q already defined", s.Name)
	}
	raw, err := e.Eval(s.Value)
	if err != nil {
		return err
	}
	coerced, err := objects.Coerce(objects.Type(s.VarType), raw)
	if err != nil {
		return diagnostics.New(diagnostics.TypeError, "%s", err.Error())
	}
	e.Scope.Declare(s.Name, &scope.Cell{Type: objects.Type(s.VarType), Value: coerced})
	return nil
}

func (e *Evaluator) execAssignment(s *ast.AssignmentStmt) error {
	cell, ok := e.Scope.Lookup(s.Name)
	if !ok {
		return diagnostics.New(diagnostics.NameError, "variable %q is not defined", s.Name)
	}
	raw, err := e.Eval(s.Value)
	if err != nil {
		return err
	}
	coerced, err := objects.Coerce(cell.Type, raw)
	if err != nil {
		return diagnostics.New(diagnostics.TypeError, "%s", err.Error())
	}
	cell.Value = coerced
	return nil
}

func (e *Evaluator) execPrint(s *ast.PrintStmt) error {
	var b strings.Builder
	for _, arg := range s.Args {
		val, err := e.Eval(arg)
		if err != nil {
			return err
		}
		b.WriteString(val.String())
	}
	e.Out.WriteLine(b.String())
	return nil
}
