/*
File    : salt/eval/evaluator.go
Package : eval

Package eval walks an ast.Program depth-first, left-to-right, dispatching
on each node's concrete type with a Go type switch (the language's own
design notes recommend this over a visitor/Accept pattern, since the node
set is small and fixed). Evaluation either produces a value, a control
signal (skip/end/give), or a *diagnostics.Error; there are no panics on the
happy or the error path.
*/
package eval

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/function"
	"github.com/crawfordb2026/salt/output"
	"github.com/crawfordb2026/salt/scope"
)

// Evaluator holds the mutable state of one running Salt program: its
// global variable scope, its function table, and where print output goes.
type Evaluator struct {
	Scope *scope.Scope
	Funcs *function.Table
	Out   output.Sink
}

// New creates an Evaluator with a fresh global scope and function table,
// writing print output to out.
func New(out output.Sink) *Evaluator {
	return &Evaluator{
		Scope: scope.New(),
		Funcs: function.NewTable(),
		Out:   out,
	}
}

// Run executes every top-level statement in prog in order. A skip, end, or
// give reaching the top level (outside any loop or function call) is a
// TypeError: those constructs only have meaning inside the structural
// context that consumes them.
func (e *Evaluator) Run(prog *ast.Program) error {
	sig, err := e.execBlock(prog.Statements)
	if err != nil {
		return err
	}
	switch sig.kind {
	case signalSkip:
		return diagnostics.New(diagnostics.TypeError, "'skip' used outside of a loop")
	case signalEnd:
		return diagnostics.New(diagnostics.TypeError, "'end' used outside of a loop")
	case signalReturn:
		return diagnostics.New(diagnostics.TypeError, "'give' used outside of a function")
	}
	return nil
}

// execBlock runs stmts in order, stopping early and propagating the first
// non-none signal it encounters.
func (e *Evaluator) execBlock(stmts []ast.Stmt) (signal, error) {
	for _, stmt := range stmts {
		sig, err := e.execStmt(stmt)
		if err != nil {
			return none, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return none, nil
}

// execStmt dispatches a single statement to its handler.
func (e *Evaluator) execStmt(stmt ast.Stmt) (signal, error) {
	switch s := stmt.(type) {
	case *ast.DeclarationStmt:
		return none, e.execDeclaration(s)
	case *ast.AssignmentStmt:
		return none, e.execAssignment(s)
	case *ast.ArrayDeclarationStmt:
		return none, e.execArrayDeclaration(s)
	case *ast.ArrayElementAssignmentStmt:
		return none, e.execArrayElementAssignment(s)
	case *ast.PrintStmt:
		return none, e.execPrint(s)
	case *ast.IfStmt:
		return e.execIf(s)
	case *ast.ForStmt:
		return e.execFor(s)
	case *ast.WhileStmt:
		return e.execWhile(s)
	case *ast.SkipStmt:
		return skip(), nil
	case *ast.EndStmt:
		return end(), nil
	case *ast.FunctionDefStmt:
		e.Funcs.Define(&function.Def{
			Name: s.Name, ReturnType: s.ReturnType, Params: s.Params, Body: s.Body,
		})
		return none, nil
	case *ast.ReturnStmt:
		val, err := e.Eval(s.Value)
		if err != nil {
			return none, err
		}
		return ret(val), nil
	case *ast.ExprStmt:
		_, err := e.Eval(s.Expr)
		return none, err
	default:
		return none, diagnostics.New(diagnostics.ParseError, "unknown statement type %T", stmt)
	}
}
