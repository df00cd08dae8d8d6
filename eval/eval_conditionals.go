/*
File    : salt/eval/eval_conditionals.go
Package : eval
*/
package eval

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/objects"
)

func (e *Evaluator) execIf(s *ast.IfStmt) (signal, error) {
	cond, err := e.Eval(s.Condition)
	if err != nil {
		return none, err
	}
	if objects.Truthy(cond) {
		return e.execBlock(s.Then)
	}
	if s.Else != nil {
		return e.execBlock(s.Else)
	}
	return none, nil
}
