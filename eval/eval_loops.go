/*
File    : salt/eval/eval_loops.go
Package : eval

'loop' has two shapes: a plain repeat count with no induction variable, and
a range form that reuses an already-declared int variable as the loop
counter, updating it in place each iteration (it is visible after the loop
ends and holds the last value the loop assigned it, or its earlier value if
the range was empty — there is no loop-private scope). 'while' just re-evaluates its condition before each iteration.

Inside either loop's body, 'skip' drops the rest of the current iteration's
statements (break out of the inner statement loop only, continue the
outer one); 'end' stops the loop outright; 'give' propagates straight
through untouched, to be caught by the enclosing function call.
*/
package eval

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/objects"
)

func (e *Evaluator) execFor(s *ast.ForStmt) (signal, error) {
	if s.Var == "" {
		return e.execCountLoop(s)
	}
	return e.execRangeLoop(s)
}

func (e *Evaluator) execCountLoop(s *ast.ForStmt) (signal, error) {
	for i := int64(0); i < s.Count; i++ {
		sig, err := e.execBlock(s.Body)
		if err != nil {
			return none, err
		}
		switch sig.kind {
		case signalEnd:
			return none, nil
		case signalReturn:
			return sig, nil
		}
		// signalSkip and signalNone both just move on to the next iteration.
	}
	return none, nil
}

func (e *Evaluator) execRangeLoop(s *ast.ForStmt) (signal, error) {
	cell, ok := e.Scope.Lookup(s.Var)
	if !ok {
		return none, diagnostics.New(diagnostics.NameError, "loop variable %q is not defined", s.Var)
	}
	if cell.Type != objects.IntegerType {
		return none, diagnostics.New(diagnostics.TypeError, "loop variable %q is not an integer", s.Var)
	}
	if s.Step <= 0 {
		return none, diagnostics.New(diagnostics.TypeError, "loop step must be a positive integer, got %d", s.Step)
	}

	for i := s.From; i <= s.To; i += s.Step {
		cell.Value = &objects.Integer{Value: i}
		sig, err := e.execBlock(s.Body)
		if err != nil {
			return none, err
		}
		switch sig.kind {
		case signalEnd:
			return none, nil
		case signalReturn:
			return sig, nil
		}
	}
	return none, nil
}

func (e *Evaluator) execWhile(s *ast.WhileStmt) (signal, error) {
	for {
		cond, err := e.Eval(s.Condition)
		if err != nil {
			return none, err
		}
		if !objects.Truthy(cond) {
			return none, nil
		}

		sig, err := e.execBlock(s.Body)
		if err != nil {
			return none, err
		}
		switch sig.kind {
		case signalEnd:
			return none, nil
		case signalReturn:
			return sig, nil
		}
	}
}
