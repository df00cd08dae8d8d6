/*
File    : salt/eval/eval_functions.go
Package : eval

Function calls. The reference interpreter evaluates call arguments in the
caller's own variables dict, then swaps self.variables for
old_variables.copy() — a full snapshot of whatever scope the call is
executing in, global or otherwise — binds parameters into the copy, runs
the body, and restores old_variables when done. A notable, documented
quirk this preserves: because the snapshot is taken from live state at
call time (not at definition time), a function can read a global variable
declared after the function itself was defined, as long as that
declaration ran before the call.
*/
package eval

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/objects"
	"github.com/crawfordb2026/salt/scope"
)

func (e *Evaluator) evalCall(x *ast.CallExpr) (objects.Value, error) {
	def, ok := e.Funcs.Lookup(x.Name)
	if !ok {
		return nil, diagnostics.New(diagnostics.NameError, "function %q is not defined", x.Name)
	}
	if len(x.Args) != len(def.Params) {
		return nil, diagnostics.New(diagnostics.ArityError, "function %q expects %d argument(s), got %d", x.Name, len(def.Params), len(x.Args))
	}

	// Arguments are evaluated in the caller's scope, before the switch to
	// the callee's snapshot.
	argValues := make([]objects.Value, len(x.Args))
	for i, argExpr := range x.Args {
		val, err := e.Eval(argExpr)
		if err != nil {
			return nil, err
		}
		coerced, err := objects.Coerce(objects.Type(def.Params[i].Type), val)
		if err != nil {
			return nil, diagnostics.New(diagnostics.TypeError, "argument %d to %q: %s", i+1, x.Name, err.Error())
		}
		argValues[i] = coerced
	}

	callerScope := e.Scope
	callScope := callerScope.Snapshot()
	for i, param := range def.Params {
		// Bind, not Declare: callScope is a full snapshot of every global
		// visible at the call site, so a parameter name colliding with an
		// existing global must still take the argument's value rather than
		// silently keeping the snapshot's stale one.
		callScope.Bind(param.Name, &scope.Cell{Type: objects.Type(param.Type), Value: argValues[i]})
	}

	e.Scope = callScope
	sig, err := e.execBlock(def.Body)
	e.Scope = callerScope
	if err != nil {
		return nil, err
	}
	if sig.isLoopControl() {
		// skip/end reached the top of the function body with no enclosing
		// loop left to consume it — the same structural misuse Run rejects
		// at the program's top level.
		return nil, diagnostics.New(diagnostics.TypeError, "'%s' used outside of a loop", loopControlName(sig.kind))
	}

	var result objects.Value
	if sig.kind == signalReturn {
		result = sig.value
	} else {
		// The body ran to completion with no 'give'. The reference
		// interpreter would hand back whatever the last statement happened
		// to evaluate to (often nothing at all); since every Salt function
		// declares a return type, falling off the end instead yields that
		// type's zero value.
		result = objects.ZeroValue(objects.Type(def.ReturnType))
	}

	coerced, err := objects.Coerce(objects.Type(def.ReturnType), result)
	if err != nil {
		return nil, diagnostics.New(diagnostics.TypeError, "return value of %q: %s", x.Name, err.Error())
	}
	return coerced, nil
}
