/*
File    : salt/eval/eval_access.go
Package : eval

Array declaration, element assignment, and element access. Arrays are
fixed-size and homogeneous: ElemType and Size are frozen at declaration and
never revisited.
*/
package eval

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/objects"
	"github.com/crawfordb2026/salt/scope"
)

func (e *Evaluator) execArrayDeclaration(s *ast.ArrayDeclarationStmt) error {
	if e.Scope.Has(s.Name) {
		return diagnostics.New(diagnostics.NameError, "variable %q already defined", s.Name)
	}

	sizeVal, err := e.Eval(s.Size)
	if err != nil {
		return err
	}
	sizeInt, ok := sizeVal.(*objects.Integer)
	if !ok || sizeInt.Value <= 0 {
		return diagnostics.New(diagnostics.TypeError, "array size must be a positive integer, got %s", sizeVal.String())
	}

	elemType := objects.Type(s.ElementType)
	elements := make([]objects.Value, sizeInt.Value)
	for i := range elements {
		elements[i] = objects.ZeroValue(elemType)
	}

	e.Scope.Declare(s.Name, &scope.Cell{
		Type:     objects.ArrayType,
		ElemType: elemType,
		Size:     int(sizeInt.Value),
		Value:    &objects.Array{ElemType: elemType, Elements: elements},
	})
	return nil
}

func (e *Evaluator) execArrayElementAssignment(s *ast.ArrayElementAssignmentStmt) error {
	cell, arr, err := e.lookupArray(s.Name)
	if err != nil {
		return err
	}

	idx, err := e.evalIndex(s.Index, cell.Size, s.Name)
	if err != nil {
		return err
	}

	raw, err := e.Eval(s.Value)
	if err != nil {
		return err
	}
	coerced, err := objects.Coerce(cell.ElemType, raw)
	if err != nil {
		return diagnostics.New(diagnostics.TypeError, "%s", err.Error())
	}
	arr.Elements[idx] = coerced
	return nil
}

func (e *Evaluator) evalArrayAccess(x *ast.ArrayAccessExpr) (objects.Value, error) {
	cell, arr, err := e.lookupArray(x.ArrayName)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalIndex(x.Index, cell.Size, x.ArrayName)
	if err != nil {
		return nil, err
	}
	return arr.Elements[idx], nil
}

// lookupArray resolves name to a declared array, returning its cell and
// underlying Array value, or a NameError/TypeError if it isn't one.
func (e *Evaluator) lookupArray(name string) (*scope.Cell, *objects.Array, error) {
	cell, ok := e.Scope.Lookup(name)
	if !ok {
		return nil, nil, diagnostics.New(diagnostics.NameError, "array %q is not defined", name)
	}
	arr, ok := cell.Value.(*objects.Array)
	if !ok {
		return nil, nil, diagnostics.New(diagnostics.TypeError, "%q is not an array", name)
	}
	return cell, arr, nil
}

// evalIndex evaluates an index expression and bounds-checks it against
// size, returning an IndexError (or TypeError for a non-integer index)
// rather than a Go panic.
func (e *Evaluator) evalIndex(expr ast.Expr, size int, arrName string) (int64, error) {
	val, err := e.Eval(expr)
	if err != nil {
		return 0, err
	}
	idx, ok := val.(*objects.Integer)
	if !ok {
		return 0, diagnostics.New(diagnostics.TypeError, "array index must be an integer, got %s", val.String())
	}
	if idx.Value < 0 || idx.Value >= int64(size) {
		return 0, diagnostics.New(diagnostics.IndexError, "array index %d out of bounds for array %q of size %d", idx.Value, arrName, size)
	}
	return idx.Value, nil
}
