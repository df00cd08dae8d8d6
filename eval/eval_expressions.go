/*
File    : salt/eval/eval_expressions.go
Package : eval
*/
package eval

import (
	"math"
	"strings"

	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/diagnostics"
	"github.com/crawfordb2026/salt/objects"
)

// Eval evaluates a single expression to a Value.
func (e *Evaluator) Eval(expr ast.Expr) (objects.Value, error) {
	switch x := expr.(type) {
	case *ast.NumberExpr:
		if x.IsInt {
			return &objects.Integer{Value: int64(x.Value)}, nil
		}
		return &objects.Double{Value: x.Value}, nil

	case *ast.StringExpr:
		return &objects.String{Value: x.Value}, nil

	case *ast.BooleanExpr:
		return &objects.Boolean{Value: x.Value}, nil

	case *ast.VariableExpr:
		cell, ok := e.Scope.Lookup(x.Name)
		if !ok {
			return nil, diagnostics.New(diagnostics.NameError, "variable %q is not defined", x.Name)
		}
		return cell.Value, nil

	case *ast.UnaryOpExpr:
		return e.evalUnary(x)

	case *ast.BinaryOpExpr:
		return e.evalBinary(x)

	case *ast.ComparisonExpr:
		return e.evalComparison(x)

	case *ast.LogicalExpr:
		return e.evalLogical(x)

	case *ast.ArrayAccessExpr:
		return e.evalArrayAccess(x)

	case *ast.CallExpr:
		return e.evalCall(x)

	default:
		return nil, diagnostics.New(diagnostics.ParseError, "unknown expression type %T", expr)
	}
}

func (e *Evaluator) evalUnary(x *ast.UnaryOpExpr) (objects.Value, error) {
	operand, err := e.Eval(x.Operand)
	if err != nil {
		return nil, err
	}
	f, ok := objects.AsFloat(operand)
	if !ok {
		return nil, diagnostics.New(diagnostics.TypeError, "unary '-' requires a numeric operand, got %s", operand.Kind())
	}
	if _, isInt := operand.(*objects.Integer); isInt {
		return &objects.Integer{Value: -int64(f)}, nil
	}
	return &objects.Double{Value: -f}, nil
}

// evalBinary applies one of + - * / % per the language's numeric and
// string-concatenation rules.
//
// '+' is overloaded: if either operand is a string, both sides are
// rendered to text and concatenated, taking priority over numeric
// addition — this is the reference's own behavior (isinstance check before
// the numeric add), preserved here as a documented, deliberate choice
// rather than an oversight.
//
// '/' resolves the tension between the language's stated "never
// truncating" contract and its own worked example (100 / 4 prints as
// "25", not "25.0"): when both operands are integers and the division is
// exact, the result is an Integer; otherwise it is a Double. No precision
// is lost either way, so "never truncating" still holds.
func (e *Evaluator) evalBinary(x *ast.BinaryOpExpr) (objects.Value, error) {
	left, err := e.Eval(x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(x.Right)
	if err != nil {
		return nil, err
	}

	if x.Operator == "+" {
		if _, ok := left.(*objects.String); ok {
			return &objects.String{Value: left.String() + right.String()}, nil
		}
		if _, ok := right.(*objects.String); ok {
			return &objects.String{Value: left.String() + right.String()}, nil
		}
	}

	li, lInt := left.(*objects.Integer)
	ri, rInt := right.(*objects.Integer)
	bothInt := lInt && rInt

	// When both operands are Integer, arithmetic runs on their int64 fields
	// directly rather than through a float64 intermediate: float64 only
	// represents integers exactly up to 2^53, so routing e.g.
	// 100000000 * 100000000 through AsFloat would silently lose precision
	// on a product that fits in an int64 just fine.
	if bothInt {
		switch x.Operator {
		case "+":
			return &objects.Integer{Value: li.Value + ri.Value}, nil
		case "-":
			return &objects.Integer{Value: li.Value - ri.Value}, nil
		case "*":
			return &objects.Integer{Value: li.Value * ri.Value}, nil
		case "/":
			if ri.Value == 0 {
				return nil, diagnostics.New(diagnostics.ArithmeticError, "division by zero")
			}
			if li.Value%ri.Value == 0 {
				return &objects.Integer{Value: li.Value / ri.Value}, nil
			}
			return &objects.Double{Value: float64(li.Value) / float64(ri.Value)}, nil
		case "%":
			if ri.Value == 0 {
				return nil, diagnostics.New(diagnostics.ArithmeticError, "modulo by zero")
			}
			return &objects.Integer{Value: li.Value % ri.Value}, nil
		default:
			return nil, diagnostics.New(diagnostics.ParseError, "unknown operator %q", x.Operator)
		}
	}

	lf, lok := objects.AsFloat(left)
	rf, rok := objects.AsFloat(right)
	if !lok || !rok {
		return nil, diagnostics.New(diagnostics.TypeError, "operator %q requires numeric operands, got %s and %s", x.Operator, left.Kind(), right.Kind())
	}

	switch x.Operator {
	case "+":
		return &objects.Double{Value: lf + rf}, nil
	case "-":
		return &objects.Double{Value: lf - rf}, nil
	case "*":
		return &objects.Double{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, diagnostics.New(diagnostics.ArithmeticError, "division by zero")
		}
		return &objects.Double{Value: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, diagnostics.New(diagnostics.ArithmeticError, "modulo by zero")
		}
		return &objects.Double{Value: math.Mod(lf, rf)}, nil
	default:
		return nil, diagnostics.New(diagnostics.ParseError, "unknown operator %q", x.Operator)
	}
}

func (e *Evaluator) evalComparison(x *ast.ComparisonExpr) (objects.Value, error) {
	left, err := e.Eval(x.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Operator {
	case "eq":
		return &objects.Boolean{Value: equalValues(left, right)}, nil
	case "neq":
		return &objects.Boolean{Value: !equalValues(left, right)}, nil
	}

	// lt/gt/lteq/gteq accept any two values comparable by the host: two
	// numbers compare numerically, but same-type strings and booleans are
	// also ordered directly (lexicographic, and FALSE < TRUE), matching the
	// reference interpreter's plain leftVal < rightVal, which never raises
	// for same-typed operands. Only a cross-type pairing (or a pairing with
	// no ordering at all) is a TypeError.
	if ls, lok := left.(*objects.String); lok {
		if rs, rok := right.(*objects.String); rok {
			return orderingResult(x.Operator, strings.Compare(ls.Value, rs.Value))
		}
	}
	if lb, lok := left.(*objects.Boolean); lok {
		if rb, rok := right.(*objects.Boolean); rok {
			return orderingResult(x.Operator, boolCompare(lb.Value, rb.Value))
		}
	}

	lf, lok := objects.AsFloat(left)
	rf, rok := objects.AsFloat(right)
	if !lok || !rok {
		return nil, diagnostics.New(diagnostics.TypeError, "cannot compare %s and %s with %q", left.Kind(), right.Kind(), x.Operator)
	}
	switch x.Operator {
	case "lt":
		return &objects.Boolean{Value: lf < rf}, nil
	case "gt":
		return &objects.Boolean{Value: lf > rf}, nil
	case "lteq":
		return &objects.Boolean{Value: lf <= rf}, nil
	case "gteq":
		return &objects.Boolean{Value: lf >= rf}, nil
	default:
		return nil, diagnostics.New(diagnostics.ParseError, "unknown comparison operator %q", x.Operator)
	}
}

// boolCompare orders FALSE before TRUE, the same way Python orders bool
// operands (False < True) when compared with <, >, <=, >=.
func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a && b:
		return -1
	default:
		return 1
	}
}

// orderingResult turns a three-way comparison result (negative, zero,
// positive) into the Boolean a lt/gt/lteq/gteq operator asks for.
func orderingResult(operator string, cmp int) (objects.Value, error) {
	switch operator {
	case "lt":
		return &objects.Boolean{Value: cmp < 0}, nil
	case "gt":
		return &objects.Boolean{Value: cmp > 0}, nil
	case "lteq":
		return &objects.Boolean{Value: cmp <= 0}, nil
	case "gteq":
		return &objects.Boolean{Value: cmp >= 0}, nil
	default:
		return nil, diagnostics.New(diagnostics.ParseError, "unknown comparison operator %q", operator)
	}
}

// equalValues compares two values for eq/neq. Numbers compare by value
// regardless of int vs double; strings and booleans compare directly;
// anything else (including cross-kind comparisons against a string or
// boolean) is simply unequal rather than an error, matching Python's own
// permissive == semantics in the reference interpreter.
func equalValues(a, b objects.Value) bool {
	if af, aok := objects.AsFloat(a); aok {
		if bf, bok := objects.AsFloat(b); bok {
			return af == bf
		}
		return false
	}
	if as, aok := a.(*objects.String); aok {
		if bs, bok := b.(*objects.String); bok {
			return as.Value == bs.Value
		}
		return false
	}
	if ab, aok := a.(*objects.Boolean); aok {
		if bb, bok := b.(*objects.Boolean); bok {
			return ab.Value == bb.Value
		}
		return false
	}
	return false
}

// evalLogical applies and/or/not. Per the language's documented behavior,
// 'and'/'or' evaluate both operands unconditionally — they are not
// short-circuit — a deliberate preservation of the reference's own
// non-short-circuit evaluation order, not an oversight.
func (e *Evaluator) evalLogical(x *ast.LogicalExpr) (objects.Value, error) {
	left, err := e.Eval(x.Left)
	if err != nil {
		return nil, err
	}

	if x.Operator == "not" {
		return &objects.Boolean{Value: !objects.Truthy(left)}, nil
	}

	right, err := e.Eval(x.Right)
	if err != nil {
		return nil, err
	}

	switch x.Operator {
	case "and":
		return &objects.Boolean{Value: objects.Truthy(left) && objects.Truthy(right)}, nil
	case "or":
		return &objects.Boolean{Value: objects.Truthy(left) || objects.Truthy(right)}, nil
	default:
		return nil, diagnostics.New(diagnostics.ParseError, "unknown logical operator %q", x.Operator)
	}
}
