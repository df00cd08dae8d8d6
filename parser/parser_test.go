/*
File    : salt/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crawfordb2026/salt/ast"
)

func parseOne(t *testing.T, src string) ast.Stmt {
	t.Helper()
	prog, err := ParseSource(src)
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 1)
	return prog.Statements[0]
}

func TestParseDeclaration(t *testing.T) {
	stmt := parseOne(t, "make int x 5")
	decl, ok := stmt.(*ast.DeclarationStmt)
	assert.True(t, ok)
	assert.Equal(t, "int", decl.VarType)
	assert.Equal(t, "x", decl.Name)
	num, ok := decl.Value.(*ast.NumberExpr)
	assert.True(t, ok)
	assert.True(t, num.IsInt)
	assert.Equal(t, float64(5), num.Value)
}

func TestParseAssignment(t *testing.T) {
	stmt := parseOne(t, "make x 10")
	assign, ok := stmt.(*ast.AssignmentStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParseArrayDeclarationAndElementAssignment(t *testing.T) {
	decl := parseOne(t, "make int array s[4]")
	arr, ok := decl.(*ast.ArrayDeclarationStmt)
	assert.True(t, ok)
	assert.Equal(t, "int", arr.ElementType)
	assert.Equal(t, "s", arr.Name)

	assign := parseOne(t, "make s[0] 10")
	elemAssign, ok := assign.(*ast.ArrayElementAssignmentStmt)
	assert.True(t, ok)
	assert.Equal(t, "s", elemAssign.Name)
}

func TestParsePrintConcatenation(t *testing.T) {
	stmt := parseOne(t, `print "sum=" x + y`)
	print, ok := stmt.(*ast.PrintStmt)
	assert.True(t, ok)
	assert.Len(t, print.Args, 2)
	_, ok = print.Args[0].(*ast.StringExpr)
	assert.True(t, ok)
	_, ok = print.Args[1].(*ast.BinaryOpExpr)
	assert.True(t, ok)
}

func TestParseIfElse(t *testing.T) {
	stmt := parseOne(t, `if x gt 0 { print "pos" } else { print "non-pos" }`)
	ifStmt, ok := stmt.(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Condition)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseLoopCountForm(t *testing.T) {
	stmt := parseOne(t, `loop 3 times { print "hi" }`)
	forStmt, ok := stmt.(*ast.ForStmt)
	assert.True(t, ok)
	assert.Equal(t, "", forStmt.Var)
	assert.Equal(t, int64(3), forStmt.Count)
}

func TestParseLoopRangeForm(t *testing.T) {
	stmt := parseOne(t, `loop i from 1 to 5 by 2 { print i }`)
	forStmt, ok := stmt.(*ast.ForStmt)
	assert.True(t, ok)
	assert.Equal(t, "i", forStmt.Var)
	assert.Equal(t, int64(1), forStmt.From)
	assert.Equal(t, int64(5), forStmt.To)
	assert.Equal(t, int64(2), forStmt.Step)
}

func TestParseWhile(t *testing.T) {
	stmt := parseOne(t, `while x lt 10 { make x x + 1 }`)
	whileStmt, ok := stmt.(*ast.WhileStmt)
	assert.True(t, ok)
	assert.Len(t, whileStmt.Body, 1)
}

func TestParseFunctionDefinitionWithParams(t *testing.T) {
	stmt := parseOne(t, `make function add takes int a, int b gives int { give a + b }`)
	fn, ok := stmt.(*ast.FunctionDefStmt)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Len(t, fn.Body, 1)
}

func TestParseFunctionDefinitionNoParams(t *testing.T) {
	stmt := parseOne(t, `make function greet gives string { give "hi" }`)
	fn, ok := stmt.(*ast.FunctionDefStmt)
	assert.True(t, ok)
	assert.Empty(t, fn.Params)
}

func TestParseFunctionCall(t *testing.T) {
	stmt := parseOne(t, `make int r add(1, 2)`)
	decl, ok := stmt.(*ast.DeclarationStmt)
	assert.True(t, ok)
	call, ok := decl.Value.(*ast.CallExpr)
	assert.True(t, ok)
	assert.Equal(t, "add", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParseArrayAccessExpression(t *testing.T) {
	stmt := parseOne(t, "make int y s[2]")
	decl, ok := stmt.(*ast.DeclarationStmt)
	assert.True(t, ok)
	access, ok := decl.Value.(*ast.ArrayAccessExpr)
	assert.True(t, ok)
	assert.Equal(t, "s", access.ArrayName)
}

func TestParseUnaryMinusAndPrecedence(t *testing.T) {
	stmt := parseOne(t, "make int z -1 + 2 * 3")
	decl, ok := stmt.(*ast.DeclarationStmt)
	assert.True(t, ok)
	top, ok := decl.Value.(*ast.BinaryOpExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", top.Operator)
	_, ok = top.Left.(*ast.UnaryOpExpr)
	assert.True(t, ok)
	mul, ok := top.Right.(*ast.BinaryOpExpr)
	assert.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
}

func TestParseNotLogical(t *testing.T) {
	stmt := parseOne(t, "if not flag { print 1 }")
	ifStmt, ok := stmt.(*ast.IfStmt)
	assert.True(t, ok)
	logical, ok := ifStmt.Condition.(*ast.LogicalExpr)
	assert.True(t, ok)
	assert.Equal(t, "not", logical.Operator)
	assert.Nil(t, logical.Right)
}

func TestParseSkipAndEnd(t *testing.T) {
	stmt := parseOne(t, "loop 1 times { skip }")
	forStmt := stmt.(*ast.ForStmt)
	_, ok := forStmt.Body[0].(*ast.SkipStmt)
	assert.True(t, ok)

	stmt = parseOne(t, "loop 1 times { end }")
	forStmt = stmt.(*ast.ForStmt)
	_, ok = forStmt.Body[0].(*ast.EndStmt)
	assert.True(t, ok)
}

func TestParseStrayClosingBraceAtTopLevelIsTolerated(t *testing.T) {
	prog, err := ParseSource("make int x 1 } make int y 2")
	assert.NoError(t, err)
	assert.Len(t, prog.Statements, 2)
}

func TestParseMismatchedBraceRecordsError(t *testing.T) {
	_, err := ParseSource("if x eq 1 { print x")
	assert.Error(t, err)
}
