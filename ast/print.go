/*
File    : salt/ast/print.go
Package : ast

Package-level AST pretty-printing, used only by the CLI's --dump-ast debug
flag. This is explicitly outside the interpreter's core: it exists purely
to make what the parser produced inspectable, the way the reference
project's own print_tree() helper did for its Python AST.
*/
package ast

import (
	"fmt"
	"strings"
)

// Dump renders prog as an indented tree, one node per line.
func Dump(prog *Program) string {
	var b strings.Builder
	for _, s := range prog.Statements {
		dumpStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(b *strings.Builder, s Stmt, depth int) {
	switch n := s.(type) {
	case *DeclarationStmt:
		indent(b, depth)
		fmt.Fprintf(b, "Declaration(%s %s)\n", n.VarType, n.Name)
		dumpExpr(b, n.Value, depth+1)
	case *AssignmentStmt:
		indent(b, depth)
		fmt.Fprintf(b, "Assignment(%s)\n", n.Name)
		dumpExpr(b, n.Value, depth+1)
	case *ArrayDeclarationStmt:
		indent(b, depth)
		fmt.Fprintf(b, "ArrayDeclaration(%s %s)\n", n.ElementType, n.Name)
		dumpExpr(b, n.Size, depth+1)
	case *ArrayElementAssignmentStmt:
		indent(b, depth)
		fmt.Fprintf(b, "ArrayElementAssignment(%s)\n", n.Name)
		dumpExpr(b, n.Index, depth+1)
		dumpExpr(b, n.Value, depth+1)
	case *PrintStmt:
		indent(b, depth)
		b.WriteString("Print\n")
		for _, a := range n.Args {
			dumpExpr(b, a, depth+1)
		}
	case *IfStmt:
		indent(b, depth)
		b.WriteString("If\n")
		dumpExpr(b, n.Condition, depth+1)
		for _, st := range n.Then {
			dumpStmt(b, st, depth+1)
		}
		if n.Else != nil {
			indent(b, depth)
			b.WriteString("Else\n")
			for _, st := range n.Else {
				dumpStmt(b, st, depth+1)
			}
		}
	case *ForStmt:
		indent(b, depth)
		if n.Var == "" {
			fmt.Fprintf(b, "For(%d times)\n", n.Count)
		} else {
			fmt.Fprintf(b, "For(%s from %d to %d by %d)\n", n.Var, n.From, n.To, n.Step)
		}
		for _, st := range n.Body {
			dumpStmt(b, st, depth+1)
		}
	case *WhileStmt:
		indent(b, depth)
		b.WriteString("While\n")
		dumpExpr(b, n.Condition, depth+1)
		for _, st := range n.Body {
			dumpStmt(b, st, depth+1)
		}
	case *SkipStmt:
		indent(b, depth)
		b.WriteString("Skip\n")
	case *EndStmt:
		indent(b, depth)
		b.WriteString("End\n")
	case *FunctionDefStmt:
		indent(b, depth)
		fmt.Fprintf(b, "Function(%s -> %s)\n", n.Name, n.ReturnType)
		for _, st := range n.Body {
			dumpStmt(b, st, depth+1)
		}
	case *ReturnStmt:
		indent(b, depth)
		b.WriteString("Return\n")
		dumpExpr(b, n.Value, depth+1)
	case *ExprStmt:
		indent(b, depth)
		b.WriteString("ExprStmt\n")
		dumpExpr(b, n.Expr, depth+1)
	default:
		indent(b, depth)
		fmt.Fprintf(b, "<unknown stmt %T>\n", s)
	}
}

func dumpExpr(b *strings.Builder, e Expr, depth int) {
	indent(b, depth)
	switch n := e.(type) {
	case *NumberExpr:
		fmt.Fprintf(b, "Number(%v)\n", n.Value)
	case *StringExpr:
		fmt.Fprintf(b, "String(%q)\n", n.Value)
	case *BooleanExpr:
		fmt.Fprintf(b, "Boolean(%v)\n", n.Value)
	case *VariableExpr:
		fmt.Fprintf(b, "Variable(%s)\n", n.Name)
	case *BinaryOpExpr:
		fmt.Fprintf(b, "BinaryOp(%s)\n", n.Operator)
		dumpExpr(b, n.Left, depth+1)
		dumpExpr(b, n.Right, depth+1)
	case *UnaryOpExpr:
		fmt.Fprintf(b, "UnaryOp(%s)\n", n.Operator)
		dumpExpr(b, n.Operand, depth+1)
	case *ComparisonExpr:
		fmt.Fprintf(b, "Comparison(%s)\n", n.Operator)
		dumpExpr(b, n.Left, depth+1)
		dumpExpr(b, n.Right, depth+1)
	case *LogicalExpr:
		fmt.Fprintf(b, "Logical(%s)\n", n.Operator)
		dumpExpr(b, n.Left, depth+1)
		if n.Right != nil {
			dumpExpr(b, n.Right, depth+1)
		}
	case *ArrayAccessExpr:
		fmt.Fprintf(b, "ArrayAccess(%s)\n", n.ArrayName)
		dumpExpr(b, n.Index, depth+1)
	case *CallExpr:
		fmt.Fprintf(b, "Call(%s)\n", n.Name)
		for _, a := range n.Args {
			dumpExpr(b, a, depth+1)
		}
	default:
		fmt.Fprintf(b, "<unknown expr %T>\n", e)
	}
}
