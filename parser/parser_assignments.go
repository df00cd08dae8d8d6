/*
File    : salt/parser/parser_assignments.go
Package : parser

Parses every shape the 'make' keyword can introduce: a function definition,
a scalar declaration, an array declaration, a scalar assignment, or an
array-element assignment. Which shape it is can only be told apart by
looking one or two tokens ahead of 'make', mirroring parse_make_statement
in the reference parser.
*/
package parser

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/lang"
)

func (p *Parser) parseMakeStatement() ast.Stmt {
	p.advance() // 'make'

	if p.current() == "function" {
		return p.parseFunctionDefinition()
	}

	if lang.IsType(p.current()) {
		varType := p.current()
		p.advance()

		if p.current() == "array" {
			p.advance()
			name := p.expectName("array name")
			if !p.expect("[") {
				return &ast.ArrayDeclarationStmt{ElementType: varType, Name: name}
			}
			size := p.parseComparison()
			p.expect("]")
			return &ast.ArrayDeclarationStmt{ElementType: varType, Name: name, Size: size}
		}

		name := p.expectName("variable name")
		value := p.parseComparison()
		return &ast.DeclarationStmt{VarType: varType, Name: name, Value: value}
	}

	name := p.expectName("variable name")

	if p.current() == "[" {
		p.advance()
		index := p.parseComparison()
		p.expect("]")
		value := p.parseComparison()
		return &ast.ArrayElementAssignmentStmt{Name: name, Index: index, Value: value}
	}

	value := p.parseComparison()
	return &ast.AssignmentStmt{Name: name, Value: value}
}
