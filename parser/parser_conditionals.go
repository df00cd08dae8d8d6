/*
File    : salt/parser/parser_conditionals.go
Package : parser
*/
package parser

import "github.com/crawfordb2026/salt/ast"

// parseIfStatement parses "if <condition> { ... }" with an optional
// trailing "else { ... }".
func (p *Parser) parseIfStatement() ast.Stmt {
	p.advance() // 'if'
	condition := p.parseComparison()
	p.expect("{")
	thenBlock := p.parseBlock("if block")

	var elseBlock []ast.Stmt
	if p.current() == "else" {
		p.advance()
		p.expect("{")
		elseBlock = p.parseBlock("else block")
	}

	return &ast.IfStmt{Condition: condition, Then: thenBlock, Else: elseBlock}
}
