/*
File    : salt/parser/parser_statements.go
Package : parser
*/
package parser

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/lang"
)

// parseStatement dispatches on the current token's leading keyword. A bare
// expression (no recognized statement keyword) is parsed as an ExprStmt —
// legal but useless on its own, since Salt has no REPL-style auto-print of
// top-level expression results outside of explicit print statements.
func (p *Parser) parseStatement() ast.Stmt {
	switch p.current() {
	case "":
		return nil
	case "make":
		return p.parseMakeStatement()
	case "print":
		return p.parsePrintStatement()
	case "skip":
		p.advance()
		return &ast.SkipStmt{}
	case "end":
		p.advance()
		return &ast.EndStmt{}
	case "give":
		return p.parseGiveStatement()
	case "if":
		return p.parseIfStatement()
	case "loop":
		return p.parseLoopStatement()
	case "while":
		return p.parseWhileStatement()
	case "}":
		return nil
	default:
		expr := p.parseComparison()
		if expr == nil {
			// Guarantee forward progress on a token that isn't a valid
			// expression start either, so the block loop can't spin forever.
			if !p.atEnd() {
				p.advance()
			}
			return nil
		}
		return &ast.ExprStmt{Expr: expr}
	}
}

// parseGiveStatement parses Salt's return statement: give expr.
func (p *Parser) parseGiveStatement() ast.Stmt {
	p.advance() // 'give'
	value := p.parseComparison()
	return &ast.ReturnStmt{Value: value}
}

// parsePrintStatement parses print expr expr ..., consuming expressions
// until the next token is a statement starter, a block-closing '}', or end
// of input.
func (p *Parser) parsePrintStatement() ast.Stmt {
	p.advance() // 'print'
	stmt := &ast.PrintStmt{}
	for !p.atEnd() && p.current() != "}" && !lang.IsStatementStarter(p.current()) {
		expr := p.parseComparison()
		if expr == nil {
			break
		}
		stmt.Args = append(stmt.Args, expr)
	}
	return stmt
}
