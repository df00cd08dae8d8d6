/*
File    : salt/parser/parser_functions.go
Package : parser

Parses a function definition: make function name takes <params> gives
<type> { ... } (or, for a zero-parameter function, make function name
gives <type> { ... }).
*/
package parser

import (
	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/lang"
)

func (p *Parser) parseFunctionDefinition() ast.Stmt {
	p.advance() // 'function'
	name := p.expectName("function name")

	var params []ast.Param
	switch p.current() {
	case "gives":
		p.advance()
	case "takes":
		p.advance()
		for {
			paramType := p.current()
			if !lang.IsType(paramType) {
				p.errorf("expected parameter type, got %q", paramType)
				break
			}
			p.advance()
			paramName := p.expectName("parameter name")
			params = append(params, ast.Param{Type: paramType, Name: paramName})
			if p.current() == "," {
				p.advance()
				continue
			}
			if p.current() == "gives" {
				break
			}
			p.errorf("expected ',' or 'gives', got %q", p.current())
			break
		}
		p.expect("gives")
	default:
		p.errorf("expected 'takes' or 'gives' after function name, got %q", p.current())
	}

	returnType := p.current()
	if !lang.IsType(returnType) {
		p.errorf("expected return type, got %q", returnType)
	} else {
		p.advance()
	}

	p.expect("{")
	body := p.parseBlock("function block")

	return &ast.FunctionDefStmt{Name: name, ReturnType: returnType, Params: params, Body: body}
}
