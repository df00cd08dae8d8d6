/*
File    : salt/parser/parser_loops.go
Package : parser

Parses Salt's two loop statements: 'loop' (count form or range form) and
'while'. The range form's from/to/by operands must be integer literal
tokens, parsed directly at parse time — not general expressions — exactly
as the reference parser's parse_loop_statement does with int(token). This
is narrower than, say, an array's declared size (a full expression): the
language simply never lets a loop bound be computed.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/crawfordb2026/salt/ast"
	"github.com/crawfordb2026/salt/lang"
)

func (p *Parser) parseLoopStatement() ast.Stmt {
	p.advance() // 'loop'

	tok := p.current()
	stmt := &ast.ForStmt{}

	switch {
	case isIntegerLiteral(tok):
		count, _ := strconv.ParseInt(tok, 10, 64)
		p.advance()
		if !p.expect("times") {
			return stmt
		}
		stmt.Count = count

	case lang.IsValidName(tok):
		stmt.Var = tok
		p.advance()
		if !p.expect("from") {
			return stmt
		}
		stmt.From = p.parseIntLiteral("start index")
		if !p.expect("to") {
			return stmt
		}
		stmt.To = p.parseIntLiteral("end index")
		stmt.Step = 1
		if p.current() == "by" {
			p.advance()
			stmt.Step = p.parseIntLiteral("step")
		}

	default:
		p.errorf("expected number or variable name after 'loop', got %q", tok)
		return stmt
	}

	p.expect("{")
	stmt.Body = p.parseBlock("loop block")
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	p.advance() // 'while'
	condition := p.parseComparison()
	p.expect("{")
	body := p.parseBlock("while block")
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// parseIntLiteral consumes and returns the current token as an integer,
// recording a ParseError (and leaving the cursor in place) if it isn't one.
func (p *Parser) parseIntLiteral(what string) int64 {
	tok := p.current()
	if !isIntegerLiteral(tok) {
		p.errorf("expected number for loop %s, got %q", what, tok)
		return 0
	}
	p.advance()
	n, _ := strconv.ParseInt(tok, 10, 64)
	return n
}

func isIntegerLiteral(tok string) bool {
	if tok == "" || strings.Contains(tok, ".") {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
