/*
File    : salt/lang/lang.go
Package : lang

Package lang is the single, authoritative registry of Salt's reserved words,
type names, operator characters, and statement-starter words. The lexer and
parser read these sets from here rather than redeclaring them. The parser
does keep its own small tables saying which keywords are comparison and
logical operators (parser_expressions.go), so a new operator keyword has to
be added there as well as here.
*/
package lang

import "unicode"

// Keywords lists every reserved word in Salt. A reserved word can never be
// used as a variable, array, parameter, or function name.
var Keywords = map[string]bool{
	"make": true, "int": true, "string": true, "bool": true, "double": true,
	"TRUE": true, "FALSE": true, "not": true, "and": true, "or": true,
	"eq": true, "neq": true, "gt": true, "lt": true, "gteq": true, "lteq": true,
	"print": true, "if": true, "else": true, "loop": true, "while": true,
	"from": true, "to": true, "by": true, "skip": true, "end": true,
	"function": true, "takes": true, "gives": true, "give": true, "array": true,
}

// Types lists the four scalar type names a declaration or parameter may use.
var Types = map[string]bool{
	"int": true, "string": true, "bool": true, "double": true,
}

// OperatorChars lists every single-character operator token Salt recognizes.
// Not all of them are consumed by the current grammar (e.g. '=' and '<'/'>'
// are tokenized but every comparison in Salt source is spelled out as a
// keyword — "eq", "gt", and so on); they are kept here because they are part
// of the language's token alphabet regardless of whether today's grammar
// exercises every one of them.
var OperatorChars = map[byte]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'(': true, ')': true, '<': true, '>': true, '=': true, '!': true,
	'{': true, '}': true, ',': true, '[': true, ']': true,
}

// StatementStarters lists the tokens that may begin a new statement. Print
// uses this set to know where its argument list ends: it keeps consuming
// expressions until the next token is a statement starter, a closing brace,
// or end of input.
var StatementStarters = map[string]bool{
	"make": true, "print": true, "if": true, "loop": true, "while": true,
	"skip": true, "end": true, "give": true,
}

// IsKeyword reports whether tok is one of Salt's reserved words.
func IsKeyword(tok string) bool { return Keywords[tok] }

// IsType reports whether tok names one of the four scalar types.
func IsType(tok string) bool { return Types[tok] }

// IsOperatorChar reports whether c is a recognized single-character operator.
func IsOperatorChar(c byte) bool { return OperatorChars[c] }

// IsStatementStarter reports whether tok may begin a new statement.
func IsStatementStarter(tok string) bool { return StatementStarters[tok] }

// IsValidName reports whether tok is usable as a variable, array, parameter,
// or function name: it must start with a letter or underscore, contain only
// alphanumerics and underscores, and must not be a reserved keyword.
func IsValidName(tok string) bool {
	if tok == "" {
		return false
	}
	first := rune(tok[0])
	if !unicode.IsLetter(first) && first != '_' {
		return false
	}
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return !IsKeyword(tok)
}
