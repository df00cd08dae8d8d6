/*
File    : salt/lexer/lexer.go
Package : lexer

Package lexer turns Salt source text into a flat, ordered sequence of
tokens. Tokens are plain strings (Salt programs carry no position metadata
in the token stream itself) — a numeric literal, a double-quoted string
literal with its quotes retained, an identifier or keyword, or a single
operator character. The lexer performs no semantic classification: it does
not distinguish keywords from identifiers, nor numbers from other literals.
That is the parser's job.
*/
package lexer

import (
	"strings"
	"unicode"

	"github.com/crawfordb2026/salt/lang"
)

// Lexer scans Salt source text one byte at a time, tracking the current
// position and the current 1-indexed source line (for diagnostics only —
// line numbers play no part in token identity).
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{Src: src, SrcLength: len(src), Line: 1}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Advance moves the lexer to the next byte in the source, updating Line
// when a newline is consumed.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
		return
	}
	lex.Current = lex.Src[lex.Position]
}

// Tokenize scans the entire source and returns its token sequence, plus a
// parallel slice giving the 1-indexed source line each token started on.
// The line slice exists purely to let the parser attach an approximate
// position to diagnostics.Error values; discard it if you don't need that.
func Tokenize(src string) ([]string, []int) {
	lex := New(src)
	tokens := make([]string, 0, len(src)/4)
	lines := make([]int, 0, len(src)/4)

	for lex.Current != 0 {
		lex.skipWhitespaceAndComments()
		if lex.Current == 0 {
			break
		}

		line := lex.Line
		switch {
		case isDigit(lex.Current):
			tokens = append(tokens, lex.readNumber())
		case lex.Current == '"':
			tokens = append(tokens, lex.readString())
		case isAlpha(lex.Current) || lex.Current == '_':
			tokens = append(tokens, lex.readIdentifier())
		case lang.IsOperatorChar(lex.Current):
			tokens = append(tokens, string(lex.Current))
			lex.Advance()
		default:
			// Any other character is silently skipped, per the tokenizer's
			// priority-ordered rules.
			lex.Advance()
			continue
		}
		lines = append(lines, line)
	}

	return tokens, lines
}

// skipWhitespaceAndComments advances past runs of whitespace and '#'
// line comments, which run to end-of-line (exclusive).
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(lex.Current):
			lex.Advance()
		case lex.Current == '#':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}

// readNumber consumes the maximal run of digits and '.' characters. No
// validation of decimal-point count happens here — a malformed number (e.g.
// two dots) surfaces later, when the parser tries to interpret the literal.
func (lex *Lexer) readNumber() string {
	start := lex.Position
	for isDigit(lex.Current) || lex.Current == '.' {
		lex.Advance()
	}
	return lex.Src[start:lex.Position]
}

// readString consumes a double-quoted string literal, retaining the
// surrounding quotes in the emitted token. It does not process escape
// sequences. A missing closing quote consumes to end-of-input and is
// emitted as a lone-quoted token — this is a deliberately tolerated quirk,
// not a lexical error.
func (lex *Lexer) readString() string {
	var b strings.Builder
	b.WriteByte('"')
	lex.Advance() // consume opening quote
	for lex.Current != '"' && lex.Current != 0 {
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	if lex.Current == '"' {
		b.WriteByte('"')
		lex.Advance()
	}
	return b.String()
}

// readIdentifier consumes the maximal alphanumeric/underscore run starting
// at a letter or underscore. The result may be a keyword or a user name;
// the lexer doesn't care which.
func (lex *Lexer) readIdentifier() string {
	start := lex.Position
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	return lex.Src[start:lex.Position]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return unicode.IsLetter(rune(c)) }

func isAlphanumeric(c byte) bool { return isAlpha(c) || isDigit(c) }

func isWhitespace(c byte) bool { return unicode.IsSpace(rune(c)) }
