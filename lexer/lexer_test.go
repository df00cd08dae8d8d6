/*
File    : salt/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "declaration",
			input:    "make int x 5",
			expected: []string{"make", "int", "x", "5"},
		},
		{
			name:     "string literal keeps quotes",
			input:    `make string name "hello"`,
			expected: []string{"make", "string", "name", `"hello"`},
		},
		{
			name:     "comment stripped to end of line",
			input:    "make int x 5 # a comment\nmake int y 6",
			expected: []string{"make", "int", "x", "5", "make", "int", "y", "6"},
		},
		{
			name:     "operators are single-character tokens",
			input:    "(1 + 2) * 3",
			expected: []string{"(", "1", "+", "2", ")", "*", "3"},
		},
		{
			name:     "array brackets",
			input:    "make s[0] 10",
			expected: []string{"make", "s", "[", "0", "]", "10"},
		},
		{
			name:     "decimal literal",
			input:    "2.2",
			expected: []string{"2.2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, lines := Tokenize(tt.input)
			assert.Equal(t, tt.expected, tokens)
			assert.Equal(t, len(tokens), len(lines))
		})
	}
}

func TestTokenize_UnterminatedStringPromotedToEOF(t *testing.T) {
	tokens, _ := Tokenize(`make string x "oops`)
	assert.Equal(t, []string{"make", "string", "x", `"oops`}, tokens)
}

func TestTokenize_UnknownCharacterSkipped(t *testing.T) {
	tokens, _ := Tokenize("make int x @ 5")
	assert.Equal(t, []string{"make", "int", "x", "5"}, tokens)
}

// TestTokenize_Totality exercises the tokenizer-totality property from the
// spec: tokenizing never fails to terminate, and re-joining the resulting
// tokens with single spaces then re-tokenizing yields the same sequence
// (comments and original whitespace are not expected to survive the round
// trip, only token identity).
func TestTokenize_Totality(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t  ",
		"# just a comment",
		`make int x 5
		 make double y 2.2
		 print "sum=" x + y`,
		"loop i from 1 to 5 by 2 { print i }",
	}

	for _, in := range inputs {
		tokens, _ := Tokenize(in)
		rejoined := strings.Join(tokens, " ")
		again, _ := Tokenize(rejoined)
		assert.Equal(t, tokens, again)
	}
}
