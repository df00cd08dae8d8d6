/*
File    : salt/eval/evaluator_test.go
Package : eval
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crawfordb2026/salt/output"
	"github.com/crawfordb2026/salt/parser"
)

// run tokenizes, parses, and evaluates src, returning the captured output
// lines and any error.
func run(t *testing.T, src string) ([]string, error) {
	t.Helper()
	prog, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	buf := output.NewBuffer()
	ev := New(buf)
	if err := ev.Run(prog); err != nil {
		return buf.Lines, err
	}
	return buf.Lines, nil
}

func TestScenario_SimpleAddition(t *testing.T) {
	lines, err := run(t, `
		make int x 5
		make int y 7
		print "sum=" x + y
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"sum=12"}, lines)
}

func TestScenario_ArrayAverage(t *testing.T) {
	lines, err := run(t, `
		make int array s[4]
		make s[0] 10
		make s[1] 20
		make s[2] 30
		make s[3] 40
		make int total 0
		make int i 0
		loop i from 0 to 3 { make total total + s[i] }
		print "avg=" total / 4
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"avg=25"}, lines)
}

func TestScenario_IfElse(t *testing.T) {
	lines, err := run(t, `
		make int x -3
		if x gt 0 { print "positive" } else { print "non-positive" }
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"non-positive"}, lines)
}

func TestScenario_FunctionCall(t *testing.T) {
	lines, err := run(t, `
		make function square takes int n gives int { give n * n }
		print square(6)
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"36"}, lines)
}

func TestScenario_WhileLoop(t *testing.T) {
	lines, err := run(t, `
		make int i 0
		make int total 0
		while i lt 5 {
			make total total + i
			make i i + 1
		}
		print total
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"10"}, lines)
}

func TestScenario_Skip(t *testing.T) {
	lines, err := run(t, `
		make int i 0
		loop i from 1 to 5 { if i eq 3 { skip } print i }
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4", "5"}, lines)
}

func TestEnd_StopsLoopImmediately(t *testing.T) {
	lines, err := run(t, `
		make int i 0
		loop i from 1 to 10 { if i eq 4 { end } print i }
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines)
}

func TestDeclarationUniqueness(t *testing.T) {
	_, err := run(t, `
		make int x 1
		make int x 2
	`)
	assert.Error(t, err)
}

func TestTypeStickiness_IntTruncatesDouble(t *testing.T) {
	lines, err := run(t, `
		make int x 5
		make x 9.7
		print x
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"9"}, lines)
}

func TestArrayBounds_OutOfRangeIsIndexError(t *testing.T) {
	_, err := run(t, `
		make int array s[3]
		make s[5] 1
	`)
	assert.Error(t, err)
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `
		make int x 5
		make int y 0
		print x / y
	`)
	assert.Error(t, err)
}

func TestStringConcatenationPromotesNonStrings(t *testing.T) {
	lines, err := run(t, `
		make int x 5
		print "x=" x
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"x=5"}, lines)
}

func TestDoublePrintsWithFractionalDigit(t *testing.T) {
	lines, err := run(t, `
		make double x 12
		print x
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"12.0"}, lines)
}

func TestFunctionSeesGlobalDeclaredAfterDefinitionButBeforeCall(t *testing.T) {
	lines, err := run(t, `
		make function readIt gives int { give g }
		make int g 99
		print readIt()
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"99"}, lines)
}

func TestFunctionArityMismatch(t *testing.T) {
	_, err := run(t, `
		make function add takes int a, int b gives int { give a + b }
		print add(1)
	`)
	assert.Error(t, err)
}

func TestRecursiveFunction(t *testing.T) {
	lines, err := run(t, `
		make function fact takes int n gives int {
			if n lteq 1 { give 1 }
			give n * fact(n - 1)
		}
		print fact(5)
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"120"}, lines)
}

func TestFunctionParameterShadowsGlobalOfSameName(t *testing.T) {
	lines, err := run(t, `
		make int a 10
		make function f takes int a gives int { give a }
		print f(5)
		print a
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"5", "10"}, lines)
}

func TestStringComparisonOrdering(t *testing.T) {
	lines, err := run(t, `
		print "abc" lt "abd"
		print "abd" gt "abc"
		print "abc" lteq "abc"
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"TRUE", "TRUE", "TRUE"}, lines)
}

func TestBooleanComparisonOrdering(t *testing.T) {
	lines, err := run(t, `
		print FALSE lt TRUE
		print TRUE gteq FALSE
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"TRUE", "TRUE"}, lines)
}

func TestCrossTypeComparisonIsTypeError(t *testing.T) {
	_, err := run(t, `
		print "5" lt 6
	`)
	assert.Error(t, err)
}

func TestIntegerMultiplicationStaysExactBeyondFloat64Precision(t *testing.T) {
	lines, err := run(t, `
		make int x 100000000
		make int y 100000000
		print x * y
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"10000000000000000"}, lines)
}

func TestSkipEscapingFunctionBodyWithoutLoopIsError(t *testing.T) {
	_, err := run(t, `
		make function f gives int { skip }
		print f()
	`)
	assert.Error(t, err)
}

func TestNonShortCircuitLogicalStillEvaluatesBothSides(t *testing.T) {
	lines, err := run(t, `
		make function sideEffecting gives bool {
			print "called"
			give TRUE
		}
		make bool result FALSE and sideEffecting()
		print result
	`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"called", "FALSE"}, lines)
}
