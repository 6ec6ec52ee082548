package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `()`,
			Out: `()`,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `(+ 3 4)`,
			Out: `(+ 3 4)`,
		},
		{
			In:  "(+\n\t 3\n\n4\n)",
			Out: "(+ 3 4)",
		},
		{
			In:  `(* (+ 5 4) 2) (+ 3 1)`,
			Out: `(* (+ 5 4) 2) (+ 3 1)`,
		},
		{
			In:  `(1 2 () (3(4(5))) 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In:  `(define hello () "Hello, Coding Challenge World")`,
			Out: `(define hello () "Hello, Coding Challenge World")`,
		},
		{
			In:  "(define fact (n) ; factorial\n(if (<= n 1) 1 (* n (fact (- n 1)))))",
			Out: `(define fact (n) (if (<= n 1) 1 (* n (fact (- n 1)))))`,
		},
		{
			In:  "(f a, b)\r\n",
			Out: `(f a , b)`,
		},
	}

	for i := range testCases {
		program, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err)
		assert.NotNil(t, program)

		s := ast.Encode(program...)
		assert.Equal(t, testCases[i].Out, string(s))
	}
}

func TestParserNesting(t *testing.T) {
	program, err := Parse([]byte(`(fib (fact 3)) 4`))
	require.NoError(t, err)
	require.Len(t, program, 2)

	fib := program[0]
	assert.True(t, fib.IsVector())
	require.Len(t, fib.List(), 2)
	assert.Equal(t, ast.KindIdentifier, fib.List()[0].Kind())

	fact := fib.List()[1]
	assert.True(t, fact.IsVector())
	require.Len(t, fact.List(), 2)
	assert.Equal(t, "fact", fact.List()[0].Text())
	assert.Equal(t, ast.KindLiteral, fact.List()[1].Kind())

	assert.True(t, program[1].IsValue())
	assert.Equal(t, "4", program[1].Text())
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In    string
		Class DelimiterClass
		Line  int
		Col   int
	}{
		{`)`, UnexpectedClose, 1, 1},
		{`1 )`, UnexpectedClose, 1, 3},
		{`(+ 1 2))`, UnexpectedClose, 1, 8},
		{"(+ 1\n 2))\n(3)", UnexpectedClose, 2, 4},
		{`(`, UnclosedOpen, 1, 1},
		{`(+ 1 (- 2`, UnclosedOpen, 1, 6},
		{"(1 2 3 4\n\t(5 6 7 8\n\t(4 6)\n\t)", UnclosedOpen, 1, 1},
	}

	for _, tc := range testCases {
		program, err := Parse([]byte(tc.In))
		assert.Nil(t, program)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnbalancedDelimiter), tc.In)

		var delimErr *DelimiterError
		if assert.True(t, errors.As(err, &delimErr), tc.In) {
			assert.Equal(t, tc.Class, delimErr.Class, tc.In)
			assert.Equal(t, tc.Line, delimErr.Line, tc.In)
			assert.Equal(t, tc.Col, delimErr.Col, tc.In)
		}
	}
}

func TestParserMalformedInput(t *testing.T) {
	program, err := Parse([]byte(`(print "hello)`))
	assert.Nil(t, program)
	assert.True(t, errors.Is(err, lexer.ErrMalformedInput))
}

func TestParserInvalidToken(t *testing.T) {
	program, err := Build([]lexer.Token{*lexer.NewToken(lexer.TokenInvalid, "?", 1, 1)})
	assert.Nil(t, program)
	assert.True(t, errors.Is(err, ErrUnexpectedToken))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		In   string
		Kind ast.Kind
	}{
		{`square`, ast.KindIdentifier},
		{`define`, ast.KindFunction},
		{`if`, ast.KindCondition},
		{`format`, ast.KindFormat},
		{`true`, ast.KindLiteral},
		{`false`, ast.KindLiteral},
		{`42`, ast.KindLiteral},
		{`"text"`, ast.KindLiteral},
		{`+`, ast.KindBinary},
		{`-`, ast.KindBinary},
		{`*`, ast.KindBinary},
		{`/`, ast.KindBinary},
		{`%`, ast.KindBinary},
		{`**`, ast.KindBinary},
		{`!`, ast.KindUnary},
		{`<`, ast.KindLogicalInt},
		{`<=`, ast.KindLogicalInt},
		{`>`, ast.KindLogicalInt},
		{`>=`, ast.KindLogicalInt},
		{`==`, ast.KindLogicalInt},
		{`!=`, ast.KindLogicalInt},
		{`=`, ast.KindLogicalInt},
		{`&`, ast.KindLogicalBool},
		{`|`, ast.KindLogicalBool},
		{`,`, ast.KindSeparator},
	}

	for _, tc := range testCases {
		tokens, err := lexer.Tokenize([]byte(tc.In))
		require.NoError(t, err)
		require.Len(t, tokens, 2, tc.In)
		assert.Equal(t, tc.Kind, Classify(tokens[0]), tc.In)
	}

	assert.Equal(t, ast.KindBinary, Classify(*lexer.NewToken(lexer.TokenOperator, "^", 1, 1)))
	assert.Equal(t, ast.KindInvalid, Classify(*lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1)))
}

func TestBuildMergesAdjacentOperators(t *testing.T) {
	tokens := []lexer.Token{
		*lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1),
		*lexer.NewToken(lexer.TokenOperator, "<", 1, 2),
		*lexer.NewToken(lexer.TokenOperator, "=", 1, 3),
		*lexer.NewToken(lexer.TokenInteger, "3", 1, 5),
		*lexer.NewToken(lexer.TokenInteger, "4", 1, 7),
		*lexer.NewToken(lexer.TokenCloseExpression, ")", 1, 8),
		*lexer.NewToken(lexer.TokenOperator, "<", 1, 10),
		*lexer.NewToken(lexer.TokenOperator, "=", 1, 12),
	}

	program, err := Build(tokens)
	require.NoError(t, err)
	require.Len(t, program, 3)

	cmpExpr := program[0].List()[0]
	assert.Equal(t, "<=", cmpExpr.Text())
	assert.Equal(t, ast.KindLogicalInt, cmpExpr.Kind())

	// separated by a space, so they stay apart
	assert.Equal(t, "<", program[1].Text())
	assert.Equal(t, "=", program[2].Text())
}

func TestRoundTrip(t *testing.T) {
	testCases := []string{
		`(+ 3 4)`,
		`(* (+ 5 4) 2) (+ 3 1)`,
		`(define square (x) (* x x)) (square 5)`,
		`(define fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))`,
		`(if (> x 10) "big" "small")`,
		`(& (<= 1 2) (!= 3 4)) (! true) (** 2 10)`,
		`() (()) ((()) ())`,
		`(f a , b) 1 2 three`,
	}

	for _, tc := range testCases {
		tokens, err := lexer.Tokenize([]byte(tc))
		require.NoError(t, err)

		first, err := Build(tokens)
		require.NoError(t, err)

		second, err := Build(ast.Flatten(first...))
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("flatten round trip of %q mismatch (-want +got):\n%s", tc, diff)
		}

		third, err := Parse(ast.Encode(first...))
		require.NoError(t, err)

		if diff := cmp.Diff(first, third); diff != "" {
			t.Errorf("encode round trip of %q mismatch (-want +got):\n%s", tc, diff)
		}
	}
}
