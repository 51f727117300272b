package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner(t *testing.T) {
	testCases := []string{
		`a`,

		`(a b c)`,

		`(a (b c) (d (e f)))`,

		`(forall x (P x))`,

		`(foo
			a :b
			c-d-e-f
			"g
			hi"
		)`,

		`((lambda x) y)`,

		`(fn1 [:A "😊"])`,

		`(fn1 {:robot 🤖})`,

		`()`,

		`))((`,
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i])
		t.Logf("tokens: %v", tokens)

		require.NotEmpty(t, tokens)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type())
	}
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{
				TokenEOF,
			},
		},
		{
			`1`,
			[]TokenType{
				TokenWord,
				TokenEOF,
			},
		},
		{
			`+
			1`,
			[]TokenType{
				TokenWord,
				TokenNewLine,
				TokenWhitespace,
				TokenWord,
				TokenEOF,
			},
		},
		{
			`-1.23`,
			[]TokenType{
				TokenWord,
				TokenEOF,
			},
		},
		{
			`(+
				[1
				{}])`,
			[]TokenType{
				TokenOpenExpression,
				TokenWord,
				TokenNewLine,
				TokenWhitespace,
				TokenWord,
				TokenNewLine,
				TokenWhitespace,
				TokenWord,
				TokenCloseExpression,
				TokenEOF,
			},
		},
		{
			"(a b)",
			[]TokenType{
				TokenOpenExpression,
				TokenWord,
				TokenWhitespace,
				TokenWord,
				TokenCloseExpression,
				TokenEOF,
			},
		},
	}

	getTokenTypes := func(tokens []Token) []TokenType {
		tt := make([]TokenType, 0, len(tokens))
		for i := range tokens {
			tt = append(tt, tokens[i].tt)
		}
		return tt
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenText(t *testing.T) {
	in := "(forall x\t(P-1 x))"
	tokens := Tokenize(in)

	texts := []string{}
	for _, tok := range tokens {
		if tok.Is(TokenWord) {
			texts = append(texts, tok.Text())
			assert.Equal(t, tok.Text(), in[tok.Offset():tok.Offset()+len(tok.Text())])
		}
	}
	assert.Equal(t, []string{"forall", "x", "P-1", "x"}, texts)
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{
				{1, 1},
			},
		},
		{
			"1",
			[][2]int{
				{1, 1}, {1, 2},
			},
		},
		{
			"\n\n\n\n",
			[][2]int{
				{1, 1},
				{2, 1},
				{3, 1},
				{4, 1},
				{5, 1},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{1, 1},
				{2, 1},
				{3, 1},
				{4, 1}, {4, 6}, {4, 7}, {4, 11},
				{5, 1},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 1},
				{3, 1}, {3, 3}, {3, 8},
			},
		},
		{
			"(é 😊)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5}, {1, 6},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			ret = append(ret, [2]int{tokens[i].line, tokens[i].col})
		}
		return ret
	}

	for i := range testCases {
		tokens := Tokenize(testCases[i].In)
		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input: %q", testCases[i].In)
	}
}
