package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/sexprfmt/ast"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In         string
		Out        string
		Complexity int
	}{
		{
			In:  `a`,
			Out: `a`,
		},
		{
			In:  "  \n\tfoo-bar?  \n",
			Out: `foo-bar?`,
		},
		{
			In:  `😊`,
			Out: `😊`,
		},
		{
			In:         `(a)`,
			Out:        `(a)`,
			Complexity: 1,
		},
		{
			In:         `(a b c)`,
			Out:        `(a b c)`,
			Complexity: 1,
		},
		{
			In:         "(a\n\t b\n\nc\n)",
			Out:        `(a b c)`,
			Complexity: 1,
		},
		{
			In:         `(a (b c) (d (e f)))`,
			Out:        `(a (b c) (d (e f)))`,
			Complexity: 3,
		},
		{
			In:         `(a(b c)(d(e f)))`,
			Out:        `(a (b c) (d (e f)))`,
			Complexity: 3,
		},
		{
			In:         `((lambda x) y)`,
			Out:        `((lambda x) y)`,
			Complexity: 2,
		},
		{
			In:         `(((f)))`,
			Out:        `(((f)))`,
			Complexity: 3,
		},
		{
			In:         `(forall x (P x))`,
			Out:        `(forall x (P x))`,
			Complexity: 2,
		},
		{
			In:         `(+ 1 2 [3] {:a "b"})`,
			Out:        `(+ 1 2 [3] {:a "b"})`,
			Complexity: 1,
		},
		{
			In:         "(set foo\r\n  (+ 3 3))\r\n",
			Out:        `(set foo (+ 3 3))`,
			Complexity: 2,
		},
	}

	for i := range testCases {
		root, err := Parse(testCases[i].In)
		require.NoError(t, err, "input: %q", testCases[i].In)
		require.NotNil(t, root)

		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)))
		assert.Equal(t, testCases[i].Complexity, root.Complexity())
	}
}

func TestParserComplexity(t *testing.T) {
	root, err := Parse(`(a (b c) (d (e f)))`)
	require.NoError(t, err)

	args := root.Args()
	require.Len(t, args, 2)

	assert.Equal(t, "a", root.Head().Text())
	assert.Equal(t, 3, root.Complexity())
	assert.Equal(t, 1, args[0].Complexity())
	assert.Equal(t, 2, args[1].Complexity())
	assert.Equal(t, 1, args[1].Args()[0].Complexity())
}

func TestParserAtomsShareInput(t *testing.T) {
	in := "(head   arg)"
	root, err := Parse(in)
	require.NoError(t, err)

	head := root.Head()
	line, col := head.Token().Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, head.Token().Offset())

	arg := root.Args()[0]
	assert.Equal(t, in[arg.Token().Offset():arg.Token().Offset()+3], arg.Text())
}

func TestParserEmptyInput(t *testing.T) {
	for _, in := range []string{"", " ", "\n", "\t \r\n  "} {
		root, err := Parse(in)
		assert.NoError(t, err, "input: %q", in)
		assert.Nil(t, root, "input: %q", in)
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In   string
		Err  error
		Line int
		Col  int
	}{
		{In: `(`, Err: ErrUnterminatedCompound, Line: 1, Col: 2},
		{In: `(a`, Err: ErrUnterminatedCompound, Line: 1, Col: 3},
		{In: `(a b`, Err: ErrUnterminatedCompound, Line: 1, Col: 5},
		{In: "(a\n  (b c)\n", Err: ErrUnterminatedCompound, Line: 3, Col: 1},
		{In: `(a (b c)`, Err: ErrUnterminatedCompound, Line: 1, Col: 9},
		{In: `a b)`, Err: ErrUnclosedInput, Line: 1, Col: 3},
		{In: `(a))`, Err: ErrUnclosedInput, Line: 1, Col: 4},
		{In: `)`, Err: ErrUnclosedInput, Line: 1, Col: 1},
		{In: `(a) (b)`, Err: ErrUnclosedInput, Line: 1, Col: 5},
		{In: "a\nb", Err: ErrUnclosedInput, Line: 2, Col: 1},
		{In: `()`, Err: ErrMalformedCompound, Line: 1, Col: 2},
		{In: `(a ())`, Err: ErrMalformedCompound, Line: 1, Col: 5},
		{In: `( )`, Err: ErrMalformedCompound, Line: 1, Col: 3},
	}

	for i := range testCases {
		root, err := Parse(testCases[i].In)
		assert.Nil(t, root)
		require.Error(t, err, "input: %q", testCases[i].In)
		assert.ErrorIs(t, err, testCases[i].Err, "input: %q", testCases[i].In)

		var perr *Error
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, testCases[i].Line, perr.Line, "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Col, perr.Col, "input: %q", testCases[i].In)
		t.Log(err)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse(`(a`)
	assert.EqualError(t, err, "1:3: malformed sexpr: expected `)`, found end of input")

	_, err = Parse(`(a) b`)
	assert.EqualError(t, err, `1:5: unclosed sexpr (near "b")`)
}

func TestParserReuse(t *testing.T) {
	p := New(`(a b)`)
	first, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, "(a b)", string(ast.Encode(first)))
}
