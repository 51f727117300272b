package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexprfmt/lexer"
)

// Kinds of parse errors. Match them with errors.Is.
var (
	ErrUnclosedInput        = errors.New("unclosed sexpr")
	ErrUnterminatedCompound = errors.New("malformed sexpr: expected `)`, found end of input")
	ErrMalformedCompound    = errors.New("malformed sexpr: expected expression, found `)`")
)

// Error describes where parsing stopped and why.
type Error struct {
	Kind  error
	Line  int
	Col   int
	Found string
}

func newError(kind error, tok *lexer.Token) *Error {
	line, col := tok.Pos()
	return &Error{
		Kind:  kind,
		Line:  line,
		Col:   col,
		Found: tok.Text(),
	}
}

func (e *Error) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Kind)
	}
	return fmt.Sprintf("%d:%d: %v (near %q)", e.Line, e.Col, e.Kind, e.Found)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
