package parser

import (
	"github.com/xiam/sexprfmt/ast"
	"github.com/xiam/sexprfmt/lexer"
)

// Parser builds a tree out of the tokens of a single S-expression.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a parser for the given input.
func New(in string) *Parser {
	return &Parser{
		tokens: lexer.Tokenize(in),
	}
}

// Parse reads exactly one expression, optionally surrounded by white
// space. Empty or white space only input yields a nil node and no error.
func (p *Parser) Parse() (*ast.Node, error) {
	node, _, err := p.expr()
	if err != nil {
		return nil, err
	}

	if tok := p.skipBlank(); !tok.Is(lexer.TokenEOF) {
		return nil, newError(ErrUnclosedInput, tok)
	}

	return node, nil
}

// peek returns the current token without consuming it.
func (p *Parser) peek() *lexer.Token {
	return &p.tokens[p.pos]
}

// next consumes and returns the current token. The EOF token is never
// consumed.
func (p *Parser) next() *lexer.Token {
	tok := &p.tokens[p.pos]
	if !tok.Is(lexer.TokenEOF) {
		p.pos++
	}
	return tok
}

// skipBlank consumes white space and returns the first significant token
// without consuming it.
func (p *Parser) skipBlank() *lexer.Token {
	for p.peek().Type().IsBlank() {
		p.next()
	}
	return p.peek()
}

// expr parses one expression. When there is nothing left to read at this
// level, either because the input is exhausted or because the next token
// closes the enclosing compound, the boolean result is false.
func (p *Parser) expr() (*ast.Node, bool, error) {
	tok := p.skipBlank()

	switch tok.Type() {
	case lexer.TokenEOF, lexer.TokenCloseExpression:
		return nil, false, nil

	case lexer.TokenWord:
		p.next()
		return ast.NewAtom(tok, tok.Text()), true, nil

	case lexer.TokenOpenExpression:
		p.next()
		node, err := p.compound(tok)
		if err != nil {
			return nil, false, err
		}
		return node, true, nil
	}

	panic("unreachable")
}

func (p *Parser) compound(open *lexer.Token) (*ast.Node, error) {
	head, ok, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !ok {
		tok := p.peek()
		if tok.Is(lexer.TokenEOF) {
			return nil, newError(ErrUnterminatedCompound, tok)
		}
		return nil, newError(ErrMalformedCompound, tok)
	}

	args := []*ast.Node{}
	for {
		arg, ok, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		args = append(args, arg)
	}

	tok := p.skipBlank()
	switch tok.Type() {
	case lexer.TokenCloseExpression:
		p.next()
		return ast.NewCompound(open, head, args...), nil
	case lexer.TokenEOF:
		return nil, newError(ErrUnterminatedCompound, tok)
	}

	return nil, newError(ErrMalformedCompound, tok)
}

// Parse reads a single S-expression from in.
func Parse(in string) (*ast.Node, error) {
	return New(in).Parse()
}
