package lexer

import (
	"unicode/utf8"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer over the given input. Token texts are slices of
// in, no copies are made.
func New(in string) *Lexer {
	return &Lexer{
		in:     in,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in string

	tokens []Token

	start  int // byte offset where the current token starts
	offset int // byte offset of the next rune

	startCol int
	col      int
	lines    int
}

// Tokens returns the tokens collected by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and collects its tokens. The last token is
// always of type TokenEOF. Scanning twice has no effect.
func (lx *Lexer) Scan() {
	if len(lx.tokens) > 0 {
		return
	}
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: lx.in[lx.start:lx.offset],

		offset: lx.start,
		col:    lx.startCol + 1,
		line:   lx.lines + 1,
	})

	lx.start = lx.offset
	lx.startCol = lx.col

	if tt == TokenNewLine {
		lx.lines++
		lx.startCol = 0
		lx.col = 0
	}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.offset >= len(lx.in) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(lx.in[lx.offset:])
	return r, true
}

func (lx *Lexer) next() (rune, bool) {
	if lx.offset >= len(lx.in) {
		return utf8.RuneError, false
	}
	r, size := utf8.DecodeRuneInString(lx.in[lx.offset:])
	lx.offset += size
	lx.col++
	return r, true
}

func lexDefaultState(lx *Lexer) lexState {
	r, ok := lx.next()
	if !ok {
		return lexStateEOF
	}

	switch {
	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace, isWhitespace)
	}

	return lexCollectStream(TokenWord, IsWordRune)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for {
			r, ok := lx.peek()
			if !ok || !accept(r) {
				break
			}
			lx.next()
		}
		return lexEmit(tt)
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes a string and returns all the tokens within it.
func Tokenize(in string) []Token {
	lx := New(in)
	lx.Scan()
	return lx.Tokens()
}
