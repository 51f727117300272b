package lexer

import "unicode"

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenNewLine                   // Newline: "\n"
	TokenWhitespace                // Any other Unicode white space
	TokenWord                      // Anything else, up to the next parenthesis or white space
	TokenEOF                       // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenWord:            "word",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// IsBlank returns true for the token types that carry no meaning to the
// parser.
func (tt TokenType) IsBlank() bool {
	return tt == TokenWhitespace || tt == TokenNewLine
}

func isOpenExpression(r rune) bool {
	return r == '('
}

func isCloseExpression(r rune) bool {
	return r == ')'
}

func isNewLine(r rune) bool {
	return r == '\n'
}

func isWhitespace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// IsWordRune reports whether r may appear inside a word.
func IsWordRune(r rune) bool {
	return !isOpenExpression(r) && !isCloseExpression(r) && !unicode.IsSpace(r)
}
