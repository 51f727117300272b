package main

import (
	"fmt"

	"github.com/xiam/sexprfmt/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b [89 :A :B [67 3.27]])
			(fn_c 66 3 53 "Hello")
		)
	`

	tokens := lexer.Tokenize(input)

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
