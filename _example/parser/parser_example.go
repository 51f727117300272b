package main

import (
	"log"
	"os"

	"github.com/xiam/sexprfmt/ast"
	"github.com/xiam/sexprfmt/parser"
)

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 3.27]]) (fn_c 66 3 53 "Hello" 😊))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.Fprint(os.Stdout, root, nil); err != nil {
		log.Fatal("ast.Fprint:", err)
	}
}
