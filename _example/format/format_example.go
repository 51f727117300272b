package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/sexprfmt"
	"github.com/xiam/sexprfmt/printer"
)

func main() {
	input := `(forall x (implies (and (P x) (Q x)) (exists y (R x (f y)))))`

	for threshold := 0; threshold <= 4; threshold++ {
		cfg := printer.DefaultConfig()
		cfg.ComplexityThreshold = threshold
		cfg.ShortQuantifiers = true

		fmt.Printf("threshold %d:\n", threshold)
		if err := sexpr.Format(os.Stdout, []byte(input), cfg); err != nil {
			log.Fatal("sexpr.Format:", err)
		}
		fmt.Print("\n\n")
	}
}
