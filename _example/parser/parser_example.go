package main

import (
	"log"
	"os"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

func main() {
	input := `(define square (x) (* x x)) (square (+ 2 3)) (if (>= 4 3) "yes" "no")`

	program, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(os.Stdout, program...)
}
