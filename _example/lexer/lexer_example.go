package main

import (
	"fmt"
	"log"

	"github.com/xiam/sexpr/lexer"
)

func main() {
	input := `
		(define fact (n) ; factorial
			(if (<= n 1) 1 (* n (fact (- n 1))))
		)
		(fact 5) "Hello world!"
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
