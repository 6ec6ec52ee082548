package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s kind=%q>%v</%s>\n", indent, node.Type(), node.Kind(), node.Text(), node.Type())
}

func main() {
	input := `(define add (x y) (+ x y)) (add 5 4) (& (< 1 2) (! false))`

	program, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, node := range program {
		printTree(node)
	}
}
