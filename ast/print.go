package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/sexpr/lexer"
)

// Print writes a human-readable representation of a program
func Print(w io.Writer, nodes ...*Node) {
	for _, n := range nodes {
		printLevel(w, n, 0)
	}
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, "nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	switch n.Type() {
	case NodeTypeList:
		fmt.Fprintf(w, "%s(%s)\n", indent, n.Type())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeAtom:
		fmt.Fprintf(w, "%s(%s): %s\n", indent, n.Kind(), encodeNode(n))

	default:
		panic("unknown node type")
	}
}

// Encode transforms a program into its text representation
func Encode(nodes ...*Node) []byte {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, encodeNode(n))
	}
	return []byte(strings.Join(parts, " "))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, child := range n.List() {
			nodes = append(nodes, encodeNode(child))
		}
		return "(" + strings.Join(nodes, " ") + ")"

	case NodeTypeAtom:
		if n.IsString() {
			return `"` + n.Text() + `"`
		}
		return n.Text()

	default:
		panic("unknown node type")
	}
}

// Flatten turns a program back into the token stream it was built from,
// terminated by an EOF token.
func Flatten(nodes ...*Node) []lexer.Token {
	tokens := []lexer.Token{}
	for _, n := range nodes {
		tokens = flattenNode(tokens, n)
	}
	return append(tokens, *lexer.NewToken(lexer.TokenEOF, "", 0, 0))
}

func flattenNode(tokens []lexer.Token, n *Node) []lexer.Token {
	line, col := n.Pos()
	switch n.Type() {
	case NodeTypeList:
		tokens = append(tokens, *lexer.NewToken(lexer.TokenOpenExpression, "(", line, col))
		for _, child := range n.List() {
			tokens = flattenNode(tokens, child)
		}
		return append(tokens, *lexer.NewToken(lexer.TokenCloseExpression, ")", 0, 0))
	default:
		return append(tokens, *n.Token())
	}
}
