package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr/lexer"
)

// Node represents leaf of the AST, either a classified atom or a list of
// nodes. Nodes are not modified once the parser is done with them.
type Node struct {
	nt   NodeType
	kind Kind
	tok  *lexer.Token
	text string

	children []*Node
}

// NewAtom creates and returns an atom of the given kind based on tok
func NewAtom(tok *lexer.Token, kind Kind) *Node {
	return &Node{
		nt:   NodeTypeAtom,
		kind: kind,
		tok:  tok,
		text: tok.Text(),
	}
}

// NewLiteral creates an atom of kind literal that does not come from source
func NewLiteral(text string) *Node {
	return NewAtom(lexer.NewToken(lexer.TokenString, text, 0, 0), KindLiteral)
}

// NewList creates and returns a node of type "list", tok is the token that
// opened it.
func NewList(tok *lexer.Token) *Node {
	return &Node{
		nt:       NodeTypeList,
		tok:      tok,
		children: []*Node{},
	}
}

// Push appends a child node to a parent node of type "list"
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.children = append(n.children, node)
		return nil
	}
	return errors.New("nodes of type atom can't accept children")
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Kind returns the classification of an atom
func (n Node) Kind() Kind {
	return n.kind
}

// Text returns the text of an atom, quoted strings are returned without
// quotes.
func (n Node) Text() string {
	return n.text
}

// IsString returns true if the atom was written as a quoted string
func (n Node) IsString() bool {
	return n.tok != nil && n.tok.Is(lexer.TokenString)
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.children
}

// Pos returns the line and column where the node starts in the source
func (n Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// IsValue returns true if the node is an atom
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is a list
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal compares the structure of two trees, source positions are ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.nt != o.nt {
		return false
	}
	if n.IsValue() {
		return n.kind == o.kind && n.text == o.text && n.IsString() == o.IsString()
	}
	if len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	switch n.nt {
	case NodeTypeList:
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.children))
	}
	return fmt.Sprintf("(%v %v): %v", n.nt, n.kind, n.text)
}
