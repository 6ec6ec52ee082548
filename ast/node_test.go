package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/sexpr/lexer"
)

func TestNode(t *testing.T) {
	token := lexer.NewToken(lexer.TokenWord, "square", 1, 1)

	node := NewAtom(token, KindIdentifier)
	assert.True(t, node.IsValue())
	assert.False(t, node.IsVector())
	assert.Equal(t, "square", node.Text())
	assert.Equal(t, KindIdentifier, node.Kind())

	err := node.Push(NewAtom(token, KindIdentifier))
	assert.Error(t, err)
}

func TestNodeList(t *testing.T) {
	open := lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1)
	token := lexer.NewToken(lexer.TokenInteger, "1", 1, 2)

	list := NewList(open)
	err := list.Push(NewAtom(token, KindLiteral))
	assert.NoError(t, err)
	assert.Len(t, list.List(), 1)
	assert.Equal(t, "(list)[1]", list.String())

	line, col := list.Pos()
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestNodeEqual(t *testing.T) {
	build := func(line int, text string, tt lexer.TokenType) *Node {
		list := NewList(lexer.NewToken(lexer.TokenOpenExpression, "(", line, 1))
		_ = list.Push(NewAtom(lexer.NewToken(lexer.TokenOperator, "+", line, 2), KindBinary))
		_ = list.Push(NewAtom(lexer.NewToken(tt, text, line, 4), KindLiteral))
		return list
	}

	assert.True(t, build(1, "1", lexer.TokenInteger).Equal(build(7, "1", lexer.TokenInteger)))
	assert.False(t, build(1, "1", lexer.TokenInteger).Equal(build(1, "2", lexer.TokenInteger)))
	assert.False(t, build(1, "1", lexer.TokenInteger).Equal(build(1, "1", lexer.TokenString)))

	var empty *Node
	assert.True(t, empty.Equal(nil))
	assert.False(t, empty.Equal(build(1, "1", lexer.TokenInteger)))
}

func TestEncodeAndFlatten(t *testing.T) {
	list := NewList(lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1))
	_ = list.Push(NewAtom(lexer.NewToken(lexer.TokenWord, "format", 1, 2), KindFormat))
	_ = list.Push(NewAtom(lexer.NewToken(lexer.TokenString, "a b", 1, 9), KindLiteral))
	inner := NewList(lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 15))
	_ = list.Push(inner)
	top := NewAtom(lexer.NewToken(lexer.TokenInteger, "7", 1, 18), KindLiteral)

	assert.Equal(t, `(format "a b" ()) 7`, string(Encode(list, top)))

	tokens := Flatten(list, top)
	types := []lexer.TokenType{}
	for _, tok := range tokens {
		types = append(types, tok.Type())
	}
	assert.Equal(t, []lexer.TokenType{
		lexer.TokenOpenExpression,
		lexer.TokenWord,
		lexer.TokenString,
		lexer.TokenOpenExpression,
		lexer.TokenCloseExpression,
		lexer.TokenCloseExpression,
		lexer.TokenInteger,
		lexer.TokenEOF,
	}, types)
}

func TestPrint(t *testing.T) {
	list := NewList(lexer.NewToken(lexer.TokenOpenExpression, "(", 1, 1))
	_ = list.Push(NewAtom(lexer.NewToken(lexer.TokenOperator, "<=", 1, 2), KindLogicalInt))
	_ = list.Push(NewLiteral("x y"))

	var buf bytes.Buffer
	Print(&buf, list)
	assert.Equal(t, "(list)\n    (logical_int): <=\n    (literal): \"x y\"\n", buf.String())
}
