package parser

import (
	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

var reservedWords = map[string]ast.Kind{
	"define": ast.KindFunction,
	"if":     ast.KindCondition,
	"format": ast.KindFormat,
	"true":   ast.KindLiteral,
	"false":  ast.KindLiteral,
}

var operatorKinds = map[string]ast.Kind{
	"+":  ast.KindBinary,
	"-":  ast.KindBinary,
	"*":  ast.KindBinary,
	"/":  ast.KindBinary,
	"%":  ast.KindBinary,
	"**": ast.KindBinary,

	"!": ast.KindUnary,

	"<":  ast.KindLogicalInt,
	"<=": ast.KindLogicalInt,
	">":  ast.KindLogicalInt,
	">=": ast.KindLogicalInt,
	"==": ast.KindLogicalInt,
	"!=": ast.KindLogicalInt,
	"=":  ast.KindLogicalInt,

	"&": ast.KindLogicalBool,
	"|": ast.KindLogicalBool,
}

// Classify assigns a kind to a non-parenthesis token
func Classify(tok lexer.Token) ast.Kind {
	switch tok.Type() {
	case lexer.TokenInteger, lexer.TokenString:
		return ast.KindLiteral

	case lexer.TokenSeparator:
		return ast.KindSeparator

	case lexer.TokenWord:
		if kind, ok := reservedWords[tok.Text()]; ok {
			return kind
		}
		return ast.KindIdentifier

	case lexer.TokenOperator:
		if kind, ok := operatorKinds[tok.Text()]; ok {
			return kind
		}
		// evaluation reports it as an unknown operator
		return ast.KindBinary
	}

	return ast.KindInvalid
}

// mergeOperators joins two adjacent operator tokens that the tokenizer would
// have read as a single two-character operator.
func mergeOperators(curr, next *lexer.Token) (*lexer.Token, bool) {
	if !curr.Is(lexer.TokenOperator) || !next.Is(lexer.TokenOperator) {
		return nil, false
	}

	line, col := curr.Pos()
	nextLine, nextCol := next.Pos()
	if line == 0 || line != nextLine || col+len(curr.Text()) != nextCol {
		return nil, false
	}

	if !lexer.IsTwoCharOperator(curr.Text(), next.Text()) {
		return nil, false
	}

	return lexer.NewToken(lexer.TokenOperator, curr.Text()+next.Text(), line, col), true
}
