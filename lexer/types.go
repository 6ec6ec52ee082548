package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenOperator                  // Operators: "+", "<=", "**", ...
	TokenInteger                   // Digit runs
	TokenString                    // Double quoted text, lexeme is unquoted
	TokenWord                      // Letters followed by letters, digits or underscores
	TokenSeparator                 // Comma: ","
	TokenEOF                       // End of file
)

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenOperator:        "operator",
	TokenInteger:         "integer",
	TokenString:          "string",
	TokenWord:            "word",
	TokenSeparator:       "separator",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Operators that are made of two characters. The first character of each one
// is also an operator on its own.
var twoCharOperators = []string{"!=", "==", ">=", "<=", "**"}

var singleCharOperators = []rune("-+/*|&%!=<>")

var (
	isOpenExpression  = isRune('(')
	isCloseExpression = isRune(')')
	isQuote           = isRune('"')
	isSeparator       = isRune(',')
	isComment         = isRune(';')
	isNewLine         = isRune('\n')
)

func isRune(want rune) func(r rune) bool {
	return func(r rune) bool {
		return r == want
	}
}

func isOperator(r rune) bool {
	for _, v := range singleCharOperators {
		if v == r {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isWordBody(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsTwoCharOperator returns true if a and b form one of the operators that
// need a second character of lookahead.
func IsTwoCharOperator(a, b string) bool {
	for _, op := range twoCharOperators {
		if a+b == op {
			return true
		}
	}
	return false
}
