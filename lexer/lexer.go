package lexer

import (
	"github.com/xiam/sexpr/combinator"
)

type lexState func(*Lexer) lexState

var (
	operator = combinator.Choice(
		combinator.Choice(literals(twoCharOperators)...),
		combinator.Recognize(combinator.Predicate(isOperator)),
	)

	integer = combinator.Span(isDigit)

	word = combinator.Recognize(
		combinator.Pair(
			combinator.Predicate(isWordStart),
			combinator.ZeroOrMore(combinator.Predicate(isWordBody)),
		),
	)

	quoted = combinator.Left(
		combinator.Right(
			combinator.Predicate(isQuote),
			combinator.Recognize(combinator.ZeroOrMore(combinator.Predicate(not(isQuote)))),
		),
		combinator.Predicate(isQuote),
	)

	whitespace = combinator.Span(isWhitespace)

	comment = combinator.Recognize(
		combinator.Pair(
			combinator.Predicate(isComment),
			combinator.ZeroOrMore(combinator.Predicate(not(isNewLine))),
		),
	)
)

func literals(values []string) []combinator.Parser[string] {
	parsers := make([]combinator.Parser[string], 0, len(values))
	for _, v := range values {
		parsers = append(parsers, combinator.Literal(v))
	}
	return parsers
}

func not(fn func(rune) bool) func(rune) bool {
	return func(r rune) bool {
		return !fn(r)
	}
}

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in:     combinator.NewCursor(string(in)),
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in combinator.Cursor

	tokens  []Token
	lastErr error
}

// Tokens returns the tokens collected by Scan
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input, the token list always ends with an EOF token
// unless an error is returned.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return lx.lastErr
	}

	lx.emit(TokenEOF, "", lx.in)
	return nil
}

func (lx *Lexer) emit(tt TokenType, lexeme string, at combinator.Cursor) {
	line, col := at.Pos()
	lx.tokens = append(lx.tokens, Token{
		tt:     tt,
		lexeme: lexeme,

		line: line,
		col:  col,
	})
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.in.EOF() {
		return nil
	}

	r := lx.in.Peek()

	switch {
	case isWhitespace(r):
		return lexSkip(whitespace)
	case isComment(r):
		return lexSkip(comment)

	case isOpenExpression(r):
		return lexMatch(TokenOpenExpression, combinator.Literal("("))
	case isCloseExpression(r):
		return lexMatch(TokenCloseExpression, combinator.Literal(")"))
	case isSeparator(r):
		return lexMatch(TokenSeparator, combinator.Literal(","))

	case isQuote(r):
		return lexString
	case isOperator(r):
		return lexMatch(TokenOperator, operator)
	case isDigit(r):
		return lexMatch(TokenInteger, integer)
	case isWordStart(r):
		return lexMatch(TokenWord, word)

	default:
		// characters without meaning, such as a stray carriage return
		lx.in = lx.in.Advance()
		return lexDefaultState
	}
}

func lexMatch(tt TokenType, p combinator.Parser[string]) lexState {
	return func(lx *Lexer) lexState {
		out, lexeme, ok := p(lx.in)
		if !ok {
			return lexStateError(lx.in, "unexpected character")
		}
		lx.emit(tt, lexeme, lx.in)
		lx.in = out
		return lexDefaultState
	}
}

func lexSkip(p combinator.Parser[string]) lexState {
	return func(lx *Lexer) lexState {
		lx.in, _, _ = p(lx.in)
		return lexDefaultState
	}
}

func lexString(lx *Lexer) lexState {
	out, text, ok := quoted(lx.in)
	if !ok {
		return lexStateError(lx.in, "unterminated string")
	}
	lx.emit(TokenString, text, lx.in)
	lx.in = out
	return lexDefaultState
}

func lexStateError(at combinator.Cursor, msg string) lexState {
	return func(lx *Lexer) lexState {
		line, col := at.Pos()
		lx.lastErr = &Error{Line: line, Col: col, Msg: msg}
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if the input is malformed.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(in)
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
