package parser

import (
	"github.com/pkg/errors"

	"github.com/xiam/sexpr/ast"
	"github.com/xiam/sexpr/lexer"
)

var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

type parserState func(p *Parser) parserState

// Parser builds a program, a list of top-level expressions, out of a flat
// token stream.
type Parser struct {
	tokens []lexer.Token
	offset int

	depth   int
	frames  []*ast.Node
	program []*ast.Node

	lastErr error
}

// New creates a parser that reads the given tokens
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		frames:  []*ast.Node{},
		program: []*ast.Node{},
	}
}

// Parse builds the tree, it stops at the first error
func (p *Parser) Parse() error {
	for state := parserDefaultState; state != nil; {
		state = state(p)
	}
	return p.lastErr
}

// Program returns the top-level expressions built by Parse
func (p *Parser) Program() []*ast.Node {
	return p.program
}

func (p *Parser) peek() *lexer.Token {
	if p.offset < len(p.tokens) {
		return &p.tokens[p.offset]
	}
	return TokenEOF
}

func (p *Parser) next() *lexer.Token {
	tok := *p.peek()
	if p.offset < len(p.tokens) {
		p.offset++
	}
	return &tok
}

func (p *Parser) push(node *ast.Node) error {
	if p.depth == 0 {
		p.program = append(p.program, node)
		return nil
	}
	return p.frames[len(p.frames)-1].Push(node)
}

func parserDefaultState(p *Parser) parserState {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		if p.depth > 0 {
			line, col := p.frames[len(p.frames)-1].Pos()
			return ParserErrorState(&DelimiterError{Class: UnclosedOpen, Line: line, Col: col})
		}
		return nil

	case lexer.TokenOpenExpression:
		return parserOpenState(tok)

	case lexer.TokenCloseExpression:
		return parserCloseState(tok)

	case lexer.TokenInvalid:
		line, col := tok.Pos()
		return ParserErrorState(errors.Wrapf(ErrUnexpectedToken, "%v at %d:%d", tok, line, col))

	default:
		return parserAtomState(tok)
	}
}

func parserOpenState(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		p.frames = append(p.frames, ast.NewList(tok))
		p.depth++
		return parserDefaultState
	}
}

func parserCloseState(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		if p.depth == 0 {
			line, col := tok.Pos()
			return ParserErrorState(&DelimiterError{Class: UnexpectedClose, Line: line, Col: col})
		}

		list := p.frames[len(p.frames)-1]
		p.frames = p.frames[:len(p.frames)-1]
		p.depth--

		if err := p.push(list); err != nil {
			return ParserErrorState(err)
		}
		return parserDefaultState
	}
}

func parserAtomState(tok *lexer.Token) parserState {
	return func(p *Parser) parserState {
		if merged, ok := mergeOperators(tok, p.peek()); ok {
			p.next()
			tok = merged
		}

		if err := p.push(ast.NewAtom(tok, Classify(*tok))); err != nil {
			return ParserErrorState(err)
		}
		return parserDefaultState
	}
}

// ParserErrorState stops the parser with the given error
func ParserErrorState(err error) parserState {
	return func(p *Parser) parserState {
		p.lastErr = err
		return nil
	}
}

// Build reconstructs the nested structure of a token stream
func Build(tokens []lexer.Token) ([]*ast.Node, error) {
	p := New(tokens)
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Program(), nil
}

// Parse tokenizes the input and builds its program
func Parse(in []byte) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return Build(tokens)
}
