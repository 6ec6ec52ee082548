package sexpr

import (
	"github.com/pkg/errors"

	"github.com/xiam/sexpr/lexer"
	"github.com/xiam/sexpr/parser"
)

var (
	ErrUnknownOperator = errors.New("unknown operator")
	ErrParseFailure    = errors.New("parse failure")
	ErrUnexpectedEnd   = errors.New("unexpected end of expression")
	ErrArithmetic      = errors.New("arithmetic error")
	ErrRecursionLimit  = errors.New("recursion limit exceeded")
	ErrBudgetExhausted = errors.New("evaluation budget exhausted")
)

var (
	ErrUnbalancedDelimiter = parser.ErrUnbalancedDelimiter
	ErrMalformedInput      = lexer.ErrMalformedInput
)
