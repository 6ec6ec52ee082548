package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")
	ErrUnexpectedToken     = errors.New("unexpected token")
)

// DelimiterClass tells which side of a list is missing its counterpart
type DelimiterClass uint8

// Delimiter classes
const (
	UnexpectedClose DelimiterClass = iota + 1 // ")" without a matching "("
	UnclosedOpen                              // "(" still open at the end of input
)

func (c DelimiterClass) String() string {
	switch c {
	case UnexpectedClose:
		return "unexpected close"
	case UnclosedOpen:
		return "unclosed open"
	}
	return "unknown"
}

// DelimiterError points at the parenthesis that broke the nesting
type DelimiterError struct {
	Class DelimiterClass
	Line  int
	Col   int
}

func (e *DelimiterError) Error() string {
	switch e.Class {
	case UnexpectedClose:
		return fmt.Sprintf("%v: unexpected \")\" at %d:%d", ErrUnbalancedDelimiter, e.Line, e.Col)
	default:
		return fmt.Sprintf("%v: \"(\" at %d:%d is never closed", ErrUnbalancedDelimiter, e.Line, e.Col)
	}
}

// Unwrap allows errors.Is(err, ErrUnbalancedDelimiter)
func (e *DelimiterError) Unwrap() error {
	return ErrUnbalancedDelimiter
}
