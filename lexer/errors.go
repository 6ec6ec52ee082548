package lexer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMalformedInput = errors.New("malformed input")
)

// Error describes a position in the input that could not be tokenized
type Error struct {
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at %d:%d: %s", ErrMalformedInput, e.Line, e.Col, e.Msg)
}

// Unwrap allows errors.Is(err, ErrMalformedInput)
func (e *Error) Unwrap() error {
	return ErrMalformedInput
}
