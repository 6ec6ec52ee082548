// Package sexpr evaluates programs written in a small Lisp-like language:
// parenthesized prefix expressions over 32-bit integers, booleans and
// strings, with lexically scoped function definitions.
package sexpr

import (
	"context"
)

// Evaluate parses and evaluates src with a fresh evaluator and returns the
// non-empty results of its top-level forms separated by spaces.
func Evaluate(src string) (string, error) {
	return New().EvalString(context.Background(), src)
}
