// Package combinator provides the character-level building blocks the lexer
// is written with. Every parser takes an immutable Cursor and returns the
// remaining input together with a value, or ok == false when it did not
// match. A failed parser never consumes input.
package combinator

import (
	"unicode/utf8"
)

// Cursor represents a position over immutable text
type Cursor struct {
	src string
	off int

	line int
	col  int
}

// NewCursor returns a cursor pointing to the beginning of src
func NewCursor(src string) Cursor {
	return Cursor{src: src, line: 1, col: 1}
}

// Rest returns the text that hasn't been consumed yet
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Offset returns the byte offset of the cursor
func (c Cursor) Offset() int {
	return c.off
}

// Pos returns the 1-based line and column of the cursor
func (c Cursor) Pos() (int, int) {
	return c.line, c.col
}

// EOF returns true if there is no more input
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Peek returns the next rune without consuming it, or utf8.RuneError at EOF
func (c Cursor) Peek() rune {
	if c.EOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r
}

// Advance returns a cursor moved forward by one rune
func (c Cursor) Advance() Cursor {
	if c.EOF() {
		return c
	}
	r, size := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return c
}

// Since returns the text between from and c
func (c Cursor) Since(from Cursor) string {
	return c.src[from.off:c.off]
}

// Parser matches a prefix of the input at the given cursor
type Parser[T any] func(in Cursor) (Cursor, T, bool)

// Tuple holds the values of two sequenced parsers
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Literal matches the exact given text
func Literal(expected string) Parser[string] {
	return func(in Cursor) (Cursor, string, bool) {
		out := in
		for _, want := range expected {
			if out.EOF() || out.Peek() != want {
				return in, "", false
			}
			out = out.Advance()
		}
		return out, expected, true
	}
}

// Predicate matches a single rune accepted by fn
func Predicate(fn func(rune) bool) Parser[rune] {
	return func(in Cursor) (Cursor, rune, bool) {
		if in.EOF() {
			return in, 0, false
		}
		r := in.Peek()
		if !fn(r) {
			return in, 0, false
		}
		return in.Advance(), r, true
	}
}

// Pair runs a and then b, both must match
func Pair[A, B any](a Parser[A], b Parser[B]) Parser[Tuple[A, B]] {
	return func(in Cursor) (Cursor, Tuple[A, B], bool) {
		next, va, ok := a(in)
		if !ok {
			return in, Tuple[A, B]{}, false
		}
		out, vb, ok := b(next)
		if !ok {
			return in, Tuple[A, B]{}, false
		}
		return out, Tuple[A, B]{First: va, Second: vb}, true
	}
}

// Left runs a and then b and keeps the value of a
func Left[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return Map(Pair(a, b), func(t Tuple[A, B]) A {
		return t.First
	})
}

// Right runs a and then b and keeps the value of b
func Right[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Map(Pair(a, b), func(t Tuple[A, B]) B {
		return t.Second
	})
}

// Choice returns the result of the first parser that matches
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(in Cursor) (Cursor, T, bool) {
		for _, p := range parsers {
			if out, v, ok := p(in); ok {
				return out, v, true
			}
		}
		var zero T
		return in, zero, false
	}
}

// ZeroOrMore applies p as many times as possible, it always matches
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) (Cursor, []T, bool) {
		values := []T{}
		for {
			out, v, ok := p(in)
			if !ok || out.Offset() == in.Offset() {
				return in, values, true
			}
			values = append(values, v)
			in = out
		}
	}
}

// OneOrMore is like ZeroOrMore but p must match at least once
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	many := ZeroOrMore(p)
	return func(in Cursor) (Cursor, []T, bool) {
		out, values, _ := many(in)
		if len(values) == 0 {
			return in, nil, false
		}
		return out, values, true
	}
}

// Map transforms the value of a successful match
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return func(in Cursor) (Cursor, B, bool) {
		out, v, ok := p(in)
		if !ok {
			var zero B
			return in, zero, false
		}
		return out, fn(v), true
	}
}

// Span matches one or more runes accepted by fn and returns them as text
func Span(fn func(rune) bool) Parser[string] {
	return Recognize(OneOrMore(Predicate(fn)))
}

// Recognize runs p and returns the text it consumed instead of its value
func Recognize[T any](p Parser[T]) Parser[string] {
	return func(in Cursor) (Cursor, string, bool) {
		out, _, ok := p(in)
		if !ok {
			return in, "", false
		}
		return out, out.Since(in), true
	}
}
