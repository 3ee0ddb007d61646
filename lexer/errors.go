package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrNumericOverflow       = errors.New("numeric overflow")
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
)

// Error is a lexical error tied to the span of source text that caused it.
type Error struct {
	Err  error
	Text string

	pos Pos
}

func newError(err error, pos Pos, text string) *Error {
	return &Error{Err: err, Text: text, pos: pos}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v %q", e.pos, e.Err, e.Text)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pos returns the position of the first character of the offending span.
func (e *Error) Pos() Pos {
	return e.pos
}
