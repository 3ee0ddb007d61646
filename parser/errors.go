package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/callexpr/lexer"
)

var (
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrMalformedCall        = errors.New("call expression must start with a name")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrTrailingTokens       = errors.New("unexpected tokens after expression")
	ErrMaxDepthExceeded     = errors.New("maximum nesting depth exceeded")
)

// Error is a parsing error tied to the token that caused it.
type Error struct {
	Err   error
	Token lexer.Token
}

func newError(err error, tok lexer.Token) *Error {
	return &Error{Err: err, Token: tok}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v %q", e.Token.Pos(), e.Err, e.Token.Text())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Pos returns the position of the offending token.
func (e *Error) Pos() lexer.Pos {
	return e.Token.Pos()
}
