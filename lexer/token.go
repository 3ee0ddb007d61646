package lexer

import (
	"fmt"
)

// Pos is a location within the source text. Offset is a 0-based byte offset,
// Line and Column are 1-based and Column counts runes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position points into a source text.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	num    uint32

	pos Pos
}

// NewToken creates a lexical unit. Number tokens should be created with
// NewNumberToken.
func NewToken(tt TokenType, lexeme string, pos Pos) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		pos:    pos,
	}
}

// NewNumberToken creates a lexical unit of type number
func NewNumberToken(lexeme string, v uint32, pos Pos) Token {
	return Token{
		tt:     TokenNumber,
		lexeme: lexeme,
		num:    v,
		pos:    pos,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the position of the first character of the lexical unit. For
// strings that is the opening quote.
func (t Token) Pos() Pos {
	return t.pos
}

// Text returns the text of the lexical unit. Strings are returned without
// their quotes.
func (t Token) Text() string {
	return t.lexeme
}

// Number returns the value of a number token.
func (t Token) Number() uint32 {
	return t.num
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsOpen returns true if the token is an opening parenthesis.
func (t Token) IsOpen() bool {
	return t.tt == TokenParenthesis && t.lexeme == string(openParenthesis)
}

// IsClose returns true if the token is a closing parenthesis.
func (t Token) IsClose() bool {
	return t.tt == TokenParenthesis && t.lexeme == string(closeParenthesis)
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.pos.Line, t.pos.Column)
}
