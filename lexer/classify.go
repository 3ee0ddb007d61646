package lexer

import (
	"unicode"
)

// charClass is an ASCII lookup table.
type charClass [128]bool

func newCharClass(chars string) *charClass {
	var c charClass
	for _, r := range chars {
		c[r] = true
	}
	return &c
}

func (c *charClass) has(r rune) bool {
	return r >= 0 && r < 128 && c[r]
}

var (
	letters = newCharClass("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	digits  = newCharClass("0123456789")
)

const (
	openParenthesis  = '('
	closeParenthesis = ')'
	quote            = '"'
)

// IsLetter returns true if r is an ASCII letter.
func IsLetter(r rune) bool {
	return letters.has(r)
}

// IsDigit returns true if r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return digits.has(r)
}

// IsWhitespace returns true if r is any space-equivalent character.
func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsOpenParenthesis returns true if r is "(".
func IsOpenParenthesis(r rune) bool {
	return r == openParenthesis
}

// IsCloseParenthesis returns true if r is ")".
func IsCloseParenthesis(r rune) bool {
	return r == closeParenthesis
}

// IsParenthesis returns true if r is either "(" or ")".
func IsParenthesis(r rune) bool {
	return IsOpenParenthesis(r) || IsCloseParenthesis(r)
}

// IsQuote returns true if r is a double quote.
func IsQuote(r rune) bool {
	return r == quote
}
