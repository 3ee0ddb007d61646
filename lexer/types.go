package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid     TokenType = iota
	TokenParenthesis           // Open or close parenthesis: "(" or ")"
	TokenName                  // Letters ([a-zA-Z])
	TokenNumber                // Unsigned integers ([0-9])
	TokenString                // Raw text between double quotes
)

var tokenNames = map[TokenType]string{
	TokenInvalid:     "invalid",
	TokenParenthesis: "parenthesis",
	TokenName:        "name",
	TokenNumber:      "number",
	TokenString:      "string",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}
