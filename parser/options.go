package parser

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

// Options modify how the parser deals with malformed input. The zero value is
// the default behaviour.
type Options struct {
	// AutoCloseOnEOF closes any parenthesis that is still open when the
	// input ends instead of failing with ErrUnmatchedParenthesis.
	AutoCloseOnEOF bool

	// AllowTrailing ignores whatever follows the first complete expression
	// instead of failing with ErrTrailingTokens.
	AllowTrailing bool

	// RejectMalformed fails with ErrMalformedCall when an argument group
	// can't be turned into a call expression. By default such arguments are
	// dropped from their call and reported by Warnings.
	RejectMalformed bool

	// MaxDepth limits how deep parentheses can be nested.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}
