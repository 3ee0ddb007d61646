package parser

import (
	"github.com/hashicorp/go-multierror"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
)

// Parser builds an AST out of a list of tokens. Parsing happens in two
// phases: tokens are first grouped into a tree that follows parenthesis
// nesting, then that tree is classified into AST nodes.
type Parser struct {
	tokens []lexer.Token
	offset int

	opts     Options
	warnings *multierror.Error
}

// New creates a parser for the given tokens.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// SetOptions replaces the parser options.
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Warnings returns the problems that were found and tolerated during the
// last call to Parse, or nil.
func (p *Parser) Warnings() error {
	return p.warnings.ErrorOrNil()
}

func (p *Parser) peek() (lexer.Token, bool) {
	if p.offset >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.offset], true
}

func (p *Parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.offset++
	}
	return tok, ok
}

// Parse returns the AST of the first expression in the token list. An empty
// token list yields a nil node and no error.
func (p *Parser) Parse() (*ast.Node, error) {
	p.offset = 0
	p.warnings = nil

	root, err := p.group(0)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, nil
	}

	if tok, ok := p.peek(); ok && !p.opts.AllowTrailing {
		return nil, newError(ErrTrailingTokens, tok)
	}

	return p.classify(root, false)
}

// Parse builds an AST out of the given tokens using the default options.
func Parse(tokens []lexer.Token) (*ast.Node, error) {
	return New(tokens).Parse()
}

// ParseBytes tokenizes and parses the given input using the default options.
func ParseBytes(in []byte) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
