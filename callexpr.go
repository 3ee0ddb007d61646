// Package callexpr reads source text made of parenthesized calls, integer
// literals, quoted strings and bare names and turns it into an AST.
//
//	(add 2 3 (subtract 4 2))
//
// The work is split between the lexer, parser and ast packages; this package
// ties them together.
package callexpr

import (
	"bytes"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

// Options groups the lexer and parser options.
type Options struct {
	Lexer  lexer.Options
	Parser parser.Options
}

// Reader tokenizes and parses text read from an io.Reader.
type Reader struct {
	r    io.Reader
	opts Options

	in       []byte
	read     bool
	warnings *multierror.Error
}

// Parse returns the AST of the given input, or nil if the input holds no
// tokens.
func Parse(in []byte) (*ast.Node, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// Tokenize returns the tokens of the given input. On error the tokens found
// before it are returned too.
func Tokenize(in []byte) ([]lexer.Token, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Tokens()
}

// NewReader creates a Reader that uses the default options.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetOptions replaces the options used by Tokens and Parse.
func (r *Reader) SetOptions(opts Options) {
	r.opts = opts
}

func (r *Reader) load() error {
	if r.read {
		return nil
	}
	in, err := io.ReadAll(r.r)
	if err != nil {
		return err
	}
	r.in, r.read = in, true
	return nil
}

// Tokens reads the whole input and returns its tokens. If the lexer fails the
// tokens found before the error are returned along with it.
func (r *Reader) Tokens() ([]lexer.Token, error) {
	if err := r.load(); err != nil {
		return nil, err
	}

	r.warnings = nil

	lx := lexer.New(r.in)
	lx.SetOptions(r.opts.Lexer)

	tokens, err := lx.Tokenize()
	if warnings := lx.Warnings(); warnings != nil {
		r.warnings = multierror.Append(r.warnings, warnings)
	}
	return tokens, err
}

// Parse reads the whole input and returns its AST.
func (r *Reader) Parse() (*ast.Node, error) {
	tokens, err := r.Tokens()
	if err != nil {
		return nil, err
	}

	p := parser.New(tokens)
	p.SetOptions(r.opts.Parser)

	root, err := p.Parse()
	if warnings := p.Warnings(); warnings != nil {
		r.warnings = multierror.Append(r.warnings, warnings)
	}
	if err != nil {
		return nil, err
	}
	return root, nil
}

// Warnings returns the problems that were tolerated during the last call to
// Tokens or Parse, or nil.
func (r *Reader) Warnings() error {
	return r.warnings.ErrorOrNil()
}
