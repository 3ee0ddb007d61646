package parser

import (
	"github.com/hashicorp/go-multierror"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
)

// classify turns a bracket tree into an AST node. Arguments that can't be
// classified are dropped from their call and reported as warnings; a nil node
// without error means the subtree was dropped.
func (p *Parser) classify(b *bracket, nested bool) (*ast.Node, error) {
	if b.group {
		return p.classifyGroup(b, nested)
	}

	tok := b.tok
	switch tok.Type() {
	case lexer.TokenNumber:
		return ast.NewNode(tok.Pos(), ast.NewNumericValue(tok.Number())), nil
	case lexer.TokenName:
		return ast.NewNode(tok.Pos(), ast.NewIdentifierValue(tok.Text())), nil
	case lexer.TokenString:
		return ast.NewNode(tok.Pos(), ast.NewStringValue(tok.Text())), nil
	}

	return nil, p.malformed(newError(ErrUnexpectedToken, tok), nested)
}

func (p *Parser) classifyGroup(b *bracket, nested bool) (*ast.Node, error) {
	if len(b.children) < 1 {
		return nil, p.malformed(newError(ErrMalformedCall, b.tok), nested)
	}

	head := b.children[0]
	if head.group || !head.tok.Is(lexer.TokenName) {
		return nil, p.malformed(newError(ErrMalformedCall, head.tok), nested)
	}

	call := ast.NewCall(b.tok.Pos(), head.tok.Text())
	for _, child := range b.children[1:] {
		node, err := p.classify(child, true)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		if err := call.Push(node); err != nil {
			return nil, err
		}
	}

	return call, nil
}

// malformed records the problem as a warning and lets the caller drop the
// subtree. The root of the tree, or any subtree when RejectMalformed is set,
// fails instead.
func (p *Parser) malformed(err *Error, nested bool) error {
	if !nested || p.opts.RejectMalformed {
		return err
	}
	p.warnings = multierror.Append(p.warnings, err)
	return nil
}
