package parser

import (
	"github.com/xiam/callexpr/lexer"
)

// bracket is a node of the tree built from the flat token list: either a
// single token or the tokens between a pair of matching parentheses. The
// delimiting parentheses are never stored as children; tok holds the opening
// one for positioning.
type bracket struct {
	tok      lexer.Token
	group    bool
	children []*bracket
}

func (b *bracket) push(child *bracket) {
	b.children = append(b.children, child)
}

// group reads one tree from the current position. It returns nil when there
// are no tokens left.
func (p *Parser) group(depth int) (*bracket, error) {
	tok, ok := p.next()
	if !ok {
		return nil, nil
	}

	if !tok.IsOpen() {
		return &bracket{tok: tok}, nil
	}

	if depth >= p.opts.maxDepth() {
		return nil, newError(ErrMaxDepthExceeded, tok)
	}

	root := &bracket{tok: tok, group: true, children: []*bracket{}}
	for {
		next, ok := p.peek()
		if !ok {
			if p.opts.AutoCloseOnEOF {
				return root, nil
			}
			return nil, newError(ErrUnmatchedParenthesis, tok)
		}

		if next.IsClose() {
			p.next()
			return root, nil
		}

		child, err := p.group(depth + 1)
		if err != nil {
			return nil, err
		}
		root.push(child)
	}
}
