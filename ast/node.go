package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/callexpr/lexer"
)

var errNotACall = errors.New("only call nodes can accept arguments")

// Node is an element of the AST: a literal, an identifier, a call expression
// or the explicit empty marker.
type Node struct {
	nt  NodeType
	pos lexer.Pos

	v    Valuer
	name string
	args []*Node
}

// NewNode creates and returns a value node
func NewNode(pos lexer.Pos, v Valuer) *Node {
	return &Node{
		nt:  v.Type(),
		pos: pos,
		v:   v,
	}
}

// NewCall creates and returns a call expression with no arguments
func NewCall(pos lexer.Pos, name string, args ...*Node) *Node {
	return &Node{
		nt:   NodeTypeCall,
		pos:  pos,
		name: name,
		args: append([]*Node{}, args...),
	}
}

// NewEmpty creates a node that explicitly holds no value
func NewEmpty() *Node {
	return &Node{nt: NodeTypeEmpty}
}

// Push appends an argument to a call expression.
func (n *Node) Push(node *Node) error {
	if !n.IsCall() {
		return errNotACall
	}
	n.args = append(n.args, node)
	return nil
}

// PushValue appends a new value to the call expression
func (n *Node) PushValue(pos lexer.Pos, v Valuer) (*Node, error) {
	node := NewNode(pos, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushCall appends a new call expression to the call expression
func (n *Node) PushCall(pos lexer.Pos, name string) (*Node, error) {
	node := NewCall(pos, name)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Type returns the type of the node. A zero Node is empty.
func (n *Node) Type() NodeType {
	if n.nt == 0 {
		return NodeTypeEmpty
	}
	return n.nt
}

// Pos returns the position of the token the node was built from. Calls are
// positioned at their opening parenthesis.
func (n *Node) Pos() lexer.Pos {
	return n.pos
}

// Value returns the value of a literal or identifier: uint32 for numeric
// nodes, string for the others. Calls and empty nodes have no value.
func (n *Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	return n.v.Value()
}

// Name returns the name of a call expression
func (n *Node) Name() string {
	return n.name
}

// Arguments returns the arguments of a call expression
func (n *Node) Arguments() []*Node {
	return n.args
}

// IsValue returns true if the node is a literal or an identifier
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsCall returns true if the node is a call expression
func (n *Node) IsCall() bool {
	return n.nt&nodeTypeVector > 0
}

// IsEmpty returns true for the empty marker
func (n *Node) IsEmpty() bool {
	return n.Type() == NodeTypeEmpty
}

// Depth returns how many call expressions are nested in the node, counting
// itself.
func (n *Node) Depth() int {
	if !n.IsCall() {
		return 0
	}
	deepest := 0
	for _, arg := range n.args {
		if d := arg.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

func (n Node) String() string {
	switch nt := n.Type(); nt {
	case NodeTypeCall:
		return fmt.Sprintf("(%v %s)[%d]", nt, n.name, len(n.args))
	case NodeTypeEmpty:
		return fmt.Sprintf("(%v)", nt)
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.Value())
}

// Equal compares two trees by shape and values, positions are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() || a.name != b.name || a.Value() != b.Value() {
		return false
	}
	if len(a.args) != len(b.args) {
		return false
	}
	for i := range a.args {
		if !Equal(a.args[i], b.args[i]) {
			return false
		}
	}
	return true
}
