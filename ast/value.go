package ast

import (
	"fmt"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeNumeric:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeIdentifier:
		return n.v.(string)
	case NodeTypeString:
		// strings have no escape sequences, so the raw text is written back
		// between quotes
		return `"` + n.v.(string) + `"`
	}

	panic("unreachable")
}

// NewNumericValue creates a value of type numeric and sets it to the given
// value
func NewNumericValue(v uint32) Valuer {
	return newNodeValue(NodeTypeNumeric, v)
}

// NewStringValue creates a value of type string and sets it to the given value
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewIdentifierValue creates a value of type identifier and sets it to the
// given name
func NewIdentifierValue(v string) Valuer {
	return newNodeValue(NodeTypeIdentifier, v)
}

var _ = Valuer(&nodeValue{})
