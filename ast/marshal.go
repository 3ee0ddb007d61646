package ast

import (
	"encoding/json"
)

type document struct {
	Type      string      `json:"type" yaml:"type"`
	Value     interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Arguments []*Node     `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Line      int         `json:"line,omitempty" yaml:"line,omitempty"`
	Column    int         `json:"column,omitempty" yaml:"column,omitempty"`
}

func (n *Node) document() document {
	return document{
		Type:      n.Type().String(),
		Value:     n.Value(),
		Name:      n.Name(),
		Arguments: n.Arguments(),
		Line:      n.Pos().Line,
		Column:    n.Pos().Column,
	}
}

// MarshalJSON implements json.Marshaler
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.document())
}

// MarshalYAML implements yaml.Marshaler
func (n *Node) MarshalYAML() (interface{}, error) {
	return n.document(), nil
}
