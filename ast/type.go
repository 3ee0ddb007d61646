package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNumeric    = nodeTypeValue | 1
	NodeTypeString     = nodeTypeValue | 2
	NodeTypeIdentifier = nodeTypeValue | 4

	NodeTypeCall = nodeTypeVector | 1

	NodeTypeEmpty NodeType = 512
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumeric:    "numeric",
	NodeTypeString:     "string",
	NodeTypeIdentifier: "identifier",
	NodeTypeCall:       "call",
	NodeTypeEmpty:      "empty",
}
