package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeCall:
		fmt.Fprintf(w, "%s [%v]\n", n.Name(), n.Pos())
		list := n.Arguments()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeNumeric, NodeTypeString, NodeTypeIdentifier:
		fmt.Fprintf(w, "%#v [%v]\n", n.Value(), n.Pos())

	case NodeTypeEmpty:
		fmt.Fprintf(w, "\n")

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation. Empty nodes have no
// text and are left out. Trees produced by the parser encode to text that
// parses back into an equal tree; a string holding a double quote can't be
// written back since strings have no escape sequences.
func Encode(n *Node) []byte {
	return []byte(encodeNode(n))
}

func encodeNode(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case NodeTypeCall:
		nodes := []string{n.Name()}
		for _, arg := range n.Arguments() {
			if s := encodeNode(arg); s != "" {
				nodes = append(nodes, s)
			}
		}
		return fmt.Sprintf("(%s)", strings.Join(nodes, " "))

	case NodeTypeNumeric, NodeTypeString, NodeTypeIdentifier:
		return n.v.Encode()

	case NodeTypeEmpty:
		return ""

	default:
		panic("unknown node type")
	}
}
