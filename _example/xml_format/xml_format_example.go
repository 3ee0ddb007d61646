package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsCall() {
		fmt.Printf("%s<%s name=%q>\n", indent, node.Type(), node.Name())
		children := node.Arguments()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Value(), node.Type())
}

func main() {
	input := `(add 2 3 (subtract 4 2) (print "Hello world!" done))`

	root, err := parser.ParseBytes([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseBytes:", err)
	}

	printTree(root)
}
