package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/parser"
)

func main() {
	input := `(add 2 3 (subtract 4 2) (1 2) (print "Hello world!" done)`

	r := callexpr.NewReader(strings.NewReader(input))
	r.SetOptions(callexpr.Options{
		Parser: parser.Options{
			AutoCloseOnEOF: true,
		},
	})

	root, err := r.Parse()
	if err != nil {
		log.Fatal("Reader.Parse:", err)
	}

	if warnings := r.Warnings(); warnings != nil {
		fmt.Printf("warnings: %v\n\n", warnings)
	}

	ast.Print(root)
	fmt.Printf("\n%s\n", ast.Encode(root))
}
