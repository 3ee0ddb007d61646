package main

import (
	"fmt"
	"log"

	"github.com/xiam/callexpr/lexer"
)

func main() {
	input := `
		(add 2 3
			(subtract 4 2)
			(print "Hello world!")
		)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		pos := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, pos.Line, pos.Column, lexeme)
	}
}
