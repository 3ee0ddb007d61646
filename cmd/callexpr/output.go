package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"gopkg.in/yaml.v3"
)

// output formats
const (
	formatText  = "text"
	formatSexpr = "sexpr"
	formatTree  = "tree"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatDump  = "dump"
)

var (
	tokenFormats = map[string]bool{
		formatText: true,
		formatJSON: true,
		formatYAML: true,
		formatDump: true,
	}
	nodeFormats = map[string]bool{
		formatSexpr: true,
		formatTree:  true,
		formatJSON:  true,
		formatYAML:  true,
		formatDump:  true,
	}
)

func formatNames(formats map[string]bool) string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func checkFormat(formats map[string]bool, format string) error {
	if !formats[format] {
		return fmt.Errorf("unknown format %q, expecting one of: %s", format, formatNames(formats))
	}
	return nil
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

type tokenDocument struct {
	Type   string  `json:"type" yaml:"type"`
	Text   string  `json:"text" yaml:"text"`
	Value  *uint32 `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int     `json:"line" yaml:"line"`
	Column int     `json:"column" yaml:"column"`
}

func tokenDocuments(tokens []lexer.Token) []tokenDocument {
	docs := make([]tokenDocument, 0, len(tokens))
	for _, tok := range tokens {
		doc := tokenDocument{
			Type:   tok.Type().String(),
			Text:   tok.Text(),
			Line:   tok.Pos().Line,
			Column: tok.Pos().Column,
		}
		if tok.Is(lexer.TokenNumber) {
			v := tok.Number()
			doc.Value = &v
		}
		docs = append(docs, doc)
	}
	return docs
}

func writeTokens(w io.Writer, format string, tokens []lexer.Token) error {
	switch format {
	case formatText:
		for _, tok := range tokens {
			if _, err := fmt.Fprintf(w, "%s\t%-12v %q\n", tok.Pos(), tok.Type(), tok.Text()); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		return writeJSON(w, tokenDocuments(tokens))
	case formatYAML:
		return writeYAML(w, tokenDocuments(tokens))
	case formatDump:
		dumper.Fdump(w, tokenDocuments(tokens))
		return nil
	}
	return checkFormat(tokenFormats, format)
}

func writeNode(w io.Writer, format string, root *ast.Node) error {
	switch format {
	case formatSexpr:
		_, err := fmt.Fprintf(w, "%s\n", ast.Encode(root))
		return err
	case formatTree:
		ast.Fprint(w, root)
		return nil
	case formatJSON:
		return writeJSON(w, root)
	case formatYAML:
		return writeYAML(w, root)
	case formatDump:
		dumper.Fdump(w, root)
		return nil
	}
	return checkFormat(nodeFormats, format)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
