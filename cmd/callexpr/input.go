package main

import (
	"bytes"
	"io"
	"os"

	"github.com/xiam/callexpr"
	"github.com/xiam/callexpr/internal/diag"
)

const stdinName = "<stdin>"

// input is one source named on the command line.
type input struct {
	name    string
	content []byte
}

func (in *input) reader(c *command) *callexpr.Reader {
	r := callexpr.NewReader(bytes.NewReader(in.content))
	r.SetOptions(c.cfg.Options())
	return r
}

func (in *input) source() *diag.Source {
	return diag.NewSource(in.name, in.content)
}

// readInputs reads every named file. No names, or a "-", stand for standard
// input.
func (c *command) readInputs(names []string) ([]*input, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	inputs := make([]*input, 0, len(names))
	for _, name := range names {
		var (
			content []byte
			err     error
		)
		if name == "-" {
			name = stdinName
			content, err = io.ReadAll(c.stdin)
		} else {
			content, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, &input{name: name, content: content})
	}
	return inputs, nil
}
