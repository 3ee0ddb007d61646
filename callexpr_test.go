package callexpr

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/callexpr/ast"
	"github.com/xiam/callexpr/lexer"
	"github.com/xiam/callexpr/parser"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, ``},
		{`(add 2 3)`, `(add 2 3)`},
		{`(add 2 3 (subtract 4 2))`, `(add 2 3 (subtract 4 2))`},
		{`(log "hello" "world")`, `(log "hello" "world")`},
		{"(when\n\t(eq 1 0) 11\n\t(eq 1 1) 99)", `(when (eq 1 0) 11 (eq 1 1) 99)`},
	}

	for _, tc := range testCases {
		root, err := Parse([]byte(tc.In))
		require.NoError(t, err)
		assert.Equal(t, tc.Out, string(ast.Encode(root)))
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize([]byte(`(log "hello" 12)`))
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.True(t, tokens[0].IsOpen())
	assert.Equal(t, lexer.TokenName, tokens[1].Type())
	assert.Equal(t, "hello", tokens[2].Text())
	assert.Equal(t, uint32(12), tokens[3].Number())
	assert.True(t, tokens[4].IsClose())
}

func TestTokenizePartial(t *testing.T) {
	tokens, err := Tokenize([]byte(`(log 1 "hello`))
	assert.True(t, errors.Is(err, lexer.ErrUnterminatedString))
	require.Len(t, tokens, 3)
	assert.Equal(t, "log", tokens[1].Text())
	assert.Equal(t, uint32(1), tokens[2].Number())

	r := NewReader(strings.NewReader(`(add 99999999999)`))
	tokens, err = r.Tokens()
	assert.True(t, errors.Is(err, lexer.ErrNumericOverflow))
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].IsOpen())

	root, err := r.Parse()
	assert.Nil(t, root)
	assert.True(t, errors.Is(err, lexer.ErrNumericOverflow))
}

func TestReaderOptions(t *testing.T) {
	r := NewReader(strings.NewReader(`(log % (1 2) "x" (add 1`))
	r.SetOptions(Options{
		Parser: parser.Options{
			AutoCloseOnEOF: true,
		},
	})

	root, err := r.Parse()
	require.NoError(t, err)
	assert.Equal(t, `(log "x" (add 1))`, string(ast.Encode(root)))

	warnings := r.Warnings()
	require.Error(t, warnings)
	assert.True(t, errors.Is(warnings, lexer.ErrUnrecognizedCharacter))
	assert.True(t, errors.Is(warnings, parser.ErrMalformedCall))

	// the input is read once, parsing again gives the same result
	again, err := r.Parse()
	require.NoError(t, err)
	assert.True(t, ast.Equal(root, again))
}

func TestReaderStrict(t *testing.T) {
	r := NewReader(strings.NewReader(`(log % "x")`))
	r.SetOptions(Options{
		Lexer: lexer.Options{Unrecognized: lexer.RejectUnrecognized},
	})

	root, err := r.Parse()
	assert.Nil(t, root)
	assert.True(t, errors.Is(err, lexer.ErrUnrecognizedCharacter))
}

func TestReaderError(t *testing.T) {
	r := NewReader(iotest.ErrReader(errors.New("broken pipe")))

	_, err := r.Parse()
	assert.EqualError(t, err, "broken pipe")
}
