package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenSummary struct {
	tt   TokenType
	text string
}

func summarize(tokens []Token) []tokenSummary {
	ret := make([]tokenSummary, 0, len(tokens))
	for i := range tokens {
		ret = append(ret, tokenSummary{tokens[i].Type(), tokens[i].Text()})
	}
	return ret
}

func TestScanner(t *testing.T) {
	testCases := []string{
		`1`,

		`(add 1 1 1 1)`,

		`(foo a b cdef "ghi")`,

		`(foo
			a b
			cdef
			"g
			hi"
		)`,

		`(set foo (add 3 3))`,

		`(log "hello world!" "brave new " world)`,

		`(fn "😊")`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))
		t.Logf("tokens: %v", tokens)

		assert.NotNil(t, tokens)
		assert.NoError(t, err)
	}
}

func TestTokenize(t *testing.T) {
	open := tokenSummary{TokenParenthesis, "("}
	close := tokenSummary{TokenParenthesis, ")"}

	testCases := []struct {
		In  string
		Out []tokenSummary
	}{
		{
			"",
			[]tokenSummary{},
		},
		{
			"              ",
			[]tokenSummary{},
		},
		{
			"\t\n\r\f ",
			[]tokenSummary{},
		},
		{
			"()",
			[]tokenSummary{open, close},
		},
		{
			"5",
			[]tokenSummary{{TokenNumber, "5"}},
		},
		{
			"(1 2)",
			[]tokenSummary{open, {TokenNumber, "1"}, {TokenNumber, "2"}, close},
		},
		{
			"(a b)",
			[]tokenSummary{open, {TokenName, "a"}, {TokenName, "b"}, close},
		},
		{
			"(11 22)",
			[]tokenSummary{open, {TokenNumber, "11"}, {TokenNumber, "22"}, close},
		},
		{
			"(add 2 3)",
			[]tokenSummary{open, {TokenName, "add"}, {TokenNumber, "2"}, {TokenNumber, "3"}, close},
		},
		{
			"   (add   2 3)",
			[]tokenSummary{open, {TokenName, "add"}, {TokenNumber, "2"}, {TokenNumber, "3"}, close},
		},
		{
			`(log "hello" "world")`,
			[]tokenSummary{open, {TokenName, "log"}, {TokenString, "hello"}, {TokenString, "world"}, close},
		},
		{
			`""`,
			[]tokenSummary{{TokenString, ""}},
		},
		{
			`"a (b) 12 \n"`,
			[]tokenSummary{{TokenString, `a (b) 12 \n`}},
		},
		{
			"abc123def",
			[]tokenSummary{{TokenName, "abc"}, {TokenNumber, "123"}, {TokenName, "def"}},
		},
		{
			"a_b",
			[]tokenSummary{{TokenName, "a"}, {TokenName, "b"}},
		},
		{
			"((()))",
			[]tokenSummary{open, open, open, close, close, close},
		},
		{
			"4294967295",
			[]tokenSummary{{TokenNumber, "4294967295"}},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Out, summarize(tokens), "input: %q", testCases[i].In)
	}
}

func TestNumberValues(t *testing.T) {
	tokens, err := Tokenize([]byte("(0 7 42 007 4294967295)"))
	require.NoError(t, err)
	require.Len(t, tokens, 7)

	values := []uint32{}
	for _, tok := range tokens {
		if tok.Is(TokenNumber) {
			values = append(values, tok.Number())
		}
	}
	assert.Equal(t, []uint32{0, 7, 42, 7, 4294967295}, values)
}

func TestColumnAndLines(t *testing.T) {
	testCases := []struct {
		In  string
		Pos [][2]int
	}{
		{
			"",
			[][2]int{},
		},
		{
			"1",
			[][2]int{
				{1, 1},
			},
		},
		{
			"(add 2 3)",
			[][2]int{
				{1, 1}, {1, 2}, {1, 6}, {1, 8}, {1, 9},
			},
		},
		{
			"\n\n\nABCDF efgh\n",
			[][2]int{
				{4, 1}, {4, 7},
			},
		},
		{
			"1\n\n\t\t23456",
			[][2]int{
				{1, 1},
				{3, 3},
			},
		},
		{
			"(log\n  \"two\nlines\" x)",
			[][2]int{
				{1, 1}, {1, 2},
				{2, 3},
				{3, 8}, {3, 9},
			},
		},
		{
			"\"😊\" a",
			[][2]int{
				{1, 1}, {1, 5},
			},
		},
	}

	getTokenPositions := func(tokens []Token) [][2]int {
		ret := make([][2]int, 0, len(tokens))
		for i := range tokens {
			pos := tokens[i].Pos()
			ret = append(ret, [2]int{pos.Line, pos.Column})
		}
		return ret
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NotNil(t, tokens)
		assert.NoError(t, err)

		assert.Equal(t, testCases[i].Pos, getTokenPositions(tokens), "input: %q", testCases[i].In)
	}
}

func TestOffsets(t *testing.T) {
	tokens, err := Tokenize([]byte("é (ab \"x\")"))
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Pos{Offset: 3, Line: 1, Column: 3}, tokens[0].Pos())
	assert.Equal(t, Pos{Offset: 4, Line: 1, Column: 4}, tokens[1].Pos())
	assert.Equal(t, Pos{Offset: 7, Line: 1, Column: 7}, tokens[2].Pos())
	assert.Equal(t, Pos{Offset: 10, Line: 1, Column: 10}, tokens[3].Pos())

	for _, tok := range tokens {
		assert.True(t, tok.Pos().IsValid())
	}
	assert.False(t, Pos{}.IsValid())
	assert.False(t, Token{}.Pos().IsValid())
}

func TestLexerErrors(t *testing.T) {
	testCases := []struct {
		In     string
		Err    error
		Pos    Pos
		Text   string
		Tokens int
	}{
		{
			In:     "4294967296",
			Err:    ErrNumericOverflow,
			Pos:    Pos{Offset: 0, Line: 1, Column: 1},
			Text:   "4294967296",
			Tokens: 0,
		},
		{
			In:     "(add 1 99999999999999999999)",
			Err:    ErrNumericOverflow,
			Pos:    Pos{Offset: 7, Line: 1, Column: 8},
			Text:   "99999999999999999999",
			Tokens: 3,
		},
		{
			In:     `(log "hello`,
			Err:    ErrUnterminatedString,
			Pos:    Pos{Offset: 5, Line: 1, Column: 6},
			Text:   "hello",
			Tokens: 2,
		},
		{
			In:     `"`,
			Err:    ErrUnterminatedString,
			Pos:    Pos{Offset: 0, Line: 1, Column: 1},
			Text:   "",
			Tokens: 0,
		},
	}

	for _, tc := range testCases {
		tokens, err := Tokenize([]byte(tc.In))
		require.Error(t, err, "input: %q", tc.In)

		assert.True(t, errors.Is(err, tc.Err), "input: %q, err: %v", tc.In, err)

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, tc.Pos, lexErr.Pos())
		assert.Equal(t, tc.Text, lexErr.Text)

		assert.Len(t, tokens, tc.Tokens)
	}
}

func TestUnterminatedStringTruncates(t *testing.T) {
	lx := New([]byte(`(log "hello" "wor`))
	lx.SetOptions(Options{AllowUnterminatedString: true})

	tokens, err := lx.Tokenize()
	assert.NoError(t, err)
	assert.Equal(t, []tokenSummary{
		{TokenParenthesis, "("},
		{TokenName, "log"},
		{TokenString, "hello"},
	}, summarize(tokens))
}

func TestUnrecognizedCharacters(t *testing.T) {
	in := []byte("(add + 1 é 2)")
	expected := []tokenSummary{
		{TokenParenthesis, "("},
		{TokenName, "add"},
		{TokenNumber, "1"},
		{TokenNumber, "2"},
		{TokenParenthesis, ")"},
	}

	{
		lx := New(in)

		tokens, err := lx.Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, expected, summarize(tokens))

		warnings := lx.Warnings()
		require.Error(t, warnings)
		assert.True(t, errors.Is(warnings, ErrUnrecognizedCharacter))
		assert.Contains(t, warnings.Error(), `1:6: unrecognized character "+"`)
		assert.Contains(t, warnings.Error(), `1:10: unrecognized character "é"`)
	}

	{
		lx := New(in)
		lx.SetOptions(Options{Unrecognized: SkipUnrecognized})

		tokens, err := lx.Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, expected, summarize(tokens))
		assert.NoError(t, lx.Warnings())
	}

	{
		lx := New(in)
		lx.SetOptions(Options{Unrecognized: RejectUnrecognized})

		tokens, err := lx.Tokenize()
		assert.True(t, errors.Is(err, ErrUnrecognizedCharacter))
		assert.Equal(t, expected[:2], summarize(tokens))

		var lexErr *Error
		require.True(t, errors.As(err, &lexErr))
		assert.Equal(t, Pos{Offset: 5, Line: 1, Column: 6}, lexErr.Pos())
	}
}

func TestInvalidEncoding(t *testing.T) {
	lx := New([]byte{'(', 'a', 0xff, 'b', ')'})
	lx.SetOptions(Options{Unrecognized: RejectUnrecognized})

	_, err := lx.Tokenize()
	assert.True(t, errors.Is(err, ErrUnrecognizedCharacter))
}

func TestDeterministic(t *testing.T) {
	in := []byte(`(add 2 3 (subtract 4 2) "x" % y)`)

	lx := New(in)
	first, err := lx.Tokenize()
	require.NoError(t, err)
	firstWarnings := lx.Warnings()

	second, err := lx.Tokenize()
	require.NoError(t, err)

	third, err := Tokenize(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, firstWarnings, lx.Warnings())
}

func TestPolicyText(t *testing.T) {
	for _, name := range []string{"warn", "skip", "reject"} {
		var p Policy
		require.NoError(t, p.UnmarshalText([]byte(name)))
		assert.Equal(t, name, p.String())

		text, err := p.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))
	}

	_, err := ParsePolicy("explode")
	assert.Error(t, err)
}
