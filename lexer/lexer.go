package lexer

import (
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

const eof = -1

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(in []byte) *Lexer {
	return &Lexer{
		in: in,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in   []byte
	opts Options

	tokens   []Token
	warnings *multierror.Error
	lastErr  error

	start Pos
	pos   Pos
}

// SetOptions replaces the lexer options.
func (lx *Lexer) SetOptions(opts Options) {
	lx.opts = opts
}

// Tokenize scans the whole input and returns its tokens in source order. If
// an error is found the tokens produced before it are returned along with the
// error.
func (lx *Lexer) Tokenize() ([]Token, error) {
	lx.reset()

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	return lx.tokens, lx.lastErr
}

// Warnings returns the problems that were found and skipped during the last
// call to Tokenize, or nil.
func (lx *Lexer) Warnings() error {
	return lx.warnings.ErrorOrNil()
}

func (lx *Lexer) reset() {
	lx.tokens = []Token{}
	lx.warnings = nil
	lx.lastErr = nil

	lx.pos = Pos{Offset: 0, Line: 1, Column: 1}
	lx.start = lx.pos
}

func (lx *Lexer) text() string {
	return string(lx.in[lx.start.Offset:lx.pos.Offset])
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitToken(NewToken(tt, lx.text(), lx.start))
}

func (lx *Lexer) emitToken(tok Token) {
	lx.tokens = append(lx.tokens, tok)
	lx.ignore()
}

func (lx *Lexer) ignore() {
	lx.start = lx.pos
}

func (lx *Lexer) peek() rune {
	if lx.pos.Offset >= len(lx.in) {
		return eof
	}
	r, _ := utf8.DecodeRune(lx.in[lx.pos.Offset:])
	return r
}

func (lx *Lexer) next() (rune, error) {
	if lx.pos.Offset >= len(lx.in) {
		return rune(0), io.EOF
	}

	r, w := utf8.DecodeRune(lx.in[lx.pos.Offset:])
	lx.pos.Offset += w

	if r == '\n' {
		lx.pos.Line++
		lx.pos.Column = 1
	} else {
		lx.pos.Column++
	}
	return r, nil
}

func (lx *Lexer) collect(fn func(rune) bool) {
	for fn(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return
		}
	}
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case IsParenthesis(r):
		return lexEmit(TokenParenthesis)
	case IsWhitespace(r):
		return lexWhitespace
	case IsDigit(r):
		return lexNumber
	case IsQuote(r):
		return lexString
	case IsLetter(r):
		return lexCollectStream(TokenName, IsLetter)
	default:
		return lexUnrecognized
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, fn func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		lx.collect(fn)
		return lexEmit(tt)
	}
}

func lexWhitespace(lx *Lexer) lexState {
	lx.ignore()
	return lexDefaultState
}

func lexNumber(lx *Lexer) lexState {
	lx.collect(IsDigit)

	text := lx.text()
	v, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return lexStateError(newError(ErrNumericOverflow, lx.start, text))
	}

	lx.emitToken(NewNumberToken(text, uint32(v), lx.start))
	return lexDefaultState
}

func lexString(lx *Lexer) lexState {
	from := lx.pos.Offset
	for {
		r, err := lx.next()
		if err == io.EOF {
			if lx.opts.AllowUnterminatedString {
				return nil
			}
			return lexStateError(newError(ErrUnterminatedString, lx.start, string(lx.in[from:lx.pos.Offset])))
		}
		if IsQuote(r) {
			break
		}
	}

	text := string(lx.in[from : lx.pos.Offset-1])
	lx.emitToken(NewToken(TokenString, text, lx.start))
	return lexDefaultState
}

func lexUnrecognized(lx *Lexer) lexState {
	switch lx.opts.Unrecognized {
	case RejectUnrecognized:
		return lexStateError(newError(ErrUnrecognizedCharacter, lx.start, lx.text()))
	case WarnUnrecognized:
		lx.warnings = multierror.Append(lx.warnings, newError(ErrUnrecognizedCharacter, lx.start, lx.text()))
	}
	lx.ignore()
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it using
// the default options.
func Tokenize(in []byte) ([]Token, error) {
	return New(in).Tokenize()
}
