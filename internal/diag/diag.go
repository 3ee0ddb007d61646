// Package diag prints positioned lexer and parser errors along with the line
// of source they point to.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/xiam/callexpr/lexer"
)

// Severity of a diagnostic
type Severity uint8

// Severities
const (
	Error Severity = iota
	Warning
)

var severityNames = map[Severity]string{
	Error:   "error",
	Warning: "warning",
}

func (s Severity) String() string {
	return severityNames[s]
}

var severityColors = map[Severity]*color.Color{
	Error:   color.New(color.FgRed, color.Bold),
	Warning: color.New(color.FgYellow, color.Bold),
}

var (
	locationColor = color.New(color.Bold)
	caretColor    = color.New(color.FgGreen, color.Bold)
)

type positioned interface {
	error
	Pos() lexer.Pos
}

// Source is a named input whose lines are used to point at errors.
type Source struct {
	Name  string
	Lines []string
}

// NewSource splits content into lines.
func NewSource(name string, content []byte) *Source {
	return &Source{
		Name:  name,
		Lines: strings.Split(string(content), "\n"),
	}
}

// Fprint writes every error in err to w. Errors aggregated with go-multierror
// are printed one by one.
func (s *Source) Fprint(w io.Writer, severity Severity, err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			s.Fprint(w, severity, e)
		}
		return
	}
	s.fprint(w, severity, err)
}

func (s *Source) fprint(w io.Writer, severity Severity, err error) {
	var perr positioned
	if !errors.As(err, &perr) {
		locationColor.Fprintf(w, "%s: ", s.Name)
		severityColors[severity].Fprintf(w, "%v: ", severity)
		fmt.Fprintf(w, "%v\n", err)
		return
	}

	pos := perr.Pos()
	message := strings.TrimPrefix(perr.Error(), pos.String()+": ")

	if !pos.IsValid() {
		locationColor.Fprintf(w, "%s: ", s.Name)
		severityColors[severity].Fprintf(w, "%v: ", severity)
		fmt.Fprintf(w, "%s\n", message)
		return
	}

	locationColor.Fprintf(w, "%s:%d:%d: ", s.Name, pos.Line, pos.Column)
	severityColors[severity].Fprintf(w, "%v: ", severity)
	fmt.Fprintf(w, "%s\n", message)

	idx := pos.Line - 1
	if idx < 0 || idx >= len(s.Lines) {
		return
	}

	line := strings.TrimSuffix(s.Lines[idx], "\r")
	fmt.Fprintf(w, "%s\n", line)

	var sb strings.Builder
	for i, r := range []rune(line) {
		if i >= pos.Column-1 {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runeWidth(r)))
	}
	fmt.Fprint(w, sb.String())
	caretColor.Fprintln(w, "^")
}

// runeWidth returns the number of terminal cells used by r.
func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6) ||
			(r >= 0x1f300 && r <= 0x1f64f) ||
			(r >= 0x1f900 && r <= 0x1f9ff)) {
		return 2
	}
	return 1
}
