// Package sexpr re-renders S-expressions with consistent indentation.
//
// Every compound is printed on a single line when its complexity, the
// nesting depth of its subtree, does not exceed a threshold, and broken
// across indented lines otherwise:
//
//	out, err := sexpr.FormatString("(a (b c) (d (e f)))", printer.DefaultConfig())
//
// The lexer, ast, parser and printer packages can be used on their own.
package sexpr

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/sexprfmt/ast"
	"github.com/xiam/sexprfmt/parser"
	"github.com/xiam/sexprfmt/printer"
)

// Reader parses the S-expression contained in an io.Reader.
type Reader struct {
	r io.Reader
}

// NewReader returns a Reader that consumes r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Parse reads r until EOF and parses its content as a single expression.
func (r *Reader) Parse() (*ast.Node, error) {
	in, err := io.ReadAll(r.r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return parser.Parse(string(in))
}

// Parse parses a single S-expression.
func Parse(in []byte) (*ast.Node, error) {
	return parser.Parse(string(in))
}

// Format parses in and writes its formatted representation to w. Nothing is
// written when in can't be parsed.
func Format(w io.Writer, in []byte, cfg printer.Config) error {
	root, err := Parse(in)
	if err != nil {
		return err
	}
	return printer.Fprint(w, root, cfg)
}

// FormatString returns the formatted representation of in.
func FormatString(in string, cfg printer.Config) (string, error) {
	var sb strings.Builder
	if err := Format(&sb, []byte(in), cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}
