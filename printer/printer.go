package printer

import (
	"io"
	"strings"

	"github.com/xiam/sexprfmt/ast"
)

var quantifiers = []string{"forall", "exists"}

const spaces = "                                "

// formatContext is passed by value down the tree, only depth changes.
type formatContext struct {
	depth int
	cfg   *Config
}

func (fc formatContext) withDepth(depth int) formatContext {
	fc.depth = depth
	return fc
}

// output writes straight to the underlying writer and stops at the first
// error.
type output struct {
	w io.Writer
}

func (o output) str(s string) error {
	_, err := io.WriteString(o.w, s)
	return err
}

func (o output) newline(depth int) error {
	if err := o.str("\n"); err != nil {
		return err
	}
	for depth > 0 {
		n := depth
		if n > len(spaces) {
			n = len(spaces)
		}
		if err := o.str(spaces[:n]); err != nil {
			return err
		}
		depth -= n
	}
	return nil
}

// Fprint writes the formatted representation of n to w. Output is written
// as it is produced; the first write error aborts printing and is returned
// as is. A nil node produces no output.
func Fprint(w io.Writer, n *ast.Node, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	fc := formatContext{depth: cfg.BaseIndent, cfg: &cfg}
	return format(output{w: w}, n, fc)
}

// Sprint returns the formatted representation of n.
func Sprint(n *ast.Node, cfg Config) (string, error) {
	var sb strings.Builder
	if err := Fprint(&sb, n, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func format(o output, n *ast.Node, fc formatContext) error {
	if n.IsAtom() {
		return o.str(n.Text())
	}

	multiline := n.Complexity() > fc.cfg.ComplexityThreshold
	argContext := fc
	if multiline {
		argContext = fc.withDepth(fc.depth + IndentStep)
	}

	if err := o.str("("); err != nil {
		return err
	}
	if err := format(o, n.Head(), fc); err != nil {
		return err
	}

	for i, arg := range n.Args() {
		var err error
		if breakBefore(n, i, arg, multiline, fc.cfg) {
			err = o.newline(argContext.depth)
		} else {
			err = o.str(" ")
		}
		if err != nil {
			return err
		}
		if err := format(o, arg, argContext); err != nil {
			return err
		}
	}

	if multiline && fc.cfg.Style == StyleBlock {
		if err := o.newline(fc.depth); err != nil {
			return err
		}
	}
	return o.str(")")
}

// breakBefore decides whether the i-th argument of n starts a new line.
func breakBefore(n *ast.Node, i int, arg *ast.Node, multiline bool, cfg *Config) bool {
	if !multiline {
		return false
	}
	if i == 0 && cfg.ShortQuantifiers && n.HeadIs(quantifiers...) {
		return false
	}
	if cfg.Style == StyleHanging {
		return arg.Complexity() > cfg.ComplexityThreshold
	}
	return true
}
