package ast

import (
	"fmt"
	"io"
	"strings"
)

// Colors decorates the output of Fprint. Any nil field leaves that part of
// the output as is.
type Colors struct {
	Type       func(string, ...interface{}) string
	Atom       func(string, ...interface{}) string
	Complexity func(string, ...interface{}) string
}

func paint(f func(string, ...interface{}) string, format string, args ...interface{}) string {
	if f == nil {
		return fmt.Sprintf(format, args...)
	}
	return f(format, args...)
}

// Fprint writes a human-readable representation of a node to w, one node
// per line with children indented under their parent.
func Fprint(w io.Writer, n *Node, colors *Colors) error {
	if colors == nil {
		colors = &Colors{}
	}
	return printLevel(w, n, colors, 0)
}

func printLevel(w io.Writer, n *Node, c *Colors, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}

	switch n.Type() {
	case NodeTypeCompound:
		_, err := fmt.Fprintf(w, "%s(%s) %s\n", indent,
			paint(c.Type, "%s", n.Type()),
			paint(c.Complexity, "complexity=%d", n.Complexity()))
		if err != nil {
			return err
		}
		if err := printLevel(w, n.Head(), c, level+1); err != nil {
			return err
		}
		for _, arg := range n.Args() {
			if err := printLevel(w, arg, c, level+1); err != nil {
				return err
			}
		}
		return nil

	case NodeTypeAtom:
		_, err := fmt.Fprintf(w, "%s(%s): %s (%v)\n", indent,
			paint(c.Type, "%s", n.Type()),
			paint(c.Atom, "%q", n.Text()),
			n.Token())
		return err
	}

	panic("unknown node type")
}

// Encode transforms a node into its most compact text representation,
// everything on a single line.
func Encode(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n)
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case NodeTypeCompound:
		sb.WriteByte('(')
		encodeNode(sb, n.Head())
		for _, arg := range n.Args() {
			sb.WriteByte(' ')
			encodeNode(sb, arg)
		}
		sb.WriteByte(')')

	case NodeTypeAtom:
		sb.WriteString(n.Text())

	default:
		panic("unknown node type")
	}
}
