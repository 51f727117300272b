package ast

import (
	"fmt"

	"github.com/xiam/sexprfmt/lexer"
)

// Node represents a leaf or a branch of the AST. A node is either an atom
// or a compound made of a head and zero or more arguments. Nodes are
// immutable once built.
type Node struct {
	nt  NodeType
	tok *lexer.Token

	text string

	head *Node
	args []*Node

	complexity int
}

// NewAtom creates and returns an atom node. The text must not be empty.
func NewAtom(tok *lexer.Token, text string) *Node {
	return &Node{
		nt:   NodeTypeAtom,
		tok:  tok,
		text: text,
	}
}

// NewCompound creates and returns a compound node, computing its
// complexity from the given head and arguments.
func NewCompound(tok *lexer.Token, head *Node, args ...*Node) *Node {
	complexity := head.complexity
	for _, arg := range args {
		if arg.complexity > complexity {
			complexity = arg.complexity
		}
	}
	return &Node{
		nt:         NodeTypeCompound,
		tok:        tok,
		head:       head,
		args:       args,
		complexity: complexity + 1,
	}
}

// Token returns the token associated to the node. For a compound this is
// its opening parenthesis.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Text returns the text of an atom, or an empty string for a compound.
func (n *Node) Text() string {
	return n.text
}

// Head returns the head of a compound, nil for an atom.
func (n *Node) Head() *Node {
	return n.head
}

// Args returns the arguments of a compound.
func (n *Node) Args() []*Node {
	return n.args
}

// Complexity returns the nesting depth of the subtree: zero for atoms, one
// plus the largest complexity of the head and arguments for compounds.
func (n *Node) Complexity() int {
	return n.complexity
}

// IsAtom returns true if the node is an atom
func (n *Node) IsAtom() bool {
	return n.nt == NodeTypeAtom
}

// IsCompound returns true if the node is a compound
func (n *Node) IsCompound() bool {
	return n.nt == NodeTypeCompound
}

// HeadIs returns true if the node is a compound whose head is one of the
// given atoms.
func (n *Node) HeadIs(names ...string) bool {
	if !n.IsCompound() || !n.head.IsAtom() {
		return false
	}
	for _, name := range names {
		if n.head.text == name {
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	if n.IsCompound() {
		return fmt.Sprintf("(%v)[%d]<%d>", n.nt, len(n.args), n.complexity)
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.text)
}
