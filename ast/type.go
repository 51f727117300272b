package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	NodeTypeInvalid NodeType = iota
	NodeTypeAtom
	NodeTypeCompound
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeAtom:     "atom",
	NodeTypeCompound: "compound",
}
