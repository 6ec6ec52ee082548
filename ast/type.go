package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeAtom = nodeTypeValue | 1
	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeAtom: "atom",
	NodeTypeList: "list",
}

// Kind is the semantic classification of an atom
type Kind uint8

// Atom kinds
const (
	KindInvalid     Kind = iota
	KindIdentifier       // Names: "square", "n"
	KindLiteral          // Integers, strings and booleans
	KindFunction         // "define"
	KindCondition        // "if"
	KindBinary           // "+", "-", "*", "/", "%", "**"
	KindUnary            // "!"
	KindLogicalInt       // Integer comparisons: "<", "<=", "==", ...
	KindLogicalBool      // Boolean connectives: "&", "|"
	KindFormat           // "format"
	KindSeparator        // ","
)

var kindNames = map[Kind]string{
	KindInvalid:     "invalid",
	KindIdentifier:  "identifier",
	KindLiteral:     "literal",
	KindFunction:    "function",
	KindCondition:   "condition",
	KindBinary:      "binary",
	KindUnary:       "unary",
	KindLogicalInt:  "logical_int",
	KindLogicalBool: "logical_bool",
	KindFormat:      "format",
	KindSeparator:   "separator",
}

func (k Kind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[KindInvalid]
}
