// Package ast defines the tree-shaped document model that the validation
// engine walks. Nodes are produced by an external parser (see yamlsource
// and jsonsource) and are immutable from this package's standpoint.
package ast

// Kind identifies which of the seven node variants a Node holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindProperty
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is a single element of the parsed document tree. Only the fields
// relevant to its Kind are populated; the rest are zero.
type Node struct {
	Kind   Kind
	Offset uint32
	Length uint32
	Parent *Node // non-owning back-reference; nil at the root

	// KindBoolean
	BoolValue bool

	// KindNumber
	NumberValue float64
	IsInteger   bool

	// KindString
	StringValue string

	// KindArray
	Items []*Node

	// KindObject
	Properties []*Node // each a KindProperty node, in source order

	// KindProperty
	Key         *Node // KindString
	Value       *Node // may be nil for partial/incomplete input
	ColonOffset int32
}

// End returns the offset one past the node's span.
func (n *Node) End() uint32 {
	return n.Offset + n.Length
}

// Contains reports whether offset falls within [Offset, Offset+Length).
func (n *Node) Contains(offset uint32) bool {
	return offset >= n.Offset && offset < n.End()
}

// Type reports the JSON-Schema type name for this node's Kind, matching
// the "integer" special case (a number whose lexical form had no
// fractional part or exponent) used by the "type" keyword.
func (n *Node) Type() string {
	if n.Kind == KindNumber && n.IsInteger {
		return "integer"
	}
	return n.Kind.String()
}
