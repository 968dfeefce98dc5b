// Package yamlsource builds an ast.Node tree from YAML document bytes,
// using goccy/go-yaml's position-carrying parse tree so every resulting
// node keeps an accurate byte offset. The YAML "<<" merge key is kept
// as an ordinary object property here — its splicing semantics belong
// to the validate package (see spec §4.5), not to parsing.
package yamlsource

import (
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	goyamlast "github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/kaptinlin/astschema/ast"
)

// Parse builds an ast.Node tree for the first document in src.
func Parse(src []byte) (*ast.Node, error) {
	file, err := parser.ParseBytes(src, 0)
	if err != nil {
		return nil, fmt.Errorf("yamlsource: parsing YAML: %w", err)
	}
	if len(file.Docs) == 0 {
		return &ast.Node{Kind: ast.KindNull}, nil
	}
	body := file.Docs[0].Body
	if body == nil {
		return &ast.Node{Kind: ast.KindNull}, nil
	}
	return convert(body, nil), nil
}

func convert(n goyamlast.Node, parent *ast.Node) *ast.Node {
	if n == nil {
		return &ast.Node{Kind: ast.KindNull, Parent: parent}
	}

	offset, length := span(n)

	switch v := n.(type) {
	case *goyamlast.NullNode:
		return &ast.Node{Kind: ast.KindNull, Offset: offset, Length: length, Parent: parent}
	case *goyamlast.BoolNode:
		return &ast.Node{Kind: ast.KindBoolean, Offset: offset, Length: length, BoolValue: v.Value, Parent: parent}
	case *goyamlast.IntegerNode:
		return &ast.Node{Kind: ast.KindNumber, Offset: offset, Length: length, NumberValue: toFloat(v.Value), IsInteger: true, Parent: parent}
	case *goyamlast.FloatNode:
		return &ast.Node{Kind: ast.KindNumber, Offset: offset, Length: length, NumberValue: v.Value, IsInteger: false, Parent: parent}
	case *goyamlast.StringNode:
		return &ast.Node{Kind: ast.KindString, Offset: offset, Length: length, StringValue: v.Value, Parent: parent}
	case *goyamlast.LiteralNode:
		return &ast.Node{Kind: ast.KindString, Offset: offset, Length: length, StringValue: v.String(), Parent: parent}
	case *goyamlast.SequenceNode:
		arr := &ast.Node{Kind: ast.KindArray, Offset: offset, Length: length, Parent: parent}
		arr.Items = make([]*ast.Node, len(v.Values))
		for i, item := range v.Values {
			arr.Items[i] = convert(item, arr)
		}
		return arr
	case *goyamlast.MappingNode:
		return convertMapping(v, parent, offset, length)
	case *goyamlast.MappingValueNode:
		// A lone mapping entry at the document root: treat as a
		// single-property object.
		obj := &ast.Node{Kind: ast.KindObject, Offset: offset, Length: length, Parent: parent}
		obj.Properties = []*ast.Node{convertMappingValue(v, obj)}
		return obj
	case *goyamlast.DocumentNode:
		return convert(v.Body, parent)
	case *goyamlast.TagNode:
		return convert(v.Value, parent)
	case *goyamlast.AnchorNode:
		return convert(v.Value, parent)
	case *goyamlast.AliasNode:
		return convert(v.Value, parent)
	default:
		// Unrecognized node kind (comment, directive, etc.): surface as
		// null rather than fail the whole parse.
		return &ast.Node{Kind: ast.KindNull, Offset: offset, Length: length, Parent: parent}
	}
}

func convertMapping(v *goyamlast.MappingNode, parent *ast.Node, offset, length uint32) *ast.Node {
	obj := &ast.Node{Kind: ast.KindObject, Offset: offset, Length: length, Parent: parent}
	obj.Properties = make([]*ast.Node, len(v.Values))
	for i, entry := range v.Values {
		obj.Properties[i] = convertMappingValue(entry, obj)
	}
	return obj
}

func convertMappingValue(v *goyamlast.MappingValueNode, parent *ast.Node) *ast.Node {
	offset, length := span(v)
	prop := &ast.Node{Kind: ast.KindProperty, Offset: offset, Length: length, Parent: parent, ColonOffset: -1}

	keyNode := convert(v.Key, prop)
	keyNode.Kind = ast.KindString
	if keyNode.StringValue == "" {
		if s, ok := v.Key.(*goyamlast.StringNode); ok {
			keyNode.StringValue = s.Value
		}
	}
	prop.Key = keyNode

	if v.Value != nil {
		prop.Value = convert(v.Value, prop)
	}
	return prop
}

// span extracts the byte offset and length of n's source span from
// the token goccy/go-yaml attaches to every node. Container nodes
// (mappings, sequences) report the span of their opening token only if
// GetToken doesn't cover the whole block; callers needing a tighter
// bound recompute End() from children where that matters.
func span(n goyamlast.Node) (offset, length uint32) {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return 0, 0
	}
	start := uint32(tok.Position.Offset)
	raw := tok.Value
	if raw == "" {
		raw = n.String()
	}
	return start, uint32(len([]byte(raw)))
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

// MarshalBack encodes v as YAML with goccy/go-yaml, a small convenience
// for echoing a decoded value back out (e.g. for round-trip debugging);
// nothing else in this module calls it, and it is not part of the core
// AST contract.
func MarshalBack(v any) ([]byte, error) {
	return goyaml.Marshal(v)
}
