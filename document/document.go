// Package document wraps a parsed AST root and exposes the validator's
// public surface: Validate, GetMatchingSchemas, GetNodeAtOffset, and
// Visit.
package document

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
	"github.com/kaptinlin/astschema/validate"
)

// Document wraps a parsed root node. The zero value is not usable;
// construct with New.
type Document struct {
	Root *ast.Node

	// Src is the original source bytes the tree was parsed from, kept
	// only so Offset can translate a byte offset back into a
	// line/column pair on demand; it is never consulted by Validate or
	// GetMatchingSchemas, which work purely off the AST.
	Src []byte

	// MaxDepth bounds recursion depth (AST depth plus schema
	// combinator depth). Zero selects validate.DefaultMaxDepth.
	MaxDepth int
}

// New wraps root with the default recursion ceiling and no source
// bytes (Offset will report 1:1 for every node). Use NewWithSource
// when line/column reporting is needed.
func New(root *ast.Node) *Document {
	return &Document{Root: root}
}

// NewWithSource wraps root the way New does, additionally retaining
// src so Offset can map node spans back to line/column.
func NewWithSource(root *ast.Node, src []byte) *Document {
	return &Document{Root: root, Src: src}
}

// Validate runs the engine with a no-op collector and returns only the
// resulting diagnostics, in deterministic walk order.
func (d *Document) Validate(s *schema.Schema) []result.Diagnostic {
	res := result.New()
	d.run(s, res, collector.Instance)
	return res.Problems
}

// GetMatchingSchemas runs the engine with a recording collector scoped
// to focusOffset (-1 for "every node") and exclude (nil for "exclude
// nothing"), returning the applicable-schema records. Diagnostics
// produced along the way are discarded.
func (d *Document) GetMatchingSchemas(s *schema.Schema, focusOffset int64, exclude *ast.Node) []collector.ApplicableSchema {
	res := result.New()
	coll := collector.NewRecording(focusOffset, exclude)
	d.run(s, res, coll)
	return coll.Records
}

// run is the shared driver behind Validate/GetMatchingSchemas: it
// invokes the engine and, if recursion hit the depth ceiling, replaces
// whatever partial diagnostics were produced with a single synthetic
// one at the root span rather than trust a truncated walk.
func (d *Document) run(s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if d.Root == nil || s == nil {
		return
	}
	overflowed := validate.Validate(d.Root, s, res, coll, d.MaxDepth)
	if overflowed {
		res.Problems = []result.Diagnostic{{
			Offset: d.Root.Offset, Length: d.Root.Length,
			Severity: result.Warning,
			Message:  "Validation aborted: document or schema nesting exceeds the supported depth.",
		}}
	}
}

// GetNodeAtOffset descends from the root to the deepest node whose
// span contains offset (or whose right bound equals it, when
// includeRightBound is set).
func (d *Document) GetNodeAtOffset(offset uint32, includeRightBound bool) (*ast.Node, bool) {
	n := ast.NodeAtOffset(d.Root, offset, includeRightBound)
	return n, n != nil
}

// Visit runs a pre-order traversal from the root, stopping descent
// into a subtree whenever fn returns false for its root.
func (d *Document) Visit(fn func(*ast.Node) bool) {
	ast.Visit(d.Root, fn)
}

// Offset maps node's byte offset back to a 1-based line/column pair,
// for CLI and editor diagnostic presentation. Every call scans d.Src
// from the start up to node's offset; nothing is cached between calls,
// so each call is O(n) in the node's offset.
func (d *Document) Offset(node *ast.Node) (line, column int) {
	if node == nil || d.Src == nil {
		return 1, 1
	}
	line, column = 1, 1
	limit := int(node.Offset)
	if limit > len(d.Src) {
		limit = len(d.Src)
	}
	for _, b := range d.Src[:limit] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
