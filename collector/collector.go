// Package collector accumulates the set of schemas that apply to each
// AST node as the validation engine descends, for downstream editor
// features (hover, completion, go-to-definition).
package collector

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/schema"
)

// ApplicableSchema records that schema was matched against node while
// validating. Inverted flips every time the record crosses a "not"
// boundary, so the parity of Inverted tells a caller how many odd-
// numbered "not" ancestors sit between schema and node.
type ApplicableSchema struct {
	Node     *ast.Node
	Schema   *schema.Schema
	Inverted bool

	// SchemaPath is a JSON-Pointer-shaped string identifying where in
	// the schema tree this record was produced (e.g.
	// "/properties/foo/anyOf/1"), so callers can render a breadcrumb
	// without re-deriving it from Schema alone.
	SchemaPath string
}

// SchemaCollector is the capability the validation engine writes
// applicable-schema records through. Implementations decide whether a
// given node is of interest (Include) and what happens to a record
// once produced (Add).
type SchemaCollector interface {
	Include(n *ast.Node) bool
	Add(rec ApplicableSchema)
	Merge(other SchemaCollector)
	MergeInverted(other SchemaCollector)
	NewSub() SchemaCollector
}

// Recording is a SchemaCollector that keeps every record whose node
// contains FocusOffset (or every record, when FocusOffset is -1), save
// for the Exclude node.
type Recording struct {
	FocusOffset int64
	Exclude     *ast.Node
	Records     []ApplicableSchema
}

// NewRecording returns a Recording collector scoped to focusOffset (-1
// for "no focus, collect everything") and the given excluded node (nil
// for "exclude nothing").
func NewRecording(focusOffset int64, exclude *ast.Node) *Recording {
	return &Recording{FocusOffset: focusOffset, Exclude: exclude}
}

// Include reports whether n is eligible: not the excluded node, and
// either there is no focus offset or n's span contains it.
func (c *Recording) Include(n *ast.Node) bool {
	if n == c.Exclude {
		return false
	}
	if c.FocusOffset < 0 {
		return true
	}
	offset := uint32(c.FocusOffset)
	return n.Offset <= offset && offset < n.End()
}

// Add appends rec to the recorded set.
func (c *Recording) Add(rec ApplicableSchema) {
	c.Records = append(c.Records, rec)
}

// Merge appends other's records (when other is also a *Recording; a
// NoOp has none to contribute).
func (c *Recording) Merge(other SchemaCollector) {
	if o, ok := other.(*Recording); ok {
		c.Records = append(c.Records, o.Records...)
	}
}

// MergeInverted appends other's records with Inverted flipped, used
// when crossing a "not" boundary.
func (c *Recording) MergeInverted(other SchemaCollector) {
	o, ok := other.(*Recording)
	if !ok {
		return
	}
	for _, rec := range o.Records {
		rec.Inverted = !rec.Inverted
		c.Records = append(c.Records, rec)
	}
}

// NewSub returns an independent Recording collector with no focus
// offset (so it gathers everything) and the same excluded node, as
// required for anyOf/oneOf alternatives so that a losing branch's
// records can be discarded wholesale rather than filtered after the
// fact.
func (c *Recording) NewSub() SchemaCollector {
	return NewRecording(-1, c.Exclude)
}

// NoOp is a stateless SchemaCollector used when only diagnostics are
// wanted. A single instance may be shared process-wide.
type NoOp struct{}

// Instance is the shared NoOp singleton; it carries no state so one
// value serves every caller.
var Instance = &NoOp{}

func (*NoOp) Include(*ast.Node) bool  { return true }
func (*NoOp) Add(ApplicableSchema)    {}
func (*NoOp) Merge(SchemaCollector)   {}
func (*NoOp) MergeInverted(SchemaCollector) {}
func (*NoOp) NewSub() SchemaCollector { return Instance }
