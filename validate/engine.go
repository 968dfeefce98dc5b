// Package validate implements the recursive structural-validation
// engine: validate(node, schema, result, collector) dispatches on node
// variant, applies every shared combinator, and delegates to the
// per-type validators in object.go, array.go, string.go, and
// number.go.
package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// DefaultMaxDepth bounds recursion depth (AST depth plus schema
// combinator depth) absent an explicit override from the caller.
const DefaultMaxDepth = 1000

// ctx threads the depth ceiling through the recursive engine without
// widening every function's signature to carry a document reference.
type ctx struct {
	maxDepth   int
	depth      int
	overflowed bool
}

// enter reports whether recursion may proceed; it flips overflowed
// (sticky, never cleared) the first time the ceiling is crossed so the
// caller can emit one synthetic diagnostic instead of many.
func (c *ctx) enter() bool {
	if c.overflowed {
		return false
	}
	c.depth++
	if c.depth > c.maxDepth {
		c.overflowed = true
		c.depth--
		return false
	}
	return true
}

func (c *ctx) exit() {
	c.depth--
}

// Validate runs the engine over root against s, writing diagnostics
// and scores into res through coll. maxDepth <= 0 selects
// DefaultMaxDepth. It returns true if the recursion ceiling was hit,
// in which case the caller (see the document package) is expected to
// replace the partial diagnostics with a single synthetic one rather
// than trust the partial walk.
func Validate(root *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector, maxDepth int) (overflowed bool) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	c := &ctx{maxDepth: maxDepth}
	validate(c, "", root, s, res, coll)
	return c.overflowed
}

// validate is the recursive procedure from the component design: type-
// specific pass, shared pass, then applicable-schema recording. path
// is this schema's JSON-Pointer location within the root schema
// document, recorded on every ApplicableSchema so callers can render a
// breadcrumb without re-deriving it from the *schema.Schema pointer
// alone.
func validate(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if node == nil || s == nil {
		return
	}
	if !coll.Include(node) {
		return
	}
	if !c.enter() {
		return
	}
	defer c.exit()

	if s.IsFalse() {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  "Matches a schema that is always false.",
		})
	}

	// 1. type-specific pass
	if node.Kind == ast.KindProperty {
		validate(c, path, node.Value, s, res, coll)
		return
	}
	switch node.Kind {
	case ast.KindObject:
		validateObject(c, path, node, s, res, coll)
	case ast.KindArray:
		validateArray(c, path, node, s, res, coll)
	case ast.KindString:
		validateString(node, s, res)
	case ast.KindNumber:
		validateNumber(node, s, res)
	}

	// 2. shared pass — every node, in the deterministic keyword order.
	validateType(node, s, res)
	validateAllOf(c, path, node, s, res, coll)
	validateNot(c, path, node, s, res, coll)
	if len(s.AnyOf) > 0 {
		validateAlternatives(c, path, "anyOf", node, s.AnyOf, false, res, coll)
	}
	if len(s.OneOf) > 0 {
		validateAlternatives(c, path, "oneOf", node, s.OneOf, true, res, coll)
	}
	validateConditional(c, path, node, s, res, coll)
	validateEnum(node, s, res)
	validateConst(node, s, res)
	validateDeprecation(node, s, res)

	// 3. record applicability, regardless of outcome.
	coll.Add(collector.ApplicableSchema{Node: node, Schema: s, SchemaPath: path})
}
