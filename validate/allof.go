package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateAllOf validates node against every allOf subschema into the
// same result and collector: every subschema's diagnostics and applicable
// schemas are unconditionally part of the outer outcome.
func validateAllOf(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	allOfPath := childPath(path, "allOf")
	for i, sub := range s.AllOf {
		validate(c, indexPath(allOfPath, i), node, sub, res, coll)
	}
}
