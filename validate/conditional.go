package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateConditional implements "if"/"then"/"else": if runs into a
// fresh sub-result/sub-collector whose collector is merged into the
// outer collector unconditionally (its own problems are never
// surfaced), then the matching branch runs directly against the outer
// result and collector.
func validateConditional(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if s.If == nil {
		return
	}
	subResult := result.New()
	subColl := coll.NewSub()
	validate(c, childPath(path, "if"), node, s.If, subResult, subColl)
	coll.Merge(subColl)

	if !subResult.HasProblems() {
		if s.Then != nil {
			validate(c, childPath(path, "then"), node, s.Then, res, coll)
		}
		return
	}
	if s.Else != nil {
		validate(c, childPath(path, "else"), node, s.Else, res, coll)
	}
}
