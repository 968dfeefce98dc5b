package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateNot runs "not" with a fresh sub-result and sub-collector. A
// clean sub-result (the node DID match the negated schema) is a
// problem; the sub-collector's records are inversion-flipped and
// merged into the outer collector regardless of outcome, since "what
// schemas apply here" still wants to know about the negated branch.
func validateNot(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if s.Not == nil {
		return
	}
	subResult := result.New()
	subColl := coll.NewSub()
	validate(c, childPath(path, "not"), node, s.Not, subResult, subColl)

	if !subResult.HasProblems() {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  "Matches a schema that is not allowed.",
		})
	}
	coll.MergeInverted(subColl)
}
