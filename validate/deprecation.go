package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateDeprecation emits deprecationMessage as a warning spanning
// the node's parent, so the diagnostic lands on the enclosing property
// rather than the value itself. Nodes without a parent (the document
// root) are silently skipped.
func validateDeprecation(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if s.DeprecationMessage == "" || node.Parent == nil {
		return
	}
	res.AddProblem(result.Diagnostic{
		Offset: node.Parent.Offset, Length: node.Parent.Length,
		Severity: result.Warning,
		Message:  s.DeprecationMessage,
	})
}
