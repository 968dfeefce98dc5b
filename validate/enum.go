package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateEnum implements the "enum" keyword: enumValues is set to the
// full list regardless of outcome, and enumValueMatch records whether
// the node's value deep-equals any member.
func validateEnum(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if len(s.Enum) == 0 {
		return
	}
	res.EnumValues = s.Enum
	v := nodeValue(node)
	if containsValue(s.Enum, v) {
		res.EnumValueMatch = true
		return
	}
	res.EnumValueMatch = false
	emitEnumMismatch(node, s.Enum, res)
}

// validateConst treats "const" as an enum of one value: a match sets
// enumValueMatch true, a miss sets it explicitly false (distinct from
// "enum" absent, which leaves enumValueMatch at its zero value).
func validateConst(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if s.Const == nil {
		return
	}
	values := []any{s.Const.Value}
	res.EnumValues = values
	if deepEqual(nodeValue(node), s.Const.Value) {
		res.EnumValueMatch = true
		return
	}
	res.EnumValueMatch = false
	emitEnumMismatch(node, values, res)
}

func emitEnumMismatch(node *ast.Node, values []any, res *result.ValidationResult) {
	res.AddProblem(result.Diagnostic{
		Offset: node.Offset, Length: node.Length,
		Severity: result.Warning,
		Message:  result.EnumMismatchMessage(values),
		Code:     result.EnumValueMismatch,
	})
}
