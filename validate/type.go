package validate

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateType checks the "type" keyword: a list requires at least one
// member to match; a single string requires that member to match.
// "integer" matches only a number node whose lexical form had no
// fractional part or exponent; "number" matches any number node.
func validateType(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if len(s.Type) == 0 {
		return
	}
	for _, want := range s.Type {
		if typeMatches(want, node) {
			return
		}
	}
	res.TypeMismatches++
	res.AddProblem(result.Diagnostic{
		Offset: node.Offset, Length: node.Length,
		Severity: result.Warning,
		Message:  fmt.Sprintf("Incorrect type. Expected %s.", expectedTypeList(s.Type)),
	})
}

func typeMatches(want string, node *ast.Node) bool {
	switch want {
	case "integer":
		return node.Kind == ast.KindNumber && node.IsInteger
	case "number":
		return node.Kind == ast.KindNumber
	default:
		return node.Kind.String() == want
	}
}

func expectedTypeList(types []string) string {
	if len(types) == 1 {
		return fmt.Sprintf("%q", types[0])
	}
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return strings.Join(quoted, " or ")
}
