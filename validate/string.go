package validate

import (
	"fmt"
	"unicode/utf8"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/format"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateString implements §4.7: minLength/maxLength on the decoded
// string's code-point length, pattern, and format.
func validateString(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	length := uint64(utf8.RuneCountInString(node.StringValue))

	if s.MinLength != nil && length < *s.MinLength {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("String is shorter than the minimum length of %d.", *s.MinLength),
		})
	}
	if s.MaxLength != nil && length > *s.MaxLength {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("String is longer than the maximum length of %d.", *s.MaxLength),
		})
	}

	if s.HasPattern {
		if re := compilePattern(s.Pattern); re != nil && !re.MatchString(node.StringValue) {
			msg := s.PatternErrorMessage
			if msg == "" {
				msg = fmt.Sprintf("String does not match the pattern of %q.", s.Pattern)
			}
			res.AddProblem(result.Diagnostic{
				Offset: node.Offset, Length: node.Length,
				Severity: result.Warning,
				Message:  msg,
			})
		}
	}

	if s.Format != "" && format.Known(s.Format) {
		if msg := format.Validate(s.Format, node.StringValue); msg != "" {
			res.AddProblem(result.Diagnostic{
				Offset: node.Offset, Length: node.Length,
				Severity: result.Warning,
				Message:  msg,
			})
		}
	}
}
