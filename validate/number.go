package validate

import (
	"fmt"
	"math"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateNumber implements §4.8 over the node's value as an IEEE-754
// double: multipleOf, and the derived exclusive/inclusive bounds
// (draft-4's boolean exclusiveMinimum/exclusiveMaximum repurpose the
// adjacent minimum/maximum as the exclusive bound; draft-7's numeric
// form is an independent bound, leaving minimum/maximum inclusive).
func validateNumber(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	v := node.NumberValue

	if s.MultipleOf != nil && *s.MultipleOf != 0 && math.Mod(v, *s.MultipleOf) != 0 {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Value is not a multiple of %g.", *s.MultipleOf),
		})
	}

	exclusiveMin, inclusiveMin := deriveBound(s.ExclusiveMinimum, s.Minimum)
	exclusiveMax, inclusiveMax := deriveBound(s.ExclusiveMaximum, s.Maximum)

	if exclusiveMin != nil && v <= *exclusiveMin {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Value is below the exclusive minimum of %g.", *exclusiveMin),
		})
	}
	if exclusiveMax != nil && v >= *exclusiveMax {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Value is above the exclusive maximum of %g.", *exclusiveMax),
		})
	}
	if inclusiveMin != nil && v < *inclusiveMin {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Value is below the minimum of %g.", *inclusiveMin),
		})
	}
	if inclusiveMax != nil && v > *inclusiveMax {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Value is above the maximum of %g.", *inclusiveMax),
		})
	}
}

// deriveBound splits a minimum/maximum pair into its exclusive and
// inclusive components per the draft-4/draft-7 exclusiveMinimum/
// exclusiveMaximum polymorphism.
func deriveBound(exclusiveFlag *schema.NumberOrBool, bound *float64) (exclusive, inclusive *float64) {
	switch {
	case exclusiveFlag == nil:
		return nil, bound
	case exclusiveFlag.IsBool:
		if exclusiveFlag.Bool {
			return bound, nil
		}
		return nil, bound
	default:
		n := exclusiveFlag.Number
		return &n, bound
	}
}
