package validate

import (
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// alternative is one candidate branch tracked while picking the best
// anyOf/oneOf match.
type alternative struct {
	subResult *result.ValidationResult
	subColl   collector.SchemaCollector
}

// validateAlternatives implements §4.4: shared machinery for anyOf
// (maxOneMatch=false) and oneOf (maxOneMatch=true).
func validateAlternatives(c *ctx, path, keyword string, node *ast.Node, alternatives []*schema.Schema, maxOneMatch bool, res *result.ValidationResult, coll collector.SchemaCollector) {
	altsPath := childPath(path, keyword)
	var best *alternative
	matchCount := 0

	for i, sub := range alternatives {
		subResult := result.New()
		subColl := coll.NewSub()
		validate(c, indexPath(altsPath, i), node, sub, subResult, subColl)

		clean := !subResult.HasProblems()
		if clean {
			matchCount++
		}

		current := &alternative{subResult: subResult, subColl: subColl}
		switch {
		case best == nil:
			best = current
		case !best.subResult.HasProblems() && clean && !maxOneMatch:
			best.subColl.Merge(subColl)
			best.subResult.PropertiesMatches += subResult.PropertiesMatches
			best.subResult.PropertiesValueMatches += subResult.PropertiesValueMatches
		default:
			switch subResult.Compare(best.subResult) {
			case 1:
				best = current
			case 0:
				best.subColl.Merge(subColl)
				best.subResult.MergeEnumValues(subResult)
			}
		}
	}

	if best == nil {
		return
	}

	if maxOneMatch && matchCount > 1 {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: 1,
			Severity: result.Warning,
			Message:  "Matches multiple schemas when only one must validate.",
		})
	}

	res.Merge(best.subResult)
	res.PropertiesMatches += best.subResult.PropertiesMatches
	res.PropertiesValueMatches += best.subResult.PropertiesValueMatches
	coll.Merge(best.subColl)
}
