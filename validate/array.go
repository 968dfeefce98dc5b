package validate

import (
	"fmt"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// validateArray implements §4.6: items (tuple or single-schema form),
// additionalItems, contains, minItems/maxItems, and uniqueItems.
func validateArray(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	validateItems(c, path, node, s, res, coll)
	validateContains(c, path, node, s, res)
	validateItemCount(node, s, res)
	validateUniqueItems(node, s, res)
}

func validateItems(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if s.Items == nil {
		return
	}
	itemsPath := childPath(path, "items")
	if s.Items.Single != nil {
		for _, item := range node.Items {
			validatePropertyValue(c, itemsPath, item, s.Items.Single, res, coll)
		}
		return
	}

	tuple := s.Items.Tuple
	for i := 0; i < len(tuple); i++ {
		if i < len(node.Items) {
			validatePropertyValue(c, indexPath(itemsPath, i), node.Items[i], tuple[i], res, coll)
		} else {
			// Array is shorter than the tuple: still counts as a match
			// for the missing position, per the scoring rules.
			res.PropertiesValueMatches++
		}
	}

	if len(node.Items) <= len(tuple) || s.AdditionalItems == nil {
		return
	}
	extra := node.Items[len(tuple):]
	if s.AdditionalItems.IsFalse() {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  "Array has too many items.",
		})
		return
	}
	if s.AdditionalItems.IsTrue() {
		return
	}
	additionalPath := childPath(path, "additionalItems")
	for _, item := range extra {
		validatePropertyValue(c, additionalPath, item, s.AdditionalItems, res, coll)
	}
}

// validateContains emits one warning when no element validates
// cleanly against "contains"; matching is evaluated with a no-op
// collector since "contains" doesn't contribute applicable-schema
// records of its own.
func validateContains(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if s.Contains == nil {
		return
	}
	containsPath := childPath(path, "contains")
	for _, item := range node.Items {
		child := result.New()
		validate(c, containsPath, item, s.Contains, child, collector.Instance)
		if !child.HasProblems() {
			return
		}
	}
	res.AddProblem(result.Diagnostic{
		Offset: node.Offset, Length: node.Length,
		Severity: result.Warning,
		Message:  "Array does not contain a matching item.",
	})
}

func validateItemCount(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	count := len(node.Items)
	if s.MinItems != nil && uint64(count) < *s.MinItems {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Array has too few items. Expected %d or more.", *s.MinItems),
		})
	}
	if s.MaxItems != nil && uint64(count) > *s.MaxItems {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Array has too many items. Expected %d or fewer.", *s.MaxItems),
		})
	}
}

// validateUniqueItems emits one warning on the first duplicate pair,
// using the same structural deep-equality as enum/const.
func validateUniqueItems(node *ast.Node, s *schema.Schema, res *result.ValidationResult) {
	if !s.UniqueItems {
		return
	}
	seen := make([]any, 0, len(node.Items))
	for _, item := range node.Items {
		v := nodeValue(item)
		if containsValue(seen, v) {
			res.AddProblem(result.Diagnostic{
				Offset: node.Offset, Length: node.Length,
				Severity: result.Warning,
				Message:  "Array has duplicate items.",
			})
			return
		}
		seen = append(seen, v)
	}
}
