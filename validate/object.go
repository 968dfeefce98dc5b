package validate

import (
	"fmt"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
)

// objEntry is one property occurrence available for keyword
// processing, after the merge-key extension has been expanded. It is
// kept distinct from *ast.Node so duplicate keys can be tracked
// individually even though "last wins" collapses them in seenKeys.
type objEntry struct {
	key       string
	keyNode   *ast.Node
	valueNode *ast.Node
}

// validateObject implements §4.5: merge-key expansion, required,
// properties, patternProperties, additionalProperties,
// minProperties/maxProperties, dependencies, and propertyNames.
func validateObject(c *ctx, path string, node *ast.Node, s *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	originalCount := len(node.Properties)
	entries := collectEntries(node)

	seen := make(map[string]*ast.Node, len(entries))
	keyNodeOf := make(map[string]*ast.Node, len(entries))
	for _, e := range entries {
		seen[e.key] = e.valueNode
		keyNodeOf[e.key] = e.keyNode
	}
	unprocessed := append([]objEntry(nil), entries...)

	validateRequired(node, s, seen, res)
	unprocessed = validateProperties(c, path, s, seen, keyNodeOf, unprocessed, res, coll)
	unprocessed = validatePatternProperties(c, path, s, unprocessed, res, coll)
	validateAdditionalProperties(c, path, s, unprocessed, res, coll)
	validatePropertyCount(node, s, originalCount, res)
	validateDependencies(c, path, node, s, seen, res, coll)
	validatePropertyNames(c, path, entries, s, res)
}

// collectEntries walks node's properties in source order, expanding
// the "<<" merge-key extension in place: an object value contributes
// its own properties, an array of objects contributes each element's
// properties, and any other value type is ignored.
func collectEntries(node *ast.Node) []objEntry {
	var entries []objEntry
	for _, prop := range node.Properties {
		if prop.Key == nil {
			continue
		}
		if prop.Key.StringValue == "<<" {
			entries = append(entries, expandMergeKey(prop.Value)...)
			continue
		}
		entries = append(entries, objEntry{key: prop.Key.StringValue, keyNode: prop.Key, valueNode: prop.Value})
	}
	return entries
}

func expandMergeKey(value *ast.Node) []objEntry {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case ast.KindObject:
		return entriesFromProps(value.Properties)
	case ast.KindArray:
		var out []objEntry
		for _, item := range value.Items {
			if item != nil && item.Kind == ast.KindObject {
				out = append(out, entriesFromProps(item.Properties)...)
			}
		}
		return out
	default:
		return nil
	}
}

func entriesFromProps(props []*ast.Node) []objEntry {
	var out []objEntry
	for _, prop := range props {
		if prop.Key == nil {
			continue
		}
		out = append(out, objEntry{key: prop.Key.StringValue, keyNode: prop.Key, valueNode: prop.Value})
	}
	return out
}

// validateRequired emits one warning per required key absent from
// seen. The location is the enclosing property's key span when node is
// itself a property value; otherwise a single-character span at node's
// start.
func validateRequired(node *ast.Node, s *schema.Schema, seen map[string]*ast.Node, res *result.ValidationResult) {
	if len(s.Required) == 0 {
		return
	}
	offset, length := node.Offset, uint32(1)
	if node.Parent != nil && node.Parent.Kind == ast.KindProperty && node.Parent.Key != nil {
		offset, length = node.Parent.Key.Offset, node.Parent.Key.Length
	}
	for _, name := range s.Required {
		if _, ok := seen[name]; ok {
			continue
		}
		res.AddProblem(result.Diagnostic{
			Offset: offset, Length: length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Missing property %q.", name),
		})
	}
}

// validateProperties implements step 4: every declared property name
// is marked processed (all its occurrences removed from unprocessed),
// and if a matching key exists, validated per the bool-or-object
// subschema form.
func validateProperties(c *ctx, path string, s *schema.Schema, seen map[string]*ast.Node, keyNodeOf map[string]*ast.Node, unprocessed []objEntry, res *result.ValidationResult, coll collector.SchemaCollector) []objEntry {
	propsPath := childPath(path, "properties")
	for _, name := range s.PropertyOrder {
		sub := s.Properties[name]
		unprocessed = removeByKey(unprocessed, name)

		valueNode, ok := seen[name]
		if !ok {
			continue
		}
		switch {
		case sub.IsFalse():
			keyNode := keyNodeOf[name]
			res.AddProblem(result.Diagnostic{
				Offset: keyNode.Offset, Length: keyNode.Length,
				Severity: result.Warning,
				Message:  fmt.Sprintf("Property %q is not allowed.", name),
			})
		case sub.IsTrue():
			res.PropertiesMatches++
			res.PropertiesValueMatches++
		default:
			validatePropertyValue(c, childPath(propsPath, name), valueNode, sub, res, coll)
		}
	}
	return unprocessed
}

// validatePatternProperties implements step 5: each pattern is
// matched against a snapshot of the still-unprocessed entries; matches
// are processed individually (by occurrence, not by name, so
// duplicate keys are handled independently).
func validatePatternProperties(c *ctx, path string, s *schema.Schema, unprocessed []objEntry, res *result.ValidationResult, coll collector.SchemaCollector) []objEntry {
	patternPropsPath := childPath(path, "patternProperties")
	for _, pp := range s.PatternProperties {
		re := compilePattern(pp.Pattern)
		if re == nil {
			continue
		}
		subPath := childPath(patternPropsPath, pp.Pattern)
		var remaining []objEntry
		for _, e := range unprocessed {
			if !re.MatchString(e.key) {
				remaining = append(remaining, e)
				continue
			}
			switch {
			case pp.Schema.IsFalse():
				res.AddProblem(result.Diagnostic{
					Offset: e.keyNode.Offset, Length: e.keyNode.Length,
					Severity: result.Warning,
					Message:  fmt.Sprintf("Property %q is not allowed.", e.key),
				})
			case pp.Schema.IsTrue():
				res.PropertiesMatches++
				res.PropertiesValueMatches++
			default:
				validatePropertyValue(c, subPath, e.valueNode, pp.Schema, res, coll)
			}
		}
		unprocessed = remaining
	}
	return unprocessed
}

// validateAdditionalProperties implements step 6: whatever remains in
// unprocessed is validated against additionalProperties, if present.
func validateAdditionalProperties(c *ctx, path string, s *schema.Schema, unprocessed []objEntry, res *result.ValidationResult, coll collector.SchemaCollector) {
	if s.AdditionalProperties == nil || s.AdditionalProperties.IsTrue() {
		return
	}
	subPath := childPath(path, "additionalProperties")
	for _, e := range unprocessed {
		if s.AdditionalProperties.IsFalse() {
			res.AddProblem(result.Diagnostic{
				Offset: e.keyNode.Offset, Length: e.keyNode.Length,
				Severity: result.Warning,
				Message:  fmt.Sprintf("Property %q is not allowed.", e.key),
			})
			continue
		}
		validatePropertyValue(c, subPath, e.valueNode, s.AdditionalProperties, res, coll)
	}
}

// validatePropertyCount implements step 7: minProperties/
// maxProperties are checked against the original, pre-merge-key
// property count.
func validatePropertyCount(node *ast.Node, s *schema.Schema, originalCount int, res *result.ValidationResult) {
	if s.MinProperties != nil && uint64(originalCount) < *s.MinProperties {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Object has too few properties. Expected %d or more.", *s.MinProperties),
		})
	}
	if s.MaxProperties != nil && uint64(originalCount) > *s.MaxProperties {
		res.AddProblem(result.Diagnostic{
			Offset: node.Offset, Length: node.Length,
			Severity: result.Warning,
			Message:  fmt.Sprintf("Object has too many properties. Expected %d or fewer.", *s.MaxProperties),
		})
	}
}

// validateDependencies implements step 8.
func validateDependencies(c *ctx, path string, node *ast.Node, s *schema.Schema, seen map[string]*ast.Node, res *result.ValidationResult, coll collector.SchemaCollector) {
	depsPath := childPath(path, "dependencies")
	for _, key := range s.DependencyOrder {
		if _, present := seen[key]; !present {
			continue
		}
		dep := s.Dependencies[key]
		if dep.Schema != nil {
			validatePropertyValue(c, childPath(depsPath, key), node, dep.Schema, res, coll)
			continue
		}
		for _, required := range dep.Required {
			if _, ok := seen[required]; ok {
				res.PropertiesValueMatches++
				continue
			}
			res.AddProblem(result.Diagnostic{
				Offset: node.Offset, Length: node.Length,
				Severity: result.Warning,
				Message:  fmt.Sprintf("Property %q requires property %q.", key, required),
			})
		}
	}
}

// validatePropertyNames implements step 9: every key node is checked
// against propertyNames with a no-op collector, so the checks never
// appear as applicable-schema records.
func validatePropertyNames(c *ctx, path string, entries []objEntry, s *schema.Schema, res *result.ValidationResult) {
	if s.PropertyNames == nil {
		return
	}
	subPath := childPath(path, "propertyNames")
	for _, e := range entries {
		child := result.New()
		validate(c, subPath, e.keyNode, s.PropertyNames, child, collector.Instance)
		res.Merge(child)
	}
}

// validatePropertyValue runs a child validation and folds it in via
// mergePropertyMatch, merging the child collector unconditionally
// since this is a definite validated path, not a competing
// alternative.
func validatePropertyValue(c *ctx, path string, valueNode *ast.Node, sub *schema.Schema, res *result.ValidationResult, coll collector.SchemaCollector) {
	if valueNode == nil {
		return
	}
	child := result.New()
	childColl := coll.NewSub()
	validate(c, path, valueNode, sub, child, childColl)
	res.MergePropertyMatch(child)
	coll.Merge(childColl)
}

func removeByKey(entries []objEntry, name string) []objEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.key != name {
			out = append(out, e)
		}
	}
	return out
}
