package validate

import "github.com/kaptinlin/astschema/ast"

// nodeValue converts an AST subtree into a plain Go value so it can be
// compared against a decoded schema value (enum/const members are
// `any`s decoded by goccy/go-json). It mirrors the JSON value space: nil, bool,
// float64, string, []any, map[string]any.
func nodeValue(n *ast.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case ast.KindNull:
		return nil
	case ast.KindBoolean:
		return n.BoolValue
	case ast.KindNumber:
		return n.NumberValue
	case ast.KindString:
		return n.StringValue
	case ast.KindArray:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = nodeValue(item)
		}
		return out
	case ast.KindObject:
		out := make(map[string]any, len(n.Properties))
		for _, prop := range n.Properties {
			if prop.Key == nil || prop.Value == nil {
				continue
			}
			out[prop.Key.StringValue] = nodeValue(prop.Value)
		}
		return out
	default:
		return nil
	}
}

// deepEqual implements the total, order-sensitive structural equality
// required by enum/const/uniqueItems: null, bool, number, and string
// compare by value; arrays compare element-wise in order; objects
// compare by identical key sets with key-wise equal values. Numbers
// compare with Go's native float64 equality (IEEE-754 ==, not bit
// equality: NaN never equals NaN, and 0 equals -0).
func deepEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, present := bv[k]
			if !present || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// containsValue reports whether value deep-equals any member of set.
func containsValue(set []any, value any) bool {
	for _, candidate := range set {
		if deepEqual(candidate, value) {
			return true
		}
	}
	return false
}
