// Package schemaload decodes a schema document into a *schema.Schema,
// from either JSON or YAML source bytes.
package schemaload

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/astschema/schema"
	yaml "gopkg.in/yaml.v3"
)

// FromJSON decodes a JSON schema document via goccy/go-json, the same
// decoder the teacher stack declares as a direct dependency.
func FromJSON(data []byte) (*schema.Schema, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schemaload: decoding JSON schema: %w", err)
	}
	return &s, nil
}

// FromYAML decodes a YAML schema document. Schema authors commonly
// hand-write schemas in YAML (Helm/Kubernetes CRD style); since schema
// documents never need source offsets (only the instance document
// does), this takes a different path than yamlsource's position-
// carrying AST: gopkg.in/yaml.v3 decodes into a generic value, which is
// re-encoded to JSON and handed to the same Schema.UnmarshalJSON that
// FromJSON uses, so both paths share one decoding implementation.
func FromYAML(data []byte) (*schema.Schema, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("schemaload: decoding YAML schema: %w", err)
	}
	normalized := normalizeYAMLValue(generic)

	intermediate, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("schemaload: re-encoding YAML schema as JSON: %w", err)
	}
	return FromJSON(intermediate)
}

// normalizeYAMLValue converts yaml.v3's map[string]interface{} nodes
// (and any nested map[interface{}]interface{} from older-style
// decodes) into map[string]any so goccy/go-json can marshal them;
// yaml.v3 itself already produces string-keyed maps, but nested
// anchors/merges can surface interface{} keys that need coercing to
// strings.
func normalizeYAMLValue(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(vv))
		for k, val := range vv {
			out[k] = normalizeYAMLValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(vv))
		for k, val := range vv {
			out[fmt.Sprint(k)] = normalizeYAMLValue(val)
		}
		return out
	case []any:
		out := make([]any, len(vv))
		for i, item := range vv {
			out[i] = normalizeYAMLValue(item)
		}
		return out
	default:
		return vv
	}
}
