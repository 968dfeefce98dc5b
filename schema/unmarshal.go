package schema

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// rawSchema mirrors Schema's object form for decoding; every field is
// left as json.RawMessage (or a plain type) so presence can be checked
// before committing to a zero value.
type rawSchema struct {
	Type               json.RawMessage `json:"type"`
	Enum               []any           `json:"enum"`
	Const              json.RawMessage `json:"const"`
	ErrorMessage       string          `json:"errorMessage"`
	DeprecationMessage string          `json:"deprecationMessage"`

	AllOf []*Schema `json:"allOf"`
	AnyOf []*Schema `json:"anyOf"`
	OneOf []*Schema `json:"oneOf"`
	Not   *Schema   `json:"not"`
	If    *Schema   `json:"if"`
	Then  *Schema   `json:"then"`
	Else  *Schema   `json:"else"`

	MultipleOf       *float64        `json:"multipleOf"`
	Minimum          *float64        `json:"minimum"`
	Maximum          *float64        `json:"maximum"`
	ExclusiveMinimum json.RawMessage `json:"exclusiveMinimum"`
	ExclusiveMaximum json.RawMessage `json:"exclusiveMaximum"`

	MinLength           *uint64 `json:"minLength"`
	MaxLength           *uint64 `json:"maxLength"`
	Pattern             *string `json:"pattern"`
	Format              string  `json:"format"`
	PatternErrorMessage string  `json:"patternErrorMessage"`

	Items           json.RawMessage `json:"items"`
	AdditionalItems *Schema         `json:"additionalItems"`
	Contains        *Schema         `json:"contains"`
	MinItems        *uint64         `json:"minItems"`
	MaxItems        *uint64         `json:"maxItems"`
	UniqueItems     bool            `json:"uniqueItems"`

	Properties           json.RawMessage            `json:"properties"`
	PatternProperties    json.RawMessage            `json:"patternProperties"`
	AdditionalProperties *Schema                    `json:"additionalProperties"`
	Required             []string                   `json:"required"`
	PropertyNames        *Schema                    `json:"propertyNames"`
	Dependencies         map[string]json.RawMessage `json:"dependencies"`
	MinProperties        *uint64                    `json:"minProperties"`
	MaxProperties        *uint64                    `json:"maxProperties"`
}

// UnmarshalJSON implements the bool-or-object polymorphism: a bare
// `true`/`false` becomes a Schema with only Boolean set; an object
// decodes every recognized field, ignoring anything else.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		s.Boolean = &b
		return nil
	}

	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: decoding object form: %w", err)
	}

	if len(raw.Type) > 0 {
		if err := decodeTypeField(raw.Type, s); err != nil {
			return err
		}
	}
	s.Enum = raw.Enum
	if len(raw.Const) > 0 {
		var v any
		if err := json.Unmarshal(raw.Const, &v); err != nil {
			return fmt.Errorf("schema: decoding const: %w", err)
		}
		s.Const = &ConstValue{Value: v}
	}
	s.ErrorMessage = raw.ErrorMessage
	s.DeprecationMessage = raw.DeprecationMessage

	s.AllOf, s.AnyOf, s.OneOf = raw.AllOf, raw.AnyOf, raw.OneOf
	s.Not, s.If, s.Then, s.Else = raw.Not, raw.If, raw.Then, raw.Else

	s.MultipleOf, s.Minimum, s.Maximum = raw.MultipleOf, raw.Minimum, raw.Maximum
	var err error
	if s.ExclusiveMinimum, err = decodeNumberOrBool(raw.ExclusiveMinimum); err != nil {
		return fmt.Errorf("schema: decoding exclusiveMinimum: %w", err)
	}
	if s.ExclusiveMaximum, err = decodeNumberOrBool(raw.ExclusiveMaximum); err != nil {
		return fmt.Errorf("schema: decoding exclusiveMaximum: %w", err)
	}

	s.MinLength, s.MaxLength = raw.MinLength, raw.MaxLength
	if raw.Pattern != nil {
		s.Pattern, s.HasPattern = *raw.Pattern, true
	}
	s.Format = raw.Format
	s.PatternErrorMessage = raw.PatternErrorMessage

	if s.Items, err = decodeItems(raw.Items); err != nil {
		return fmt.Errorf("schema: decoding items: %w", err)
	}
	s.AdditionalItems = raw.AdditionalItems
	s.Contains = raw.Contains
	s.MinItems, s.MaxItems = raw.MinItems, raw.MaxItems
	s.UniqueItems = raw.UniqueItems

	if s.Properties, s.PropertyOrder, err = decodeSchemaMap(raw.Properties); err != nil {
		return fmt.Errorf("schema: decoding properties: %w", err)
	}
	if s.PatternProperties, err = decodePatternProperties(raw.PatternProperties); err != nil {
		return fmt.Errorf("schema: decoding patternProperties: %w", err)
	}
	s.AdditionalProperties = raw.AdditionalProperties
	s.Required = raw.Required
	s.PropertyNames = raw.PropertyNames
	if s.Dependencies, s.DependencyOrder, err = decodeDependencies(raw.Dependencies); err != nil {
		return fmt.Errorf("schema: decoding dependencies: %w", err)
	}
	s.MinProperties, s.MaxProperties = raw.MinProperties, raw.MaxProperties

	return nil
}

// decodeTypeField accepts either a single type string or a list of
// type strings, per spec.
func decodeTypeField(data json.RawMessage, s *Schema) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		s.Type = []string{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("schema: decoding type: %w", err)
	}
	s.Type = list
	return nil
}

// decodeNumberOrBool accepts an absent field (nil), a bool, or a
// number for exclusiveMinimum/exclusiveMaximum.
func decodeNumberOrBool(data json.RawMessage) (*NumberOrBool, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return &NumberOrBool{IsBool: true, Bool: b}, nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &NumberOrBool{Number: n}, nil
}

// decodeItems accepts an absent field, a single schema, or a list of
// schemas (tuple form).
func decodeItems(data json.RawMessage) (*Items, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var tuple []*Schema
	if err := json.Unmarshal(data, &tuple); err == nil {
		return &Items{Tuple: tuple}, nil
	}
	var single Schema
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	return &Items{Single: &single}, nil
}

// decodeSchemaMap decodes an object of name->schema pairs, preserving
// declaration order for deterministic iteration by the validate
// package. goccy/go-json reports duplicate object keys through the
// ordinary map decode (last wins), matching the object-node merge-key
// "last wins" rule used elsewhere in this module.
func decodeSchemaMap(data json.RawMessage) (map[string]*Schema, []string, error) {
	if len(data) == 0 {
		return nil, nil, nil
	}
	var ordered []struct {
		Key   string
		Value *Schema
	}
	if err := decodeOrderedObject(data, &ordered); err != nil {
		return nil, nil, err
	}
	out := make(map[string]*Schema, len(ordered))
	order := make([]string, 0, len(ordered))
	for _, kv := range ordered {
		if _, seen := out[kv.Key]; !seen {
			order = append(order, kv.Key)
		}
		out[kv.Key] = kv.Value
	}
	return out, order, nil
}

func decodePatternProperties(data json.RawMessage) ([]PatternProperty, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ordered []struct {
		Key   string
		Value *Schema
	}
	if err := decodeOrderedObject(data, &ordered); err != nil {
		return nil, err
	}
	out := make([]PatternProperty, 0, len(ordered))
	for _, kv := range ordered {
		out = append(out, PatternProperty{Pattern: kv.Key, Schema: kv.Value})
	}
	return out, nil
}

func decodeDependencies(raw map[string]json.RawMessage) (map[string]*Dependency, []string, error) {
	if len(raw) == 0 {
		return nil, nil, nil
	}
	out := make(map[string]*Dependency, len(raw))
	order := make([]string, 0, len(raw))
	for key, data := range raw {
		var names []string
		if err := json.Unmarshal(data, &names); err == nil {
			out[key] = &Dependency{Required: names}
			order = append(order, key)
			continue
		}
		var sub Schema
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, nil, fmt.Errorf("dependency %q: %w", key, err)
		}
		out[key] = &Dependency{Schema: &sub}
		order = append(order, key)
	}
	return out, order, nil
}

// decodeOrderedObject decodes a JSON object into dst, a pointer to a
// slice of {Key, Value} pairs, preserving source key order. goccy/go-
// json (like encoding/json) exposes this via json.Decoder.Token;
// walking tokens keeps us on the declared decode library instead of
// reaching for a third one just to preserve order.
func decodeOrderedObject(data json.RawMessage, dst any) error {
	pairs, ok := dst.(*[]struct {
		Key   string
		Value *Schema
	})
	if !ok {
		return fmt.Errorf("schema: unsupported ordered-object target %T", dst)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value Schema
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("schema: decoding value for %q: %w", key, err)
		}
		*pairs = append(*pairs, struct {
			Key   string
			Value *Schema
		}{Key: key, Value: &value})
	}
	return nil
}
