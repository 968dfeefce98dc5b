// Package schema models a JSON-Schema-style value: the boolean-or-object
// polymorphism, the draft-4/draft-7 exclusive-bound split, and the
// schema-or-list / schema-or-bool / schema-or-string-list shapes used by
// items, additionalProperties, and dependencies.
package schema

// Schema is either the literal boolean true/false (Boolean set) or an
// object with the recognized JSON-Schema fields below. Unknown fields
// are ignored on decode; there is no round-trip/Extra bookkeeping
// because this module never re-serializes a schema it has loaded.
type Schema struct {
	Boolean *bool

	Type               []string
	Enum               []any
	Const              *ConstValue
	ErrorMessage        string
	DeprecationMessage  string

	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema
	If    *Schema
	Then  *Schema
	Else  *Schema

	MultipleOf       *float64
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *NumberOrBool
	ExclusiveMaximum *NumberOrBool

	MinLength           *uint64
	MaxLength           *uint64
	Pattern             string
	HasPattern          bool
	Format              string
	PatternErrorMessage string

	Items           *Items
	AdditionalItems *Schema // bool-or-object; nil means absent (no constraint)
	Contains        *Schema
	MinItems        *uint64
	MaxItems        *uint64
	UniqueItems     bool

	Properties           map[string]*Schema
	PropertyOrder        []string // declared key order, for deterministic iteration
	PatternProperties    []PatternProperty
	AdditionalProperties *Schema // bool-or-object
	Required             []string
	PropertyNames        *Schema
	Dependencies         map[string]*Dependency
	DependencyOrder      []string
	MinProperties        *uint64
	MaxProperties        *uint64
}

// IsTrue reports whether this schema is the literal `true` value.
// IsFalse/IsTrue are only meaningful when Boolean is set; object schemas
// (including an empty object) are neither.
func (s *Schema) IsTrue() bool {
	return s != nil && s.Boolean != nil && *s.Boolean
}

// IsFalse reports whether this schema is the literal `false` value.
func (s *Schema) IsFalse() bool {
	return s != nil && s.Boolean != nil && !*s.Boolean
}

// ConstValue wraps an arbitrary decoded JSON value so that "const"
// being absent (nil *ConstValue) is distinguishable from "const": null
// (a non-nil *ConstValue whose Value is nil).
type ConstValue struct {
	Value any
}

// NumberOrBool models exclusiveMinimum/exclusiveMaximum, which is a
// boolean in draft-4 (a flag on the adjacent minimum/maximum) or a
// standalone number in draft-7.
type NumberOrBool struct {
	IsBool bool
	Bool   bool
	Number float64
}

// Items models the "items" keyword, which is either a single schema
// applied to every array element or an ordered list of per-position
// (tuple) schemas. Exactly one of Single or Tuple is set.
type Items struct {
	Single *Schema
	Tuple  []*Schema
}

// PatternProperty pairs a patternProperties key (kept as source text;
// the validate package compiles and caches it) with its subschema.
type PatternProperty struct {
	Pattern string
	Schema  *Schema
}

// Dependency models one value of the "dependencies" keyword: either a
// schema the whole object must validate against, or a list of property
// names that must also be present.
type Dependency struct {
	Schema   *Schema
	Required []string
}
