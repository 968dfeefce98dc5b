package schema_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/astschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) *schema.Schema {
	t.Helper()
	var s schema.Schema
	require.NoError(t, json.Unmarshal([]byte(src), &s))
	return &s
}

func TestBooleanSchema(t *testing.T) {
	trueSchema := decode(t, `true`)
	falseSchema := decode(t, `false`)

	assert.True(t, trueSchema.IsTrue())
	assert.True(t, falseSchema.IsFalse())
	assert.False(t, trueSchema.IsFalse())
}

func TestTypeSingleAndList(t *testing.T) {
	single := decode(t, `{"type":"string"}`)
	list := decode(t, `{"type":["string","number"]}`)

	assert.Equal(t, []string{"string"}, single.Type)
	assert.Equal(t, []string{"string", "number"}, list.Type)
}

func TestExclusiveMinimumDraftVariants(t *testing.T) {
	draft4 := decode(t, `{"minimum":1,"exclusiveMinimum":true}`)
	draft7 := decode(t, `{"exclusiveMinimum":1}`)

	require.NotNil(t, draft4.ExclusiveMinimum)
	assert.True(t, draft4.ExclusiveMinimum.IsBool)
	assert.True(t, draft4.ExclusiveMinimum.Bool)

	require.NotNil(t, draft7.ExclusiveMinimum)
	assert.False(t, draft7.ExclusiveMinimum.IsBool)
	assert.Equal(t, 1.0, draft7.ExclusiveMinimum.Number)
}

func TestItemsSingleVsTuple(t *testing.T) {
	single := decode(t, `{"items":{"type":"string"}}`)
	tuple := decode(t, `{"items":[{"type":"string"},{"type":"number"}]}`)

	require.NotNil(t, single.Items)
	assert.NotNil(t, single.Items.Single)
	assert.Nil(t, single.Items.Tuple)

	require.NotNil(t, tuple.Items)
	assert.Nil(t, tuple.Items.Single)
	assert.Len(t, tuple.Items.Tuple, 2)
}

func TestAdditionalPropertiesBoolOrSchema(t *testing.T) {
	asBool := decode(t, `{"additionalProperties":false}`)
	asSchema := decode(t, `{"additionalProperties":{"type":"string"}}`)

	require.NotNil(t, asBool.AdditionalProperties)
	assert.True(t, asBool.AdditionalProperties.IsFalse())

	require.NotNil(t, asSchema.AdditionalProperties)
	assert.Nil(t, asSchema.AdditionalProperties.Boolean)
	assert.Equal(t, []string{"string"}, asSchema.AdditionalProperties.Type)
}

func TestDependenciesSchemaVsStringList(t *testing.T) {
	s := decode(t, `{"dependencies":{"a":["b","c"],"d":{"type":"object"}}}`)

	require.Contains(t, s.Dependencies, "a")
	assert.Equal(t, []string{"b", "c"}, s.Dependencies["a"].Required)
	assert.Nil(t, s.Dependencies["a"].Schema)

	require.Contains(t, s.Dependencies, "d")
	assert.NotNil(t, s.Dependencies["d"].Schema)
}

func TestPropertiesPreservesOrder(t *testing.T) {
	s := decode(t, `{"properties":{"b":true,"a":true,"c":true}}`)
	assert.Equal(t, []string{"b", "a", "c"}, s.PropertyOrder)
}

func TestConstDistinguishesAbsentFromNull(t *testing.T) {
	absent := decode(t, `{}`)
	null := decode(t, `{"const":null}`)

	assert.Nil(t, absent.Const)
	require.NotNil(t, null.Const)
	assert.Nil(t, null.Const.Value)
}

func TestPatternPropertiesOrdered(t *testing.T) {
	s := decode(t, `{"patternProperties":{"^a":true,"^b":true}}`)
	require.Len(t, s.PatternProperties, 2)
	assert.Equal(t, "^a", s.PatternProperties[0].Pattern)
	assert.Equal(t, "^b", s.PatternProperties[1].Pattern)
}
