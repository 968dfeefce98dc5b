package schemaload_test

import (
	"errors"
	"testing"

	"github.com/kaptinlin/astschema/schemaload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromJSON(t *testing.T) {
	s, err := schemaload.FromJSON([]byte(`{"type":"object","required":["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"object"}, s.Type)
	assert.Equal(t, []string{"a"}, s.Required)
}

func TestFromYAML(t *testing.T) {
	src := "type: object\nrequired:\n  - a\n  - b\nproperties:\n  a:\n    type: string\n"
	s, err := schemaload.FromYAML([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"object"}, s.Type)
	assert.Equal(t, []string{"a", "b"}, s.Required)
	require.Contains(t, s.Properties, "a")
	assert.Equal(t, []string{"string"}, s.Properties["a"].Type)
}

func TestFromYAMLBooleanSchema(t *testing.T) {
	s, err := schemaload.FromYAML([]byte("false\n"))
	require.NoError(t, err)
	assert.True(t, s.IsFalse())
}

func TestFromJSONEmptyDocument(t *testing.T) {
	_, err := schemaload.FromJSON(nil)
	assert.True(t, errors.Is(err, schemaload.ErrEmptyDocument))
}

func TestFromYAMLEmptyDocument(t *testing.T) {
	_, err := schemaload.FromYAML(nil)
	assert.True(t, errors.Is(err, schemaload.ErrEmptyDocument))
}
