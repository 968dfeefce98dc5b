package main

import (
	"testing"

	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentDispatchesByExtension(t *testing.T) {
	root, err := parseDocument("doc.json", []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, ast.KindObject, root.Kind)

	root, err = parseDocument("doc.yaml", []byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, ast.KindObject, root.Kind)

	root, err = parseDocument("doc.yml", []byte("a: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, ast.KindObject, root.Kind)
}

func TestParseSchemaDispatchesByExtension(t *testing.T) {
	s, err := parseSchema("schema.json", []byte(`{"type":"string"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, s.Type)

	s, err = parseSchema("schema.yaml", []byte("type: string\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"string"}, s.Type)
}

func TestPromoteSeverityOnlyAppliesToError(t *testing.T) {
	problems := []result.Diagnostic{
		{Message: "a", Severity: result.Warning},
		{Message: "b", Severity: result.Info},
	}

	promoteSeverity(problems, "warning")
	assert.Equal(t, result.Warning, problems[0].Severity)
	assert.Equal(t, result.Info, problems[1].Severity)

	promoteSeverity(problems, "error")
	assert.Equal(t, result.Error, problems[0].Severity)
	assert.Equal(t, result.Info, problems[1].Severity, "only Warning is promoted, other severities are left alone")
}

func TestSeverityLabelCoversEverySeverity(t *testing.T) {
	for _, sev := range []result.Severity{result.Warning, result.Error, result.Info, result.Hint} {
		assert.NotEmpty(t, severityLabel(sev))
	}
}
