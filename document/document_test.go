package document_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/document"
	"github.com/kaptinlin/astschema/jsonsource"
	"github.com/kaptinlin/astschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDoc(t *testing.T, src string) *document.Document {
	t.Helper()
	root, err := jsonsource.Parse([]byte(src))
	require.NoError(t, err)
	return document.New(root)
}

func buildSchema(t *testing.T, src string) *schema.Schema {
	t.Helper()
	var s schema.Schema
	require.NoError(t, json.Unmarshal([]byte(src), &s))
	return &s
}

func TestValidateReturnsProblems(t *testing.T) {
	doc := buildDoc(t, `{"x": 1}`)
	s := buildSchema(t, `{"type":"object","properties":{"x":{"type":"string"}}}`)

	problems := doc.Validate(s)
	require.Len(t, problems, 1)
	assert.Equal(t, `Incorrect type. Expected "string".`, problems[0].Message)
}

func TestGetMatchingSchemasFocusOffset(t *testing.T) {
	doc := buildDoc(t, `{"x": "a", "y": 1}`)
	s := buildSchema(t, `{"type":"object","properties":{"x":{"type":"string"},"y":{"type":"number"}}}`)

	xNode := doc.Root.Properties[0].Value
	records := doc.GetMatchingSchemas(s, int64(xNode.Offset), nil)

	for _, rec := range records {
		assert.True(t, rec.Node.Contains(xNode.Offset) || rec.Node == doc.Root)
	}
}

func TestGetMatchingSchemasReportsSchemaPath(t *testing.T) {
	doc := buildDoc(t, `{"x": "a"}`)
	s := buildSchema(t, `{"type":"object","properties":{"x":{"type":"string"}}}`)

	records := doc.GetMatchingSchemas(s, -1, nil)

	var paths []string
	for _, rec := range records {
		paths = append(paths, rec.SchemaPath)
	}
	assert.Contains(t, paths, "")
	assert.Contains(t, paths, "/properties/x")
}

func TestOffsetMapsToLineAndColumn(t *testing.T) {
	src := []byte("{\n  \"x\": 1\n}")
	root, err := jsonsource.Parse(src)
	require.NoError(t, err)
	doc := document.NewWithSource(root, src)

	xValue := root.Properties[0].Value
	line, column := doc.Offset(xValue)
	assert.Equal(t, 2, line)
	assert.Equal(t, 8, column)
}

func TestOffsetWithoutSourceDefaultsToOne(t *testing.T) {
	doc := buildDoc(t, `{"x": 1}`)
	line, column := doc.Offset(doc.Root)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, column)
}

func TestGetNodeAtOffsetAndVisit(t *testing.T) {
	doc := buildDoc(t, `{"x": 1}`)
	node, ok := doc.GetNodeAtOffset(doc.Root.Properties[0].Value.Offset, false)
	require.True(t, ok)
	assert.Equal(t, doc.Root.Properties[0].Value, node)

	var kinds []string
	doc.Visit(func(n *ast.Node) bool {
		kinds = append(kinds, n.Kind.String())
		return true
	})
	assert.Contains(t, kinds, "object")
	assert.Contains(t, kinds, "number")
}
