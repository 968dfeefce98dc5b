package validate_test

import (
	"testing"

	jsonenc "github.com/goccy/go-json"
	"github.com/kaptinlin/astschema/ast"
	"github.com/kaptinlin/astschema/collector"
	"github.com/kaptinlin/astschema/jsonsource"
	"github.com/kaptinlin/astschema/result"
	"github.com/kaptinlin/astschema/schema"
	"github.com/kaptinlin/astschema/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) *ast.Node {
	t.Helper()
	root, err := jsonsource.Parse([]byte(doc))
	require.NoError(t, err)
	return root
}

func mustSchema(t *testing.T, src string) *schema.Schema {
	t.Helper()
	var s schema.Schema
	require.NoError(t, jsonenc.Unmarshal([]byte(src), &s))
	return &s
}

func runNoOp(t *testing.T, doc, schemaSrc string) *result.ValidationResult {
	t.Helper()
	root := mustParse(t, doc)
	s := mustSchema(t, schemaSrc)
	res := result.New()
	validate.Validate(root, s, res, collector.Instance, 0)
	return res
}

func TestScenarioIncorrectType(t *testing.T) {
	res := runNoOp(t, `{"x": 1}`, `{"type":"object","properties":{"x":{"type":"string"}}}`)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, `Incorrect type. Expected "string".`, res.Problems[0].Message)
}

func TestScenarioRequiredAndAdditionalProperties(t *testing.T) {
	res := runNoOp(t, `{"x": 1, "y": 2}`, `{"type":"object","required":["z"],"additionalProperties":false}`)
	var missing, notAllowed int
	for _, p := range res.Problems {
		switch {
		case p.Message == `Missing property "z".`:
			missing++
		case p.Message == `Property "x" is not allowed.` || p.Message == `Property "y" is not allowed.`:
			notAllowed++
		}
	}
	assert.Equal(t, 1, missing)
	assert.Equal(t, 2, notAllowed)
}

func TestScenarioAnyOfPicksBestBranch(t *testing.T) {
	res := runNoOp(t, `5`, `{"anyOf":[{"type":"string"},{"type":"number","minimum":10}]}`)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, "Value is below the minimum of 10.", res.Problems[0].Message)
}

func TestScenarioEnumMismatch(t *testing.T) {
	res := runNoOp(t, `"abc"`, `{"enum":["x","y"]}`)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, result.EnumValueMismatch, res.Problems[0].Code)
	assert.Contains(t, res.Problems[0].Message, `"x"`)
	assert.Contains(t, res.Problems[0].Message, `"y"`)
}

func TestScenarioMergeKeyInjectsProperties(t *testing.T) {
	res := runNoOp(t, `{"<<": {"a":1}, "b":2}`, `{"type":"object","required":["a","b"]}`)
	assert.Empty(t, res.Problems)
}

func TestScenarioArrayDuplicatesAndTooFew(t *testing.T) {
	res := runNoOp(t, `[1,2,2]`, `{"type":"array","uniqueItems":true,"minItems":4}`)
	var dup, tooFew bool
	for _, p := range res.Problems {
		if p.Message == "Array has duplicate items." {
			dup = true
		}
		if p.Message == "Array has too few items. Expected 4 or more." {
			tooFew = true
		}
	}
	assert.True(t, dup)
	assert.True(t, tooFew)
}

func TestOneOfExactlyOneCleanMatch(t *testing.T) {
	res := runNoOp(t, `"x"`, `{"oneOf":[{"type":"string"},{"type":"number"}]}`)
	assert.Empty(t, res.Problems)
}

func TestOneOfMultipleMatchesWarns(t *testing.T) {
	res := runNoOp(t, `5`, `{"oneOf":[{"type":"number"},{"minimum":0}]}`)
	require.NotEmpty(t, res.Problems)
	found := false
	for _, p := range res.Problems {
		if p.Message == "Matches multiple schemas when only one must validate." {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNotRejectsMatchingValue(t *testing.T) {
	res := runNoOp(t, `"x"`, `{"not":{"type":"string"}}`)
	require.Len(t, res.Problems, 1)
}

func TestDeepEqualUniqueItemsObjects(t *testing.T) {
	res := runNoOp(t, `[{"a":1},{"a":1}]`, `{"type":"array","uniqueItems":true}`)
	require.Len(t, res.Problems, 1)
	assert.Equal(t, "Array has duplicate items.", res.Problems[0].Message)
}

func TestValidateTwiceIsIdempotent(t *testing.T) {
	root := mustParse(t, `{"x": 1}`)
	s := mustSchema(t, `{"type":"object","properties":{"x":{"type":"string"}}}`)

	first := result.New()
	validate.Validate(root, s, first, collector.Instance, 0)
	second := result.New()
	validate.Validate(root, s, second, collector.Instance, 0)

	assert.Equal(t, first.Problems, second.Problems)
}
