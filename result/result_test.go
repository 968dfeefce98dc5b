package result_test

import (
	"testing"

	"github.com/kaptinlin/astschema/result"
	"github.com/stretchr/testify/assert"
)

func TestCompareNoProblemsBeatsProblems(t *testing.T) {
	clean := result.New()
	dirty := result.New()
	dirty.AddProblem(result.Diagnostic{Message: "bad"})

	assert.Positive(t, clean.Compare(dirty))
	assert.Negative(t, dirty.Compare(clean))
	assert.Zero(t, clean.Compare(result.New()))
}

func TestCompareAntisymmetricAndReflexive(t *testing.T) {
	a := result.New()
	a.PropertiesMatches = 3
	b := result.New()
	b.PropertiesMatches = 1

	assert.Equal(t, a.Compare(b), -b.Compare(a))
	assert.Zero(t, a.Compare(a))
}

func TestCompareOrderOfPrecedence(t *testing.T) {
	enumWin := result.New()
	enumWin.EnumValueMatch = true
	propsWin := result.New()
	propsWin.PropertiesMatches = 100

	// enumValueMatch outranks propertiesMatches regardless of magnitude.
	assert.Positive(t, enumWin.Compare(propsWin))
}

func TestMergeAppendsProblems(t *testing.T) {
	a := result.New()
	a.AddProblem(result.Diagnostic{Message: "one"})
	b := result.New()
	b.AddProblem(result.Diagnostic{Message: "two"})

	a.Merge(b)
	assert.Len(t, a.Problems, 2)
	assert.Equal(t, "two", a.Problems[1].Message)
}

func TestMergePropertyMatchCleanChildBumpsValueMatches(t *testing.T) {
	parent := result.New()
	child := result.New()
	child.PropertiesMatches = 1 // child itself matched something

	parent.MergePropertyMatch(child)

	assert.Equal(t, uint32(1), parent.PropertiesMatches)
	assert.Equal(t, uint32(1), parent.PropertiesValueMatches)
	assert.Zero(t, parent.PrimaryValueMatches)
}

func TestMergePropertyMatchDirtyChildNoValueMatch(t *testing.T) {
	parent := result.New()
	child := result.New()
	child.AddProblem(result.Diagnostic{Message: "bad"})

	parent.MergePropertyMatch(child)

	assert.Equal(t, uint32(1), parent.PropertiesMatches)
	assert.Zero(t, parent.PropertiesValueMatches)
}

func TestMergePropertyMatchEnumPrimaryValue(t *testing.T) {
	parent := result.New()
	child := result.New()
	child.EnumValueMatch = true
	child.EnumValues = []any{"only"}

	parent.MergePropertyMatch(child)

	assert.Equal(t, uint32(1), parent.PropertiesValueMatches)
	assert.Equal(t, uint32(1), parent.PrimaryValueMatches)
}

func TestScoreMonotonicity(t *testing.T) {
	parent := result.New()
	before := parent.PropertiesMatches
	beforeValue := parent.PropertiesValueMatches

	child := result.New()
	child.PropertiesMatches = 1
	parent.MergePropertyMatch(child)

	assert.GreaterOrEqual(t, parent.PropertiesMatches, before)
	assert.GreaterOrEqual(t, parent.PropertiesValueMatches, beforeValue)
}

func TestMergeEnumValuesUnionsAndRewritesMessage(t *testing.T) {
	a := result.New()
	a.EnumValues = []any{"x", "y"}
	a.AddProblem(result.Diagnostic{Code: result.EnumValueMismatch, Message: "stale"})

	b := result.New()
	b.EnumValues = []any{"z"}

	a.MergeEnumValues(b)

	assert.Len(t, a.EnumValues, 3)
	assert.Contains(t, a.Problems[0].Message, `"z"`)
}

func TestCompareTypeMismatchTiebreaker(t *testing.T) {
	wrongType := result.New()
	wrongType.TypeMismatches = 1
	wrongType.AddProblem(result.Diagnostic{Message: "bad type"})

	rightTypeBadValue := result.New()
	rightTypeBadValue.AddProblem(result.Diagnostic{Message: "bad value"})

	assert.Positive(t, rightTypeBadValue.Compare(wrongType))
	assert.Negative(t, wrongType.Compare(rightTypeBadValue))
}

func TestMergeEnumValuesNoopWhenEitherMatched(t *testing.T) {
	a := result.New()
	a.EnumValueMatch = true
	a.EnumValues = []any{"x"}
	b := result.New()
	b.EnumValues = []any{"y"}

	a.MergeEnumValues(b)

	assert.Len(t, a.EnumValues, 1)
}
