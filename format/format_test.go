package format_test

import (
	"testing"

	"github.com/kaptinlin/astschema/format"
	"github.com/stretchr/testify/assert"
)

func TestURIEmptyAndScheme(t *testing.T) {
	assert.NotEmpty(t, format.Validate("uri", ""))
	assert.NotEmpty(t, format.Validate("uri", "/just/a/path"))
	assert.Empty(t, format.Validate("uri", "https://example.com/x"))
}

func TestURIReferenceAllowsNoScheme(t *testing.T) {
	assert.Empty(t, format.Validate("uri-reference", "/just/a/path"))
	assert.NotEmpty(t, format.Validate("uri-reference", ""))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, format.Validate("email", "a.b@example.com"))
	assert.NotEmpty(t, format.Validate("email", "not-an-email"))
}

func TestColorHex(t *testing.T) {
	for _, ok := range []string{"#abc", "#abcd", "#aabbcc", "#aabbccdd", "#ABC"} {
		assert.Emptyf(t, format.Validate("color-hex", ok), "expected %q to be valid", ok)
	}
	for _, bad := range []string{"abc", "#ab", "#abcde", "#ggg"} {
		assert.NotEmptyf(t, format.Validate("color-hex", bad), "expected %q to be invalid", bad)
	}
}

func TestKnownAndUnknownFormat(t *testing.T) {
	assert.True(t, format.Known("uri"))
	assert.False(t, format.Known("date-time"))
	assert.Empty(t, format.Validate("date-time", "garbage"))
}
