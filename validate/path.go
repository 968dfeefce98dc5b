package validate

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
)

// childPath appends a single JSON-Pointer token to base, escaping it
// per RFC 6901 (via jsonpointer.Escape) so property names containing
// "/" or "~" round-trip through ApplicableSchema.SchemaPath correctly.
func childPath(base, token string) string {
	return base + "/" + jsonpointer.Escape(token)
}

// indexPath appends a numeric JSON-Pointer token (an array/tuple
// index) to base.
func indexPath(base string, index int) string {
	return base + "/" + strconv.Itoa(index)
}
