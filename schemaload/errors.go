package schemaload

import "errors"

// ErrEmptyDocument is returned when the schema source contains no
// bytes at all, distinct from a syntactically invalid one (which
// surfaces as a wrapped decode error instead).
var ErrEmptyDocument = errors.New("schemaload: schema document is empty")
