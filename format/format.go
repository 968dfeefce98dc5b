// Package format implements the "format" string-keyword validators:
// uri, uri-reference, email, and color-hex. Any other format name is
// ignored by the caller (see validate.string.go).
package format

import (
	"fmt"
	"net/url"
	"regexp"
)

// colorHexPattern and emailPattern are the bit-identical canonical
// patterns required for cross-implementation conformance.
var (
	colorHexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3,4}|([0-9A-Fa-f]{2}){3,4})$`)
	emailPattern    = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
)

// Known reports whether name is one of the four recognized formats.
func Known(name string) bool {
	switch name {
	case "uri", "uri-reference", "email", "color-hex":
		return true
	default:
		return false
	}
}

// Validate checks value against the named format, returning an empty
// string on success or a human-readable problem description on
// failure. Unknown formats always succeed (empty string) — the caller
// is expected to have already checked Known if it wants to skip
// unrecognized formats entirely.
func Validate(name, value string) string {
	switch name {
	case "uri":
		return validateURI(value, true)
	case "uri-reference":
		return validateURI(value, false)
	case "email":
		return validateEmail(value)
	case "color-hex":
		return validateColorHex(value)
	default:
		return ""
	}
}

func validateURI(value string, requireScheme bool) string {
	if value == "" {
		return "URI expected."
	}
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Sprintf("URI error: %s", err.Error())
	}
	if requireScheme && u.Scheme == "" {
		return "URI with a scheme is expected."
	}
	return ""
}

func validateEmail(value string) string {
	if !emailPattern.MatchString(value) {
		return "Email address expected."
	}
	return ""
}

func validateColorHex(value string) string {
	if !colorHexPattern.MatchString(value) {
		return "Invalid color format. Expected #RGB, #RGBA, #RRGGBB or #RRGGBBAA."
	}
	return ""
}
