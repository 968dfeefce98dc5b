// Package logging wraps charm.land/log/v2 with the defaults for this
// module's logging. cmd/astschema is its only importer; the parser and
// schema-loading packages (yamlsource, jsonsource, schemaload) do not
// log, and the pure validate/result/collector/ast packages never import
// this — they stay silent and side-effect-free.
package logging

import (
	"os"

	charmlog "charm.land/log/v2"
)

// Default is the package-level logger every ambient component logs
// through, writing structured key-value fields to stderr.
var Default = charmlog.New(os.Stderr)

// SetLevelFromEnv promotes Default's level based on the ASTSCHEMA_LOG
// environment variable ("debug", "info", "warn", "error"); an empty or
// unrecognized value leaves the level unchanged.
func SetLevelFromEnv() {
	level, err := charmlog.ParseLevel(os.Getenv("ASTSCHEMA_LOG"))
	if err != nil {
		return
	}
	Default.SetLevel(level)
}

// With returns a child logger carrying the given key-value fields,
// the way MacroPower-x's command handlers scope a logger per
// subcommand invocation.
func With(keyvals ...any) *charmlog.Logger {
	return Default.With(keyvals...)
}
