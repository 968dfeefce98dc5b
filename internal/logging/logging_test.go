package logging_test

import (
	"testing"

	"github.com/kaptinlin/astschema/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestDefaultIsUsable(t *testing.T) {
	assert.NotNil(t, logging.Default)
}

func TestSetLevelFromEnvIgnoresUnknownValues(t *testing.T) {
	t.Setenv("ASTSCHEMA_LOG", "not-a-real-level")
	assert.NotPanics(t, logging.SetLevelFromEnv)
}

func TestSetLevelFromEnvAcceptsKnownLevel(t *testing.T) {
	t.Setenv("ASTSCHEMA_LOG", "debug")
	assert.NotPanics(t, logging.SetLevelFromEnv)
}

func TestWithReturnsChildLogger(t *testing.T) {
	child := logging.With("component", "test")
	assert.NotNil(t, child)
}
