package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOr(t *testing.T) {
	t.Setenv("TEST_ENV_OR_SET", "custom")

	assert.Equal(t, "custom", envOr("TEST_ENV_OR_SET", "fallback"))
	assert.Equal(t, "fallback", envOr("TEST_ENV_OR_UNSET", "fallback"))
}

func TestLoadDBConfig_Defaults(t *testing.T) {
	cfg := LoadDBConfig()

	assert.NotEmpty(t, cfg.Host)
	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.SSLMode)
}
