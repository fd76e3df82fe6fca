package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.ListenAddr)
	assert.Equal(t, 12, cfg.GridSize)
	assert.False(t, cfg.Debug)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("SKIRMISH_LISTEN", "0.0.0.0:7777")
	t.Setenv("SKIRMISH_GRID_SIZE", "16")
	t.Setenv("SKIRMISH_DEBUG", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7777", cfg.ListenAddr)
	assert.Equal(t, 16, cfg.GridSize)
	assert.True(t, cfg.Debug)
}

func TestConfigRejectsGarbage(t *testing.T) {
	t.Setenv("SKIRMISH_GRID_SIZE", "not-a-number")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}
