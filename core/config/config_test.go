package config_test

import (
	"testing"

	"rune-forge/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "gamedata", cfg.Storage.Bucket)
	assert.Equal(t, "default", cfg.Forge.Profile)
	assert.Equal(t, "gamedata/items.json", cfg.Forge.CatalogObject)
	assert.Equal(t, "gamedata/forge.json", cfg.Forge.ConfigObject)
	assert.Equal(t, 1, cfg.Forge.CleanupDelaySeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FORGE_PROFILE", "hardcore")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "hardcore", cfg.Forge.Profile)
	assert.Equal(t, "debug", cfg.Log.Level)
}
