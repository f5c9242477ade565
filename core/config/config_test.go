package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ornithe-meta/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Meta.LatestGeneration)
	assert.Equal(t, 2, cfg.Meta.StableGeneration)
	assert.Equal(t, 8, cfg.Meta.FetchWorkers)
	assert.Equal(t, 60, cfg.Meta.RefreshIntervalSeconds)
	assert.Equal(t, "https://maven.ornithemc.net/releases/", cfg.Meta.OrnitheMavenURL)
	assert.Equal(t, "auto", cfg.Meta.IntermediaryStability)
	assert.True(t, cfg.Meta.WatchOverrides)
	assert.Equal(t, 20, cfg.Maven.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Maven.MaxRetries)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "ornithe-meta", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "ornithe-meta", cfg.Log.Service)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("META_LATEST_GENERATION", "4")
	t.Setenv("META_FETCH_WORKERS", "2")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Meta.LatestGeneration)
	assert.Equal(t, 2, cfg.Meta.FetchWorkers)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("META_STABLE_GENERATION=1\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("META_STABLE_GENERATION")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Meta.StableGeneration)
	assert.Equal(t, "console", cfg.Log.Format)
}
