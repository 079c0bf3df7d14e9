package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pantrypal/core/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test; t.Setenv restores the previous values.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "ENVIRONMENT", "ALLOWED_ORIGINS", "SERVER_PORT", "SERVER_SHUTDOWN_TIMEOUT_SECONDS",
		"LOG_LEVEL", "DATABASE_ENABLED", "DATABASE_DRIVER", "DATABASE_PORT", "STORAGE_ENABLED", "STORAGE_BUCKET")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:19006"}, cfg.Origins())
	assert.Equal(t, strings.Join(server.DefaultOrigins, ","), cfg.AllowedOrigins)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "pantrypal", cfg.Storage.Bucket)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
}

func TestLoadConfig_EmptyValues(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Environment)
	assert.Empty(t, cfg.Origins())
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Unset so the .env values are picked up
	unsetEnv(t, "ENVIRONMENT", "LOG_FORMAT")

	dir := t.TempDir()
	content := "ENVIRONMENT=production\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("ENVIRONMENT")
		_ = os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "json", cfg.Log.Format)
}
