package docpack

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 100, config.CacheMaxSize)
	assert.Equal(t, time.Duration(0), config.CacheTTL)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.StrictMode)
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("DOCPACK_CACHE_MAX_SIZE", "7")
	t.Setenv("DOCPACK_CACHE_TTL", "30s")
	t.Setenv("DOCPACK_LOG_LEVEL", "debug")
	t.Setenv("DOCPACK_STRICT_MODE", "true")

	config := ConfigFromEnvironment()
	assert.Equal(t, 7, config.CacheMaxSize)
	assert.Equal(t, 30*time.Second, config.CacheTTL)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.StrictMode)
}

func TestConfigFromEnvironment_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("DOCPACK_CACHE_MAX_SIZE", "not-a-number")
	t.Setenv("DOCPACK_CACHE_TTL", "-5s")

	config := ConfigFromEnvironment()
	assert.Equal(t, 100, config.CacheMaxSize)
	assert.Equal(t, time.Duration(0), config.CacheTTL)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docpack.yaml")
	content := []byte("cache_max_size: 12\ncache_ttl: 1m\nlog_level: warn\nstrict_mode: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, config.CacheMaxSize)
	assert.Equal(t, time.Minute, config.CacheTTL)
	assert.Equal(t, "warn", config.LogLevel)
	assert.True(t, config.StrictMode)
}

func TestLoadConfigFile_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: error\n"), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
	assert.Equal(t, 100, config.CacheMaxSize)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSetGlobalConfig(t *testing.T) {
	original := GetGlobalConfig()
	defer SetGlobalConfig(original)

	SetGlobalConfig(&Config{CacheMaxSize: 3, LogLevel: "error"})
	config := GetGlobalConfig()
	assert.Equal(t, 3, config.CacheMaxSize)
	assert.Equal(t, "error", config.LogLevel)

	// GetGlobalConfig hands out copies; mutating one does not affect the
	// global state.
	config.CacheMaxSize = 99
	assert.Equal(t, 3, GetGlobalConfig().CacheMaxSize)
}
