package docpack

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains all configuration options for the docpack library
type Config struct {
	// CacheMaxSize is the maximum number of packages to cache. 0 disables caching.
	CacheMaxSize int
	// CacheTTL is the time-to-live for cached packages. 0 means no expiration.
	CacheTTL time.Duration
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// StrictMode makes malformed package metadata an error instead of a warning
	StrictMode bool
}

// configFile is the YAML shape of a configuration file. Durations are
// given in Go duration syntax ("30s", "5m").
type configFile struct {
	CacheMaxSize *int    `yaml:"cache_max_size"`
	CacheTTL     *string `yaml:"cache_ttl"`
	LogLevel     *string `yaml:"log_level"`
	StrictMode   *bool   `yaml:"strict_mode"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		CacheMaxSize: 100,
		CacheTTL:     0,
		LogLevel:     "info",
		StrictMode:   false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables,
// falling back to defaults for anything unset
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if v := os.Getenv("DOCPACK_CACHE_MAX_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size >= 0 {
			config.CacheMaxSize = size
		}
	}
	if v := os.Getenv("DOCPACK_CACHE_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil && ttl >= 0 {
			config.CacheTTL = ttl
		}
	}
	if v := os.Getenv("DOCPACK_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("DOCPACK_STRICT_MODE"); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			config.StrictMode = strict
		}
	}

	return config
}

// LoadConfigFile reads a YAML configuration file, applying its values over
// the defaults
func LoadConfigFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var file configFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := DefaultConfig()
	if file.CacheMaxSize != nil && *file.CacheMaxSize >= 0 {
		config.CacheMaxSize = *file.CacheMaxSize
	}
	if file.CacheTTL != nil {
		ttl, err := time.ParseDuration(*file.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: invalid cache_ttl: %w", err)
		}
		config.CacheTTL = ttl
	}
	if file.LogLevel != nil {
		config.LogLevel = *file.LogLevel
	}
	if file.StrictMode != nil {
		config.StrictMode = *file.StrictMode
	}
	return config, nil
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	if globalConfig == nil {
		return DefaultConfig()
	}
	cfg := *globalConfig
	return &cfg
}

// SetGlobalConfig replaces the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	if config == nil {
		config = DefaultConfig()
	}
	globalConfig = config
	globalConfigMutex.Unlock()
	UpdateLoggerFromConfig()
}
