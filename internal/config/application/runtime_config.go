package application

import (
	"os"
	"strings"
)

// RuntimeConfig holds all runtime configuration from CLI flags, environment variables, and .env file
type RuntimeConfig struct {
	// API Configuration
	APIPort string

	// Development Mode
	DevMode bool

	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Database Configuration
	DBPath string
}

// LoadRuntimeConfig loads configuration with precedence: CLI flags > env vars > .env file > defaults
func LoadRuntimeConfig(port, logLevel, logFormat, logOutput, dbPath string, devMode bool) *RuntimeConfig {
	cfg := &RuntimeConfig{
		APIPort:   getValue(port, "MUSCAT_API_PORT", "8080"),
		DevMode:   devMode || getBoolEnv("MUSCAT_DEV_MODE", false),
		LogLevel:  getValue(logLevel, "MUSCAT_LOG_LEVEL", "INFO"),
		LogFormat: getValue(logFormat, "MUSCAT_LOG_FORMAT", "text"),
		LogOutput: getValue(logOutput, "MUSCAT_LOG_OUTPUT", "stdout"),
		DBPath:    getValue(dbPath, "MUSCAT_DB_PATH", "music_catalog.db"),
	}

	return cfg
}

// getValue returns the first non-empty value from CLI flag, env var, or default
func getValue(cliValue, envKey, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolEnv gets a boolean environment variable
func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "true" || value == "1" || value == "yes" {
		return true
	}
	if value == "false" || value == "0" || value == "no" {
		return false
	}
	return defaultValue
}

// Validate checks that required configuration is present
func (c *RuntimeConfig) Validate() error {
	if c.APIPort == "" {
		return &ConfigError{Field: "port", Message: "API port is required (set MUSCAT_API_PORT or use --port flag)"}
	}
	if c.DBPath == "" {
		return &ConfigError{Field: "db", Message: "Database path is required (set MUSCAT_DB_PATH or use --db flag)"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}
