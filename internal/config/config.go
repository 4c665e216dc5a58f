package config

import (
	"os"
	"time"
)

// Config holds the CLI configuration. Values come from environment
// variables and serve as defaults for the command-line flags.
type Config struct {
	Endpoint string        `json:"endpoint"`
	Timeout  time.Duration `json:"timeout"`
	Format   string        `json:"format"`
	LogLevel string        `json:"log_level"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		Endpoint: getEnvStr("IPQUERY_ENDPOINT", "https://api.ipquery.io/"),
		Timeout:  getEnvDuration("IPQUERY_TIMEOUT", 30*time.Second),
		Format:   getEnvStr("IPQUERY_FORMAT", "json"),
		LogLevel: getEnvStr("LOG_LEVEL", "info"),
	}

	return cfg
}

// getEnvStr gets string value from environment variable with default
func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets duration value from environment variable with default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
