package config

import (
	"os"
	"testing"
	"time"
)

// clearConfigEnvVars removes all environment variables the config reads
func clearConfigEnvVars() {
	envVars := []string{
		"IPQUERY_ENDPOINT",
		"IPQUERY_TIMEOUT",
		"IPQUERY_FORMAT",
		"LOG_LEVEL",
	}

	for _, key := range envVars {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear all environment variables that could affect the config
	clearConfigEnvVars()

	cfg := LoadConfig()

	// Test default values
	tests := []struct {
		name     string
		actual   interface{}
		expected interface{}
	}{
		{"Endpoint", cfg.Endpoint, "https://api.ipquery.io/"},
		{"Timeout", cfg.Timeout, 30 * time.Second},
		{"Format", cfg.Format, "json"},
		{"LogLevel", cfg.LogLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %s to be %v, got %v", tt.name, tt.expected, tt.actual)
			}
		})
	}
}

func TestLoadConfig_WithEnvironmentVariables(t *testing.T) {
	// Clear environment first
	clearConfigEnvVars()

	// Set test environment variables
	envVars := map[string]string{
		"IPQUERY_ENDPOINT": "https://ipquery.example.com/",
		"IPQUERY_TIMEOUT":  "5s",
		"IPQUERY_FORMAT":   "table",
		"LOG_LEVEL":        "debug",
	}

	// Set environment variables
	for key, value := range envVars {
		if err := os.Setenv(key, value); err != nil {
			t.Fatalf("Failed to set environment variable %s: %v", key, err)
		}
	}
	defer clearConfigEnvVars()

	cfg := LoadConfig()

	// Test environment variable values
	tests := []struct {
		name     string
		actual   interface{}
		expected interface{}
	}{
		{"Endpoint", cfg.Endpoint, "https://ipquery.example.com/"},
		{"Timeout", cfg.Timeout, 5 * time.Second},
		{"Format", cfg.Format, "table"},
		{"LogLevel", cfg.LogLevel, "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %s to be %v, got %v", tt.name, tt.expected, tt.actual)
			}
		})
	}
}

func TestGetEnvStr(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "Environment variable exists",
			envKey:       "TEST_STRING",
			envValue:     "custom_value",
			defaultValue: "default_value",
			expected:     "custom_value",
		},
		{
			name:         "Environment variable empty",
			envKey:       "TEST_STRING_EMPTY",
			envValue:     "",
			defaultValue: "default_value",
			expected:     "default_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.Unsetenv(tt.envKey); err != nil {
				t.Fatalf("Failed to unset environment variable %s: %v", tt.envKey, err)
			}

			if tt.envValue != "" {
				if err := os.Setenv(tt.envKey, tt.envValue); err != nil {
					t.Fatalf("Failed to set environment variable %s: %v", tt.envKey, err)
				}
				defer os.Unsetenv(tt.envKey)
			}

			if got := getEnvStr(tt.envKey, tt.defaultValue); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue time.Duration
		expected     time.Duration
	}{
		{
			name:         "Valid duration",
			envKey:       "TEST_DURATION",
			envValue:     "90s",
			defaultValue: 30 * time.Second,
			expected:     90 * time.Second,
		},
		{
			name:         "Invalid duration falls back to default",
			envKey:       "TEST_DURATION_INVALID",
			envValue:     "not-a-duration",
			defaultValue: 30 * time.Second,
			expected:     30 * time.Second,
		},
		{
			name:         "Environment variable not set",
			envKey:       "TEST_DURATION_NOTSET",
			envValue:     "",
			defaultValue: 30 * time.Second,
			expected:     30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.Unsetenv(tt.envKey); err != nil {
				t.Fatalf("Failed to unset environment variable %s: %v", tt.envKey, err)
			}

			if tt.envValue != "" {
				if err := os.Setenv(tt.envKey, tt.envValue); err != nil {
					t.Fatalf("Failed to set environment variable %s: %v", tt.envKey, err)
				}
				defer os.Unsetenv(tt.envKey)
			}

			if got := getEnvDuration(tt.envKey, tt.defaultValue); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
