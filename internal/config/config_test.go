package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "RELAY_TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "RELAY_TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.envValue)

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{"valid int", "42", 42},
		{"empty uses default", "", 15},
		{"invalid uses default", "abc", 15},
		{"non-positive uses default", "0", 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("RELAY_TEST_INT", tc.envValue)

			result := getEnvAsIntOrDefault("RELAY_TEST_INT", 15)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GROQ_API_KEY", "OPENAI_API_KEY", "DEFAULT_MODEL", "UPSTREAM_TIMEOUT_SECONDS", "LOG_FILE", "CORS_ORIGIN"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "5174" {
		t.Errorf("Expected port 5174, got %q", cfg.Port)
	}
	if cfg.DefaultModel != "llama-3.1-8b-instant" {
		t.Errorf("Unexpected default model %q", cfg.DefaultModel)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("Expected 15s timeout, got %v", cfg.UpstreamTimeout)
	}
	if cfg.DefaultMaxTokens != 512 || cfg.Temperature != 0.15 {
		t.Errorf("Unexpected shaping defaults: %d %v", cfg.DefaultMaxTokens, cfg.Temperature)
	}
	if cfg.LogFile != "server.log" {
		t.Errorf("Unexpected log file %q", cfg.LogFile)
	}
	if cfg.GroqAPIKey != "" || cfg.OpenAIAPIKey != "" {
		t.Error("Expected no credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "3")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %q", cfg.Port)
	}
	if cfg.GroqAPIKey != "gsk-test" {
		t.Errorf("Expected groq key, got %q", cfg.GroqAPIKey)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %v", cfg.UpstreamTimeout)
	}
}
