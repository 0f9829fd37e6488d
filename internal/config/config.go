package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	GroqEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	OpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
)

type Config struct {
	// Server
	Port       string
	CORSOrigin string

	// Upstream credentials, first present wins
	GroqAPIKey   string
	OpenAIAPIKey string

	GroqEndpoint   string
	OpenAIEndpoint string

	DefaultModel     string
	DefaultMaxTokens int
	Temperature      float64
	UpstreamTimeout  time.Duration

	// Diagnostics
	LogFile string
}

// Load reads the process environment once, after merging a .env file if one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnvOrDefault("PORT", "5174"),
		CORSOrigin:       getEnvOrDefault("CORS_ORIGIN", "*"),
		GroqAPIKey:       os.Getenv("GROQ_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		GroqEndpoint:     GroqEndpoint,
		OpenAIEndpoint:   OpenAIEndpoint,
		DefaultModel:     getEnvOrDefault("DEFAULT_MODEL", "llama-3.1-8b-instant"),
		DefaultMaxTokens: 512,
		Temperature:      0.15,
		UpstreamTimeout:  time.Duration(getEnvAsIntOrDefault("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		LogFile:          getEnvOrDefault("LOG_FILE", "server.log"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
