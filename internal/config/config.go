package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds process configuration read from the environment.
type Config struct {
	DatabaseURL   string
	Port          string
	OllamaHost    string
	OllamaModel   string
	OllamaTimeout time.Duration
	LogFormat     string
}

// Load reads a .env file when present and assembles the runtime
// configuration from the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getenv("APP_PORT", "8080"),
		OllamaHost:    getenv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:   getenv("OLLAMA_MODEL", "llama3.1:8b"),
		OllamaTimeout: time.Duration(cast.ToInt(getenv("OLLAMA_TIMEOUT_SECONDS", "30"))) * time.Second,
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.OllamaTimeout <= 0 {
		cfg.OllamaTimeout = 30 * time.Second
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
