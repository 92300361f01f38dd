package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port          string
	DatabaseURL   string
	AssemblyAIKey string
	AssemblyAIURL string
	OpenAIKey     string
	AudioDir      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AssemblyAIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		AssemblyAIURL: getEnv("ASSEMBLYAI_BASE_URL", "https://api.assemblyai.com"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AudioDir:      getEnv("AUDIO_DIR", "tmp/audios"),
	}

	// Validate required environment variables
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.AssemblyAIKey == "" {
		return nil, fmt.Errorf("ASSEMBLYAI_API_KEY is required. Please set it as environment variable:\n  Linux/Mac: export ASSEMBLYAI_API_KEY=\"your_key\"\n  Windows PowerShell: $env:ASSEMBLYAI_API_KEY=\"your_key\"")
	}

	// OpenAI key is optional (only needed for the summary fallback)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
