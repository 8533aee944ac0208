package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds server configuration loaded from the environment.
type Config struct {
	Port           string
	Environment    string
	LLMBaseURL     string
	LLMAPIKey      string
	ChatModel      string
	EmbeddingModel string
	MongoURI       string
	DatabaseName   string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8000"),
		Environment:    getEnv("NEXUS_ENV", "development"),
		LLMBaseURL:     getEnv("NEXUS_LLM_BASE_URL", ""),
		LLMAPIKey:      getAPIKey(),
		ChatModel:      getEnv("NEXUS_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("NEXUS_EMBEDDING_MODEL", "text-embedding-3-small"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName:   getEnv("NEXUS_DB_NAME", "nexus_db"),
	}
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LLMAPIKey) == "" {
		return fmt.Errorf("API key required: set NEXUS_LLM_API_KEY or OPENAI_API_KEY")
	}
	if strings.TrimSpace(c.MongoURI) == "" {
		return fmt.Errorf("MONGO_URI must not be empty")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// getAPIKey resolves the LLM API key from the supported variables.
func getAPIKey() string {
	if key := os.Getenv("NEXUS_LLM_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
