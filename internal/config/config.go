package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AnthropicAPIKey  string
	GeminiAPIKey     string
	HTTPPort         string
	LogLevel         string
	EmbeddingCache   string
	StaticDir        string
	SweepSchedule    string
	ConversationTTLH int
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		EmbeddingCache:   getEnv("EMBEDDING_CACHE_PATH", "wacs_embeddings.db"),
		StaticDir:        getEnv("STATIC_DIR", "frontend"),
		SweepSchedule:    getEnv("SWEEP_SCHEDULE", "@hourly"),
		ConversationTTLH: getEnvAsInt("CONVERSATION_MAX_AGE_HOURS", 24),
	}

	if AppConfig.AnthropicAPIKey == "" {
		log.Fatal("ANTHROPIC_API_KEY environment variable is required")
	}

	if AppConfig.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
