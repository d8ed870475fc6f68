package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	OpenAI           string
	GoogleGemini     string
	ExchangeLogTopic string
}

type AIConfig struct {
	ChatEngine        string // "mock" or "live"
	CompletionModel   string // e.g. "gpt-4.1"
	VectorStoreId     string // fixed corpus identifier for file search
	EmbeddingProvider string // "openai", "gemini" or "ollama"
	EmbeddingModel    string
	OllamaBaseURL     string
	GatingThreshold   float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "PolicyAssist"),
		},
		Keys: APIKeys{
			OpenAI:           getEnv("OPENAI_API_KEY", ""),
			GoogleGemini:     getEnv("GOOGLE_GEMINI_API_KEY", ""),
			ExchangeLogTopic: getEnv("EXCHANGE_LOG_TOPIC_NAME", "EXCHANGE_LOG"),
		},
		Ai: AIConfig{
			ChatEngine:        getEnv("CHAT_ENGINE", "live"),
			CompletionModel:   getEnv("COMPLETION_MODEL", "gpt-4.1"),
			VectorStoreId:     getEnv("POLICY_VECTOR_STORE_ID", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GatingThreshold:   getEnvAsFloat("GATING_THRESHOLD", 0.65),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
