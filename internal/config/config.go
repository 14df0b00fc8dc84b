package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Ai       AIConfig
	Planner  PlannerConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JwtSecret          string
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

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
	GeminiApiKey  string
}

type PlannerConfig struct {
	CriticalCap      int
	PlanCacheTTLs    int  // seconds
	AlertEmailsOn    bool // send critical-stock alert emails
	AlertEmailTo     string
	StockAlertsTopic string
}

// ErrMissingGeminiKey is surfaced at startup when the configured provider is
// gemini and no key is present. Failing fast beats a 500 on the first plan
// request.
var ErrMissingGeminiKey = errors.New("config: GEMINI_API_KEY is required when LLM_PROVIDER=gemini")

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", "default_secret"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Nexum"),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-1.5-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiApiKey:  getEnv("GEMINI_API_KEY", ""),
		},
		Planner: PlannerConfig{
			CriticalCap:      getEnvAsInt("PLANNER_CRITICAL_CAP", 5),
			PlanCacheTTLs:    getEnvAsInt("PLANNER_CACHE_TTL_SECONDS", 60),
			AlertEmailsOn:    getEnv("STOCK_ALERT_EMAILS", "false") == "true",
			AlertEmailTo:     getEnv("STOCK_ALERT_EMAIL_TO", ""),
			StockAlertsTopic: getEnv("STOCK_ALERTS_TOPIC_NAME", "STOCK_LEVEL_CHANGED"),
		},
	}
}

// Validate enforces the fail-fast contract for required credentials.
func (c *Config) Validate() error {
	if c.Ai.LLMProvider == "gemini" && c.Ai.GeminiApiKey == "" {
		return ErrMissingGeminiKey
	}
	return nil
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
