package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	// Emails that receive the admin flag on registration (comma separated).
	AdminEmails []string

	// LLM provider: openrouter (default), openai or gemini.
	LLMProvider        string
	LLMAPIKey          string
	LLMModel           string
	LLMBaseURL         string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	// State store backend: postgres (default) or redis.
	StateBackend  string
	StateKey      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	QuestionBankPath string
	MaxUploadBytes   int64
	LogLevel         string
	LogFormat        string
	CORSOrigins      string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openrouter"))
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "interview-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		AdminEmails:   splitList(os.Getenv("ADMIN_EMAILS")),

		LLMProvider:        provider,
		LLMAPIKey:          apiKeyFor(provider),
		LLMModel:           os.Getenv("LLM_MODEL"),
		LLMBaseURL:         os.Getenv("LLM_BASE_URL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "mock-interview"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		StateBackend:  strings.ToLower(getEnv("STATE_BACKEND", "postgres")),
		StateKey:      getEnv("STATE_KEY", "root"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		QuestionBankPath: os.Getenv("QUESTION_BANK_PATH"),
		MaxUploadBytes:   int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
	}
	return cfg
}

// apiKeyFor prefers LLM_API_KEY and falls back to the provider specific variable.
func apiKeyFor(provider string) string {
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		return v
	}
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		return os.Getenv("GEMINI_API_KEY")
	default:
		if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
			return v
		}
		return os.Getenv("OPENAI_API_KEY")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
