package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	TokenTTL      time.Duration
	AllowedOrigin string

	// External services
	PokeAPIURL    string
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	// Collection digest emails (disabled when SMTPHost is empty)
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	SenderEmail string
	DigestCron  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=pokedex password=pokedex dbname=pokedex sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      tokenTTL,
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		PokeAPIURL:    getEnv("POKEAPI_URL", "https://pokeapi.co/api/v2"),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo-16k"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "no-reply@pokevault.local"),
		DigestCron:    getEnv("DIGEST_CRON", "0 9 * * 1"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
// Controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
