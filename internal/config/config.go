package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   string

	// DemoMode swaps Postgres for the seeded in-memory store.
	DemoMode bool

	// EnforcePipeline switches the employer status mutation from the
	// unrestricted baseline to forward-only pipeline validation.
	EnforcePipeline bool

	// GeminiAPIKey enables the optional AI application summary. Empty key
	// leaves the feature off.
	GeminiAPIKey string

	AllowedOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	cfg := &Config{
		Port:            envOr("PORT", "8080"),
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
		JWTSecret:       envOr("JWT_SECRET", "dev-only-secret"),
		DemoMode:        envBool("DEMO_MODE"),
		EnforcePipeline: envBool("ENFORCE_PIPELINE"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			envOr("DB_HOST", "localhost"),
			envOr("DB_USER", "postgres"),
			envOr("DB_PASSWORD", "password"),
			envOr("DB_NAME", "jobook"),
			envOr("DB_PORT", "5432"),
		)
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
