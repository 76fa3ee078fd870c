package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	StorageDriver string // "postgres" or "memory"
	DatabaseURL   string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	ResetTTLMins  int
	BcryptCost    int

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		StorageDriver: getEnv("STORAGE_DRIVER", "postgres"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "talent-registry"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 24*60),
		ResetTTLMins:  getEnvInt("RESET_TTL_MINUTES", 60),
		BcryptCost:    getEnvInt("BCRYPT_COST", 10),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     os.Getenv("OPENROUTER_BASE_URL"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "talent-registry"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),
	}
	return cfg
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
