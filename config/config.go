package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
// Loaded once in main and passed down; nothing else reads os.Getenv.
type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisAddress string

	JwtSecret            string
	AccessTokenLifespan  time.Duration
	RefreshTokenLifespan time.Duration
	ResetTokenLifespan   time.Duration

	AllowedOrigins []string
	DefaultRegion  string

	SkipMigrations bool
}

func Load() *Config {
	// Load env from .env (no error if missing; real env wins).
	godotenv.Load()

	return &Config{
		Port: envOr("PORT", "8080"),

		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "3306"),
		DBName:     envOr("DB_NAME", "invoice_app"),

		RedisAddress: envOr("REDIS_ADDRESS", "localhost:6379"),

		JwtSecret:            envOr("API_SECRET", "Invoice-Secret"),
		AccessTokenLifespan:  time.Hour * time.Duration(intFromEnv("TOKEN_HOUR_LIFESPAN", 24)),
		RefreshTokenLifespan: 24 * time.Hour * time.Duration(intFromEnv("REFRESH_TOKEN_DAY_LIFESPAN", 7)),
		ResetTokenLifespan:   time.Hour,

		AllowedOrigins: splitAndTrim(os.Getenv("ALLOWED_ORIGINS")),
		DefaultRegion:  envOr("PHONE_REGION", "MM"),

		SkipMigrations: strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true"),
	}
}

func envOr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func intFromEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
