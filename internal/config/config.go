package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	PostgresDSN string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
}

// Load builds Config from environment with sensible defaults. The PG*
// variable names match what the lib/pq-era tooling and pgAdmin expect.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("PORT", "5000"),
		PostgresDSN: postgresDSN(),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
	}
}

func postgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("PGHOST", "localhost"),
		getEnv("PGPORT", "5432"),
		getEnv("PGUSER", "postgres"),
		getEnv("PGPASSWORD", "postgres"),
		getEnv("PGDATABASE", "cooking_app"),
		getEnv("PGSSLMODE", "disable"),
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
