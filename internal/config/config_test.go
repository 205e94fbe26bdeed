package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE", "PGSSLMODE", "REDIS_ADDR", "REDIS_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=cooking_app sslmode=disable",
		cfg.PostgresDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPORT", "5433")
	t.Setenv("PGUSER", "cook")
	t.Setenv("PGPASSWORD", "hunter2")
	t.Setenv("PGDATABASE", "cooking")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t,
		"host=db.internal port=5433 user=cook password=hunter2 dbname=cooking sslmode=disable",
		cfg.PostgresDSN)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_BadRedisDBFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	assert.Equal(t, 0, Load().RedisDB)
}
