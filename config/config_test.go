package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	for _, key := range []string{"PORT", "MYSQL_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SNOWFLAKE_NODE", "SEED_FAKE_DATA", "SEED_TEAMS_PER_GAME", "SEED_BETTORS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, int64(1), cfg.SnowflakeNode)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, 8, cfg.Seed.TeamsPerGame)
	assert.Equal(t, 20, cfg.Seed.Bettors)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_ADDR", "localhost:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("SEED_FAKE_DATA", "true")
	t.Setenv("SEED_BETTORS", "many")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "localhost:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, int64(7), cfg.SnowflakeNode)
	assert.True(t, cfg.Seed.Enabled)
	// 不正値はデフォルト
	assert.Equal(t, 20, cfg.Seed.Bettors)
}
