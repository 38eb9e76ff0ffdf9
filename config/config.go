package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MysqlDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SnowflakeNode int64
	Seed          SeedConfig
}

// SeedConfig は開発用の偽データ投入設定
type SeedConfig struct {
	Enabled      bool
	TeamsPerGame int
	Bettors      int
}

// Load reads .env outside production, then the environment.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("warning: .env not loaded: %v", err)
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		MysqlDSN:      getEnv("MYSQL_DSN", "root:password@tcp(db:3306)/council?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SnowflakeNode: int64(getEnvInt("SNOWFLAKE_NODE", 1)),
		Seed: SeedConfig{
			Enabled:      getEnvBool("SEED_FAKE_DATA", false),
			TeamsPerGame: getEnvInt("SEED_TEAMS_PER_GAME", 8),
			Bettors:      getEnvInt("SEED_BETTORS", 20),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("warning: %s=%q is not a bool, using %t", key, v, fallback)
		return fallback
	}
	return b
}
