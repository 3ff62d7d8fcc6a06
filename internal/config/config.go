// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backend selectors
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Notifier selectors
const (
	NotifierLog      = "log"
	NotifierTelegram = "telegram"
)

// Config holds the server's runtime configuration
type Config struct {
	Port        int
	StorageType string
	RedisURL    string

	NotifierType     string
	TelegramBotToken string

	// The two expected participants' display names
	PlayerAName string
	PlayerBName string
}

// Load reads configuration from a .env file (if present) and the
// environment. A credential required by the selected backend that is missing
// is a fatal configuration error: the caller must not start game logic.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:             8080,
		StorageType:      getEnv("STORAGE_TYPE", StorageMemory),
		RedisURL:         os.Getenv("REDIS_URL"),
		NotifierType:     getEnv("NOTIFIER", NotifierLog),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		PlayerAName:      getEnv("RPS_PLAYER_A_NAME", "Rusya"),
		PlayerBName:      getEnv("RPS_PLAYER_B_NAME", "Nikita"),
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Port = p
	}

	switch cfg.StorageType {
	case StorageMemory:
	case StorageRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL is required when STORAGE_TYPE=%s", StorageRedis)
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_TYPE %q", cfg.StorageType)
	}

	switch cfg.NotifierType {
	case NotifierLog:
	case NotifierTelegram:
		if cfg.TelegramBotToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required when NOTIFIER=%s", NotifierTelegram)
		}
	default:
		return nil, fmt.Errorf("invalid NOTIFIER %q", cfg.NotifierType)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
