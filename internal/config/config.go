package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Режимы синхронизации хранилища инцидентов
const (
	SyncModeRemote = "remote"
	SyncModeLocal  = "local"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Sync Config
	SyncMode      string `env:"SYNC_MODE" envDefault:"remote"`
	DemoIncidents int    `env:"DEMO_INCIDENTS" envDefault:"15"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for responder authentication
	APIKeys []string `env:"API_KEYS" envSeparator:","`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	keys := cfg.APIKeys[:0]
	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	cfg.APIKeys = keys

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.SyncMode {
	case SyncModeRemote:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required in %s mode", SyncModeRemote)
		}
	case SyncModeLocal:
	default:
		return fmt.Errorf("unknown SYNC_MODE %q", c.SyncMode)
	}
	if c.DemoIncidents < 0 {
		return fmt.Errorf("DEMO_INCIDENTS must not be negative")
	}
	return nil
}

// IsRemote сообщает, что инциденты синхронизируются с внешним хранилищем
func (c *Config) IsRemote() bool {
	return c.SyncMode == SyncModeRemote
}
