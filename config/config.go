package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  int    `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	TennisAPIURL    string        `env:"TENNIS_API_URL" envDefault:"https://prd-itat-kube-tournamentevent-api.clubspark.pro/"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	CollectInterval    time.Duration `env:"COLLECT_INTERVAL" envDefault:"6h"`
	CollectConcurrency int           `env:"COLLECT_CONCURRENCY" envDefault:"4"`
	CollectDelay       time.Duration `env:"COLLECT_DELAY" envDefault:"500ms"`
	CollectOnStart     bool          `env:"COLLECT_ON_START" envDefault:"true"`

	R2AccountID       string `env:"R2_ACCOUNT_ID" envDefault:""`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID" envDefault:""`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY" envDefault:""`
	R2BucketName      string `env:"R2_BUCKET_NAME" envDefault:""`
}

// ArchiveConfigured reports whether all R2 settings are present. Archiving
// is optional and stays off when any of them is missing.
func (c *Config) ArchiveConfigured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

// Load reads configuration from the environment, optionally picking up a
// .env file first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment configuration: %w", err)
	}

	if cfg.ServerPort <= 0 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}
	if cfg.CollectConcurrency <= 0 {
		return nil, fmt.Errorf("COLLECT_CONCURRENCY must be positive, got %d", cfg.CollectConcurrency)
	}

	return cfg, nil
}
