package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/globetrotter.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// RedisURL enables the catalog cache; empty means SQLite only.
	RedisURL   string        `env:"REDIS_URL"`
	CatalogTTL time.Duration `env:"CATALOG_TTL" envDefault:"10m"`

	ClueCount   int  `env:"CLUE_COUNT" envDefault:"2"`
	OptionCount int  `env:"OPTION_COUNT" envDefault:"4"`
	Seed        bool `env:"SEED" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
