package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the environment configuration of the goose command
type Settings struct {
	BoardDir   string        `env:"GOOSE_BOARD_DIR"`
	Board      string        `env:"GOOSE_BOARD"       envDefault:"classic"`
	Seed       uint64        `env:"GOOSE_SEED"        envDefault:"0"`
	LogLevel   string        `env:"GOOSE_LOG_LEVEL"   envDefault:"info"`
	SessionTTL time.Duration `env:"GOOSE_SESSION_TTL" envDefault:"30m"`
}

// LoadSettings reads Settings from the environment
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
