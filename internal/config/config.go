// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	ContentDir string `env:"CONTENT_DIR" envDefault:"content"`
	// SettleDelay paces the step between committing an answer and
	// moving to the next screen so the answer's feedback can render.
	SettleDelay   time.Duration `env:"SETTLE_DELAY" envDefault:"0s"`
	AllowedOrigin string        `env:"ALLOWED_ORIGIN"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SettleDelay < 0 {
		return Config{}, fmt.Errorf("SETTLE_DELAY must not be negative, got %s", cfg.SettleDelay)
	}
	return cfg, nil
}
