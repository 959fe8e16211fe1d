package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"noiruxe.app/translation/provider"
)

// Config is read from NOIRUXE_* environment variables.
type Config struct {
	TranslateEndpoint string        `env:"NOIRUXE_TRANSLATE_ENDPOINT"`
	TranslateTimeout  time.Duration `env:"NOIRUXE_TRANSLATE_TIMEOUT" envDefault:"20s"`
	StoragePath       string        `env:"NOIRUXE_STORAGE_PATH"`
	StorageMaxBytes   int           `env:"NOIRUXE_STORAGE_MAX_BYTES" envDefault:"5242880"`
	BackendURL        string        `env:"NOIRUXE_BACKEND_URL" envDefault:"http://localhost:8000/api"`
	BackendTimeout    time.Duration `env:"NOIRUXE_BACKEND_TIMEOUT" envDefault:"15s"`
	Token             string        `env:"NOIRUXE_TOKEN"`
}

func loadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.TranslateEndpoint == "" {
		c.TranslateEndpoint = provider.DefaultEndpoint
	}
	if c.StoragePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = os.TempDir()
		}
		c.StoragePath = filepath.Join(dir, "noiruxe", "storage.db")
	}
	return c, nil
}
