package main

import (
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/freeband/monoid"
	"gopkg.in/yaml.v3"
)

type config struct {
	MaxLetters int           `yaml:"max_letters"`
	Workers    int           `yaml:"workers"`
	Timeout    time.Duration `yaml:"timeout"`
	LogLevel   string        `yaml:"log_level"`
	Color      string        `yaml:"color"` // auto, always or never
}

func defaultConfig() config {
	return config{
		MaxLetters: monoid.DefaultMaxLetters,
		Workers:    1,
		LogLevel:   "warn",
		Color:      "auto",
	}
}

// loadConfig reads path over the defaults. A missing file means defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("parse config %s: color must be auto, always or never, got %q", path, cfg.Color)
	}
	return cfg, nil
}
