// Package config loads questboard settings from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"go.yaml.in/yaml/v3"
)

// Config holds the user-tunable settings. Precedence: env > file >
// defaults; command-line flags beat all of these where offered.
type Config struct {
	// DBPath overrides the default ~/.questboard.db location.
	DBPath string `yaml:"db_path" env:"QB_DB_PATH"`
	// Locale selects the message catalog ("en" or "ja").
	Locale string `yaml:"locale" env:"QB_LOCALE"`
	// PlayerName is the display name used when creating a new player.
	PlayerName string `yaml:"player_name" env:"QB_PLAYER_NAME"`
}

func defaults() Config {
	return Config{
		Locale:     "en",
		PlayerName: "Player",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(dir, "questboard", "config.yaml"), nil
}

// Load reads the config file at path (missing file is fine) and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file; defaults + env apply.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = "Player"
	}
	return &cfg, nil
}
