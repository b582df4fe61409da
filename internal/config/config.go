package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the top-level service configuration loaded from file/env.
type Config struct {
	HTTPAddr  string `json:"httpAddr"`
	DataDir   string `json:"dataDir"`
	Fsync     string `json:"fsync"`
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
	// MaxMintCount caps how many identifiers one mint request may ask for.
	MaxMintCount int `json:"maxMintCount"`
	// RecentLimit caps how many journal entries the recent endpoint returns.
	RecentLimit int `json:"recentLimit"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr:     ":8080",
		Fsync:        "always",
		LogLevel:     "info",
		LogFormat:    "text",
		MaxMintCount: 1024,
		RecentLimit:  100,
	}
}

// Validate checks enum-valued fields and bounds.
func (c Config) Validate() error {
	switch c.Fsync {
	case "always", "never":
	default:
		return fmt.Errorf("config: invalid fsync %q; use always|never", c.Fsync)
	}
	if c.MaxMintCount < 1 {
		return fmt.Errorf("config: maxMintCount must be >= 1, got %d", c.MaxMintCount)
	}
	if c.RecentLimit < 1 {
		return fmt.Errorf("config: recentLimit must be >= 1, got %d", c.RecentLimit)
	}
	return nil
}

// Load reads configuration from a JSON file. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
