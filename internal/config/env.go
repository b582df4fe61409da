package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CUUID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CUUID_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("CUUID_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CUUID_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("CUUID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CUUID_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("CUUID_MAX_MINT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxMintCount = n
		}
	}
	if v := os.Getenv("CUUID_RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RecentLimit = n
		}
	}
}
