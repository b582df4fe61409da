// Package config provides loading and environment overlay for the cuuid
// service configuration. It exposes a Default() baseline, JSON file loading,
// and a CUUID_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/cuuid.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil { /* handle */ }
package config
