// Package config provides defaults and environment overlay for the mmlog
// CLI. It exposes a Default() baseline and FromEnv to overlay MMLOG_*
// variables.
//
// Example:
//
//	cfg := config.Default()
//	config.FromEnv(&cfg)
//	logger, err := mmlog.NewBuilder().
//	    Size(cfg.Size).Level(cfg.Level).Sync(cfg.Sync).
//	    Open(cfg.Path)
package config
