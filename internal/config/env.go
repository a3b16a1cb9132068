package config

import (
	"os"
	"strconv"

	"github.com/ClarkGuan/mmlog/pkg/mmlog"
)

// FromEnv overlays MMLOG_* environment variables onto cfg. Unset or
// malformed values leave the existing field untouched.
func FromEnv(cfg *Config) {
	if v := os.Getenv("MMLOG_PATH"); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv("MMLOG_SIZE"); v != "" {
		if n, err := ParseSize(v); err == nil {
			cfg.Size = n
		}
	}
	if v := os.Getenv("MMLOG_LEVEL"); v != "" {
		if l, err := mmlog.ParseLevel(v); err == nil {
			cfg.Level = l
		}
	}
	if v := os.Getenv("MMLOG_SYNC"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sync = b
		}
	}
}
