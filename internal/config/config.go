package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ClarkGuan/mmlog/pkg/mmlog"
)

// Config is the CLI-facing configuration for a log file.
type Config struct {
	// Path is the log file location.
	Path string
	// Size is the requested ring capacity in bytes.
	Size int
	// Level is the minimum severity written.
	Level mmlog.Level
	// Sync makes flushes block until data is durable.
	Sync bool
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Path:  "./app.mmlog",
		Size:  mmlog.MinSize,
		Level: mmlog.LevelInfo,
	}
}

// ParseSize parses a byte size with an optional K/M suffix ("512K", "4M").
func ParseSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	mult := 1
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		mult = mmlog.KB
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		mult = mmlog.MB
		s = s[:len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return n * mult, nil
}
