package config

import (
	"testing"

	"github.com/ClarkGuan/mmlog/pkg/mmlog"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1024", 1024, true},
		{"512K", 512 * mmlog.KB, true},
		{"512k", 512 * mmlog.KB, true},
		{"4M", 4 * mmlog.MB, true},
		{"0", 0, true},
		{"", 0, false},
		{"-1", 0, false},
		{"4G", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, err := ParseSize(c.in)
		if c.ok != (err == nil) {
			t.Fatalf("ParseSize(%q): err = %v, want ok=%v", c.in, err, c.ok)
		}
		if err == nil && got != c.want {
			t.Fatalf("ParseSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MMLOG_PATH", "/tmp/env.mmlog")
	t.Setenv("MMLOG_SIZE", "2M")
	t.Setenv("MMLOG_LEVEL", "trace")
	t.Setenv("MMLOG_SYNC", "true")

	cfg := Default()
	FromEnv(&cfg)
	if cfg.Path != "/tmp/env.mmlog" {
		t.Fatalf("path = %q", cfg.Path)
	}
	if cfg.Size != 2*mmlog.MB {
		t.Fatalf("size = %d", cfg.Size)
	}
	if cfg.Level != mmlog.LevelTrace {
		t.Fatalf("level = %v", cfg.Level)
	}
	if !cfg.Sync {
		t.Fatalf("sync not set")
	}
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	t.Setenv("MMLOG_SIZE", "lots")
	t.Setenv("MMLOG_LEVEL", "loud")
	t.Setenv("MMLOG_SYNC", "definitely")

	cfg := Default()
	FromEnv(&cfg)
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}
