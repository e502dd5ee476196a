package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		path := writeTempConfig(t, "project: eu-vocab\nversion: 1\ndocs:\n  dir: ./docs\ndata:\n  dir: ./mcp-data\nlog:\n  level: debug\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "eu-vocab" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Docs.Dir != "./docs" || cfg.Data.Dir != "./mcp-data" {
			t.Fatalf("unexpected dirs: %+v", cfg)
		}
		if cfg.Log.Level != "debug" {
			t.Fatalf("expected log level debug, got %q", cfg.Log.Level)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\ndocs:\n  dir: ./docs\ndata:\n  dir: ./data\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 2\ndocs:\n  dir: ./docs\ndata:\n  dir: ./data\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing docs dir", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndata:\n  dir: ./data\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing data dir", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndocs:\n  dir: ./docs\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "project: [\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
