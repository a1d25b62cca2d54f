package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".tripcheck.yaml")
	content := `data_dir: /tmp/tripcheck-test
log_level: debug
defaults:
  display_name: Roma
  language: en
  theme: dark
  text_scale: 1.1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/tripcheck-test" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
	if cfg.Defaults.DisplayName != "Roma" || cfg.Defaults.Language != "en" ||
		cfg.Defaults.Theme != "dark" || cfg.Defaults.TextScale != 1.1 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
}

func TestLoadExpandsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TRIPCHECK_TEST_DIR", "/data/from-env")
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("data_dir: $TRIPCHECK_TEST_DIR\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/data/from-env" {
		t.Errorf("data_dir = %q, want expanded env value", cfg.DataDir)
	}
}

func TestLoadMergesIncludes(t *testing.T) {
	dir := t.TempDir()
	include := filepath.Join(dir, "extra.yaml")
	if err := os.WriteFile(include, []byte("log_level: info\ndefaults:\n  language: es\n"), 0644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(main, []byte("data_dir: /primary\nincludes:\n  - extra.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(main)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/primary" {
		t.Errorf("data_dir = %q, include must not override", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q, want merged from include", cfg.LogLevel)
	}
	if cfg.Defaults.Language != "es" {
		t.Errorf("defaults.language = %q, want merged from include", cfg.Defaults.Language)
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.DataDir != "" || cfg.LogLevel != "" {
		t.Errorf("missing file should yield empty config, got %+v", cfg)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
