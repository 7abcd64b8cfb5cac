package config

import (
	"os"
	"path/filepath"
	"testing"

	"namesplit/src/internal/fields"
	"namesplit/src/internal/names"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "namesplit.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvCacheSize, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fields != fields.DefaultMapping() {
		t.Fatalf("expected default mapping, got %+v", cfg.Fields)
	}
	if cfg.CacheSize != names.DefaultCacheSize || cfg.LogLevel != "info" || cfg.FoldUnicode || cfg.UnicodeWords {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvCacheSize, "")
	path := writeConfig(t, `
prefixes: [bin]
honorifics: [fr]
fold_unicode: true
unicode_words: true
fields:
  first_name: " given "
  honorific: ""
cache_size: 16
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := fields.Mapping{Honorific: "", FirstName: "given", LastName: "last_name"}
	if cfg.Fields != want {
		t.Fatalf("fields: want %+v, got %+v", want, cfg.Fields)
	}
	if cfg.CacheSize != 16 || cfg.LogLevel != "debug" || !cfg.FoldUnicode || !cfg.UnicodeWords {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Rules().IsPrefix("bin") || !cfg.Rules().IsHonorific("fr") || !cfg.Rules().IsPrefix("van") {
		t.Fatalf("rules not extended")
	}
	r := cfg.Splitter().Split("Fr. Ahmad bin Said", true)
	if r != (names.Result{Honorific: "Fr", FirstName: "Ahmad", LastName: "bin Said"}) {
		t.Fatalf("configured splitter: got %+v", r)
	}
	if r := cfg.Splitter().Split("d'Éon Smith", false); r.LastName != "d'Éon Smith" {
		t.Fatalf("unicode_words not applied: got %+v", r)
	}
	c, err := cfg.CachedSplitter()
	if err != nil {
		t.Fatalf("CachedSplitter: %v", err)
	}
	if c.Split("Ahmad bin Said", false).LastName != "bin Said" {
		t.Fatalf("cached splitter did not use configured rules")
	}
}

func TestLoadFromEnvAndOverrides(t *testing.T) {
	path := writeConfig(t, "log_level: warn\ncache_size: 8\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvCacheSize, "32")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "error" || cfg.CacheSize != 32 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}

	t.Setenv(EnvCacheSize, "lots")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid %s", EnvCacheSize)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvCacheSize, "")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Fields != fields.DefaultMapping() {
		t.Fatalf("LoadOptional: expected defaults, got %+v", cfg)
	}
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "gone.yaml"))
	if _, err := LoadOptional(""); err != nil {
		t.Fatalf("LoadOptional with stale %s: %v", EnvConfig, err)
	}
	if _, err := Load(writeConfig(t, "prefixes: [bin")); err == nil {
		t.Fatalf("expected error for invalid YAML")
	}
}
