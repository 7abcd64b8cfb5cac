package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"namesplit/src/internal/fields"
	"namesplit/src/internal/names"
)

// Environment variables read by Load.
const (
	EnvConfig    = "NAMESPLIT_CONFIG"
	EnvLogLevel  = "NAMESPLIT_LOG_LEVEL"
	EnvCacheSize = "NAMESPLIT_CACHE_SIZE"
)

// Config is the namesplit configuration file.
//
// Fields is decoded over DefaultMapping, so roles absent from the file keep
// their default field name and a role set to "" has no field.
type Config struct {
	Prefixes     []string       `yaml:"prefixes"`
	Honorifics   []string       `yaml:"honorifics"`
	FoldUnicode  bool           `yaml:"fold_unicode"`
	UnicodeWords bool           `yaml:"unicode_words"`
	Fields       fields.Mapping `yaml:"fields"`
	CacheSize    int            `yaml:"cache_size"`
	LogLevel     string         `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Fields:    fields.DefaultMapping(),
		CacheSize: names.DefaultCacheSize,
		LogLevel:  "info",
	}
}

// Load reads the config file at path, or at $NAMESPLIT_CONFIG when path is
// empty, then applies environment overrides. A missing file is only an error
// when a path was given.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = getEnv(EnvConfig, "")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
		cfg.Fields = cfg.Fields.Clean()
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOptional is Load but treats a missing file as the default configuration.
// Use it when the path was not named by the user, e.g. came from $NAMESPLIT_CONFIG.
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		return cfg, cfg.applyEnv()
	}
	return cfg, err
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	if v := getEnv(EnvCacheSize, ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
		c.CacheSize = n
	}
	return nil
}

// Rules returns the default tables extended with the configured entries.
func (c Config) Rules() names.Rules {
	return names.DefaultRules().With(c.Prefixes, c.Honorifics)
}

// Splitter builds a splitter from the configured rules and options.
func (c Config) Splitter() *names.Splitter {
	return names.New(
		names.WithRules(c.Rules()),
		names.WithUnicodeFold(c.FoldUnicode),
		names.WithUnicodeWords(c.UnicodeWords),
	)
}

// CachedSplitter wraps Splitter in an LRU of CacheSize entries.
func (c Config) CachedSplitter() (*names.CachedSplitter, error) {
	return names.NewCached(c.Splitter(), c.CacheSize)
}

// getEnv returns the environment value for key or def if unset.
func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
