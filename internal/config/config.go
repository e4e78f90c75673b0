package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceBuiltin = "builtin"
	SourceSQLite  = "sqlite"
)

// Config holds inspector configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Console ConsoleConfig `yaml:"console"`
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects where the catalog is loaded from.
type CatalogConfig struct {
	Source string `yaml:"source"`  // builtin, sqlite
	DBPath string `yaml:"db_path"` // required for sqlite
}

// ConsoleConfig tunes the interactive console.
type ConsoleConfig struct {
	TypingDelay Duration `yaml:"typing_delay"`
	Color       bool     `yaml:"color"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

// Duration is a time.Duration that reads Go duration strings from YAML.
type Duration time.Duration

// UnmarshalYAML accepts strings such as "8ms" or "0s".
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in Go syntax.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Source: SourceBuiltin},
		Console: ConsoleConfig{TypingDelay: Duration(8 * time.Millisecond), Color: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CATALOG_DB"); v != "" {
		c.Catalog.DBPath = v
		c.Catalog.Source = SourceSQLite
	}
	if v := os.Getenv("CATALOG_TYPING_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CATALOG_TYPING_DELAY: %w", err)
		}
		c.Console.TypingDelay = Duration(d)
	}
	c.Logging.Level = envOr("CATALOG_LOG_LEVEL", c.Logging.Level)
	c.Logging.File = envOr("CATALOG_LOG_FILE", c.Logging.File)
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourceSQLite:
		if c.Catalog.DBPath == "" {
			return errors.New("catalog.db_path is required for the sqlite source")
		}
	default:
		return fmt.Errorf("unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Console.TypingDelay < 0 {
		return fmt.Errorf("console.typing_delay must not be negative, got %s", time.Duration(c.Console.TypingDelay))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
