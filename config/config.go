// Package config provides configuration loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned when a configuration value fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Content sources.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceSQLite   = "sqlite"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAKE_"

// Config is the site configuration.
type Config struct {
	Addr      string  `toml:"addr"`
	Language  string  `toml:"language"`
	AssetsDir string  `toml:"assets_dir"`
	Content   Content `toml:"content"`
	Log       Log     `toml:"log"`
}

// Content selects where page content is read from.
type Content struct {
	Source string `toml:"source"`
	Dir    string `toml:"dir"`
	DB     string `toml:"db"`
}

// Log configures the process logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Language: "en",
		Content: Content{
			Source: SourceEmbedded,
			DB:     "content.db",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the TOML file at path over the defaults, then applies
// environment overrides and validates the result. An empty path skips the
// file. Unknown keys in the file are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// envBindings maps each environment variable to the field it overrides.
func envBindings(cfg *Config) map[string]*string {
	return map[string]*string{
		EnvPrefix + "ADDR":           &cfg.Addr,
		EnvPrefix + "LANGUAGE":       &cfg.Language,
		EnvPrefix + "ASSETS_DIR":     &cfg.AssetsDir,
		EnvPrefix + "CONTENT_SOURCE": &cfg.Content.Source,
		EnvPrefix + "CONTENT_DIR":    &cfg.Content.Dir,
		EnvPrefix + "CONTENT_DB":     &cfg.Content.DB,
		EnvPrefix + "LOG_LEVEL":      &cfg.Log.Level,
		EnvPrefix + "LOG_FORMAT":     &cfg.Log.Format,
	}
}

// applyEnv overrides fields whose variable is set and non-empty.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for name, field := range envBindings(cfg) {
		if v, ok := lookup(name); ok && v != "" {
			*field = v
		}
	}
}

var (
	validSources = map[string]bool{SourceEmbedded: true, SourceDir: true, SourceSQLite: true}
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate normalizes enum values to lower case and checks them.
func (c *Config) Validate() error {
	var errs []error

	check := func(key string, value *string, allowed map[string]bool) {
		*value = strings.ToLower(strings.TrimSpace(*value))
		if !allowed[*value] {
			errs = append(errs, fmt.Errorf("%w: %s %q must be one of: %s", ErrInvalid, key, *value, allowedValues(allowed)))
		}
	}
	check("content.source", &c.Content.Source, validSources)
	check("log.level", &c.Log.Level, validLevels)
	check("log.format", &c.Log.Format, validFormats)

	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, fmt.Errorf("%w: addr cannot be empty", ErrInvalid))
	}
	if c.Content.Source == SourceDir && c.Content.Dir == "" {
		errs = append(errs, fmt.Errorf("%w: content.dir is required when content.source is %q", ErrInvalid, SourceDir))
	}
	if c.Content.Source == SourceSQLite && c.Content.DB == "" {
		errs = append(errs, fmt.Errorf("%w: content.db is required when content.source is %q", ErrInvalid, SourceSQLite))
	}

	return errors.Join(errs...)
}

// allowedValues returns a comma-separated string of allowed values.
func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}

// Sample returns the defaults rendered as a TOML document.
func Sample() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("marshal sample config: %w", err)
	}
	return string(data), nil
}
