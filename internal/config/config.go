// Package config loads mdedit settings from a TOML file with
// environment variable overrides.
//
// Resolution order, later wins: built-in defaults, the TOML file,
// MDEDIT_-prefixed environment variables. A missing config file is
// not an error; the defaults simply stand.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "MDEDIT_"

// Config holds the settings shared by the mdedit binaries.
type Config struct {
	// Renderer selects the markdown engine ("goldmark" or "fallback").
	Renderer string `toml:"renderer"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// Preview holds settings for HTML preview generation.
	Preview Preview `toml:"preview"`
}

// Preview configures the generated preview page and the watch loop.
type Preview struct {
	// Title is the HTML page title.
	Title string `toml:"title"`

	// DebounceMillis is the quiet period before a watched file is
	// re-rendered after a change.
	DebounceMillis int `toml:"debounce_ms"`
}

// Debounce returns the watch debounce as a duration.
func (p Preview) Debounce() time.Duration {
	return time.Duration(p.DebounceMillis) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Renderer: "goldmark",
		LogLevel: "info",
		Preview: Preview{
			Title:          "Markdown Preview",
			DebounceMillis: 200,
		},
	}
}

// Load reads the configuration at path, applying defaults and
// environment overrides. An empty path or a missing file yields the
// defaults (plus overrides) without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Absent config file is fine.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
			}
		}
	}

	cfg.applyEnv()

	if cfg.Preview.DebounceMillis < 0 {
		return cfg, fmt.Errorf("preview.debounce_ms must not be negative, got %d", cfg.Preview.DebounceMillis)
	}
	return cfg, nil
}

// applyEnv overlays MDEDIT_-prefixed environment variables.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "RENDERER"); ok {
		c.Renderer = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "PREVIEW_TITLE"); ok {
		c.Preview.Title = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "DEBOUNCE_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Preview.DebounceMillis = n
		}
	}
}

// ParseError describes a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
