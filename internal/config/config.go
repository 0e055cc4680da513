// Package config loads sha256sum defaults from an optional TOML file.
//
// The file is named by the --config flag or the SHA256SUM_CONFIG
// environment variable. There is no discovery: without either, built-in
// defaults apply. Command-line flags override file values.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/logging"
)

// EnvPath names the environment variable holding the config path.
const EnvPath = "SHA256SUM_CONFIG"

// Output formats.
const (
	FormatGNU  = "gnu"
	FormatBSD  = "bsd"
	FormatJSON = "json"
)

const (
	defaultJobs       = 1
	defaultBufferSize = 64 * 1024
	minBufferSize     = 64
)

// Config holds resolved options.
type Config struct {
	Jobs       int    `toml:"jobs"`
	BufferSize int    `toml:"buffer_size"`
	Format     string `toml:"format"`
	LogLevel   string `toml:"log_level"`
	Progress   bool   `toml:"progress"`
}

// fileConfig mirrors Config with optional fields so unset keys keep
// their defaults.
type fileConfig struct {
	Jobs       *int    `toml:"jobs"`
	BufferSize *int    `toml:"buffer_size"`
	Format     *string `toml:"format"`
	LogLevel   *string `toml:"log_level"`
	Progress   *bool   `toml:"progress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Jobs:       defaultJobs,
		BufferSize: defaultBufferSize,
		Format:     FormatGNU,
		LogLevel:   "warn",
	}
}

// ResolvePath returns flagPath when set, else the environment value.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults; a named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w: %w", path, err, apperrors.ErrConfig)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w: %w", path, err, apperrors.ErrConfig)
	}

	if fc.Jobs != nil {
		cfg.Jobs = *fc.Jobs
	}
	if fc.BufferSize != nil {
		cfg.BufferSize = *fc.BufferSize
	}
	if fc.Format != nil {
		cfg.Format = strings.ToLower(strings.TrimSpace(*fc.Format))
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Progress != nil {
		cfg.Progress = *fc.Progress
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d: %w", c.Jobs, apperrors.ErrConfig)
	}
	if c.BufferSize < minBufferSize {
		return fmt.Errorf("buffer_size must be at least %d, got %d: %w", minBufferSize, c.BufferSize, apperrors.ErrConfig)
	}
	switch c.Format {
	case FormatGNU, FormatBSD, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q: %w", c.Format, apperrors.ErrConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", err, apperrors.ErrConfig)
	}
	return nil
}
