// Package config loads quill's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	dirName  = "quill"
	fileName = "config.toml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds user settings. Zero values are replaced by Default before use.
type Config struct {
	HistoryLimit    int    `toml:"history_limit"`
	AutoPair        bool   `toml:"auto_pair"`
	LineNumbers     bool   `toml:"line_numbers"`
	SystemClipboard bool   `toml:"system_clipboard"`
	TabWidth        int    `toml:"tab_width"`
	LogFile         string `toml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HistoryLimit: 50,
		AutoPair:     true,
		TabWidth:     4,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data on top of Default and validates the result.
// source names the data in error messages.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Default(), fmt.Errorf("parse config %s:%d:%d: %w", source, row, col, err)
		}
		return Default(), fmt.Errorf("parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// Validate reports settings the editor cannot honor.
func (c Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit must be >= 0, got %d", ErrInvalid, c.HistoryLimit)
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width must be in [1,16], got %d", ErrInvalid, c.TabWidth)
	}
	return nil
}
