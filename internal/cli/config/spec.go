// Package config loads mapcell shell configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/mapcell-go/internal/cli/output"
)

// Config is the configuration for the mapcell shell.
type Config struct {
	// Prompt is printed before each input line.
	Prompt string `koanf:"prompt"`

	// HistoryFile is where command history is persisted. Empty disables
	// persistence.
	HistoryFile string `koanf:"history_file"`

	// HistorySize caps the number of retained history entries.
	HistorySize int `koanf:"history_size"`

	// MaxLineLen is the longest accepted input line, in bytes. Longer
	// lines are rejected with a re-prompt.
	MaxLineLen int `koanf:"max_line_len"`

	// Output is the listing format: plain, table, json or yaml.
	Output string `koanf:"output"`

	// Log configures diagnostic logging.
	Log LogConfig `koanf:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the default shell configuration.
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(configDir(), "history"),
		HistorySize: 1000,
		MaxLineLen:  80,
		Output:      string(output.FormatPlain),
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "cli.yaml")
}

func configDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".mapcell")
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.MaxLineLen <= 0 {
		return fmt.Errorf("max_line_len must be positive, got %d", c.MaxLineLen)
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative, got %d", c.HistorySize)
	}
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	return nil
}
