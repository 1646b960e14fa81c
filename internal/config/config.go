// Package config loads user settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/avitaltamir/vibetools/internal/layout"
	"github.com/avitaltamir/vibetools/internal/msg"
	"github.com/avitaltamir/vibetools/internal/theme"
)

// EnvPath overrides the config file location.
const EnvPath = "VIBETOOLS_CONFIG"

// Config is the top-level TOML structure.
type Config struct {
	ListWidth     int       `toml:"list_width"`
	Theme         string    `toml:"theme"`
	StartPage     string    `toml:"start_page"`
	HelpDelimiter string    `toml:"help_delimiter"`
	LogFile       string    `toml:"log_file"` // empty disables logging
	Debug         bool      `toml:"debug"`
	Clipboard     Clipboard `toml:"clipboard"`
}

// Clipboard configures clipboard access.
type Clipboard struct {
	// Enabled selects the OS clipboard; when false copies stay in memory
	Enabled bool `toml:"enabled"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		ListWidth:     layout.DefaultListWidth,
		Theme:         theme.DefaultTheme().Name,
		StartPage:     msg.PageUUID.Name(),
		HelpDelimiter: ", ",
		Clipboard:     Clipboard{Enabled: true},
	}
}

// DefaultPath returns $VIBETOOLS_CONFIG or <user config dir>/vibetools/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "vibetools", "config.toml"), nil
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	cfg.StartPage = strings.TrimSpace(cfg.StartPage)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks every field that has a bounded set of values.
func (c Config) Validate() error {
	if c.ListWidth < layout.MinListWidth || c.ListWidth > layout.MaxListWidth {
		return fmt.Errorf("list_width must be between %d and %d, got %d",
			layout.MinListWidth, layout.MaxListWidth, c.ListWidth)
	}
	if _, err := theme.ByName(c.Theme); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if _, err := msg.ParsePageID(c.StartPage); err != nil {
		return fmt.Errorf("start_page: %w", err)
	}
	if c.HelpDelimiter == "" {
		return errors.New("help_delimiter must not be empty")
	}
	return nil
}

// Page returns the configured start page. Call after Validate.
func (c Config) Page() msg.PageID {
	id, err := msg.ParsePageID(c.StartPage)
	if err != nil {
		return msg.PageUUID
	}
	return id
}
