// Package config handles configuration loading and validation for bluebook.
package config

import (
	"fmt"
	"net/url"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/bluebook/internal/core/styles"
)

const (
	DefaultServerURL = "http://localhost:5000"
	DefaultTimeout   = 10 * time.Second
)

// Config holds the application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Opener OpenerConfig `yaml:"opener"`
	TUI    TUIConfig    `yaml:"tui"`
}

// ServerConfig locates the document server.
type ServerConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// OpenerConfig is the command used to open a view URL in a browser. The URL
// is appended as the last argument.
type OpenerConfig struct {
	Command []string `yaml:"command"`
}

// TUIConfig holds interactive UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			URL:     DefaultServerURL,
			Timeout: DefaultTimeout,
		},
		Opener: OpenerConfig{
			Command: DefaultOpenCommand(runtime.GOOS),
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// DefaultOpenCommand returns the platform's URL opener.
func DefaultOpenCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Server.URL == "" {
		c.Server.URL = defaults.Server.URL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}
	if len(c.Opener.Command) == 0 {
		c.Opener.Command = defaults.Opener.Command
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("server.url cannot be empty")
	}

	if c.Server.Timeout < 0 {
		return fmt.Errorf("server.timeout cannot be negative")
	}

	if len(c.Opener.Command) == 0 || c.Opener.Command[0] == "" {
		return fmt.Errorf("opener.command must name an executable")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a built-in theme", c.TUI.Theme)
	}

	return nil
}

// Palette returns the configured theme palette.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.TUI.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}

// ParsedServerURL parses server.url.
func (c *Config) ParsedServerURL() (*url.URL, error) {
	return url.Parse(c.Server.URL)
}
