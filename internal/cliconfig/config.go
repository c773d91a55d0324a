// Package cliconfig holds the explored CLI configuration: defaults, the TOML
// config file, environment overrides, and flag precedence.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/roverlabs/explored/pkg/explore"
)

// Config holds CLI configuration for explored.
type Config struct {
	ListenAddr string

	BoundaryURL   string
	FrontierURL   string
	NavigationURL string
	TransformURL  string
	LocalizerURL  string

	HTTPTimeout     time.Duration
	ReadyTimeout    time.Duration
	RetryDelay      time.Duration
	NavPollInterval time.Duration

	BoundaryAttempts int
	NavigateAttempts int
	FrontierAttempts int

	StorePath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ListenAddr:       ":7070",
		HTTPTimeout:      15 * time.Second,
		ReadyTimeout:     10 * time.Second,
		RetryDelay:       500 * time.Millisecond,
		NavPollInterval:  500 * time.Millisecond,
		BoundaryAttempts: 5,
		NavigateAttempts: 5,
		FrontierAttempts: 5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is required")
	}
	for name, url := range map[string]string{
		"boundary-url":  c.BoundaryURL,
		"frontier-url":  c.FrontierURL,
		"nav-url":       c.NavigationURL,
		"transform-url": c.TransformURL,
		"localizer-url": c.LocalizerURL,
	} {
		if url == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if c.BoundaryAttempts <= 0 || c.NavigateAttempts <= 0 || c.FrontierAttempts <= 0 {
		return fmt.Errorf("attempt budgets must be positive")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative")
	}
	return nil
}

// ToExplore converts the CLI configuration to the library configuration.
func (c Config) ToExplore(configPath string) explore.Config {
	return explore.Config{
		BoundaryURL:      trimSlash(c.BoundaryURL),
		FrontierURL:      trimSlash(c.FrontierURL),
		NavigationURL:    trimSlash(c.NavigationURL),
		TransformURL:     trimSlash(c.TransformURL),
		LocalizerURL:     trimSlash(c.LocalizerURL),
		HTTPTimeout:      c.HTTPTimeout,
		ReadyTimeout:     c.ReadyTimeout,
		BoundaryAttempts: c.BoundaryAttempts,
		NavigateAttempts: c.NavigateAttempts,
		FrontierAttempts: c.FrontierAttempts,
		RetryDelay:       c.RetryDelay,
		NavPollInterval:  c.NavPollInterval,
		StorePath:        c.StorePath,
		ConfigPath:       configPath,
	}
}

func trimSlash(url string) string {
	if len(url) > 0 && url[len(url)-1] == '/' {
		return url[:len(url)-1]
	}
	return url
}

// Logger returns the zerolog console logger the CLI uses.
func Logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// configSetter applies configuration values while respecting flag
// precedence: a value is skipped when its flag was explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses an int from a string, for environment variables.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}
