package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with strings for durations to stay TOML friendly.
type FileConfig struct {
	ListenAddr string `toml:"listen_addr"`

	BoundaryURL   string `toml:"boundary_url"`
	FrontierURL   string `toml:"frontier_url"`
	NavigationURL string `toml:"nav_url"`
	TransformURL  string `toml:"transform_url"`
	LocalizerURL  string `toml:"localizer_url"`

	HTTPTimeout     string `toml:"http_timeout"`
	ReadyTimeout    string `toml:"ready_timeout"`
	RetryDelay      string `toml:"retry_delay"`
	NavPollInterval string `toml:"nav_poll_interval"`

	BoundaryAttempts int `toml:"boundary_attempts"`
	NavigateAttempts int `toml:"navigate_attempts"`
	FrontierAttempts int `toml:"frontier_attempts"`

	StorePath string `toml:"store_path"`
}

// DefaultConfigPath returns $HOME/.explored/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".explored", "config.toml")
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// LoadFileConfig parses the TOML config file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg, skipping any knob whose
// flag was explicitly set on the command line.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("listen", fc.ListenAddr, &cfg.ListenAddr)
	s.setString("boundary-url", fc.BoundaryURL, &cfg.BoundaryURL)
	s.setString("frontier-url", fc.FrontierURL, &cfg.FrontierURL)
	s.setString("nav-url", fc.NavigationURL, &cfg.NavigationURL)
	s.setString("transform-url", fc.TransformURL, &cfg.TransformURL)
	s.setString("localizer-url", fc.LocalizerURL, &cfg.LocalizerURL)
	s.setString("store", fc.StorePath, &cfg.StorePath)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("ready-timeout", fc.ReadyTimeout, &cfg.ReadyTimeout); err != nil {
		return err
	}
	if err := s.setDuration("retry-delay", fc.RetryDelay, &cfg.RetryDelay); err != nil {
		return err
	}
	if err := s.setDuration("nav-poll", fc.NavPollInterval, &cfg.NavPollInterval); err != nil {
		return err
	}

	s.setInt("boundary-attempts", fc.BoundaryAttempts, &cfg.BoundaryAttempts)
	s.setInt("navigate-attempts", fc.NavigateAttempts, &cfg.NavigateAttempts)
	s.setInt("frontier-attempts", fc.FrontierAttempts, &cfg.FrontierAttempts)

	return nil
}
