package explore

import (
	"fmt"
	"time"

	"github.com/roverlabs/explored/internal/mission"
)

// Config holds the Explorer configuration. Use DefaultConfig and override
// what you need; service URLs are required unless the corresponding
// collaborator is injected through an option.
type Config struct {
	// Collaborator base URLs.
	BoundaryURL   string
	FrontierURL   string
	NavigationURL string
	TransformURL  string
	LocalizerURL  string

	// HTTPTimeout bounds individual collaborator requests.
	HTTPTimeout time.Duration

	// ReadyTimeout bounds each collaborator availability wait.
	ReadyTimeout time.Duration

	// Retry knobs, per step.
	BoundaryAttempts int
	NavigateAttempts int
	FrontierAttempts int
	RetryDelay       time.Duration

	// NavPollInterval is how often navigation goal status is polled.
	NavPollInterval time.Duration

	// StorePath, when set, enables the SQLite mission log at that path.
	StorePath string

	// ConfigPath, when set, is handed to plugins that watch the
	// configuration file, such as the configwatcher plugin.
	ConfigPath string
}

// DefaultConfig returns a Config with default values. Service URLs must
// still be set (or collaborators injected) before New.
func DefaultConfig() Config {
	return Config{
		HTTPTimeout:      15 * time.Second,
		ReadyTimeout:     mission.DefaultReadyTimeout,
		BoundaryAttempts: mission.DefaultAttempts,
		NavigateAttempts: mission.DefaultAttempts,
		FrontierAttempts: mission.DefaultAttempts,
		RetryDelay:       mission.DefaultRetryDelay,
		NavPollInterval:  500 * time.Millisecond,
	}
}

// SetDefaults fills zero-valued knobs with defaults.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
	if c.ReadyTimeout <= 0 {
		c.ReadyTimeout = d.ReadyTimeout
	}
	if c.BoundaryAttempts == 0 {
		c.BoundaryAttempts = d.BoundaryAttempts
	}
	if c.NavigateAttempts == 0 {
		c.NavigateAttempts = d.NavigateAttempts
	}
	if c.FrontierAttempts == 0 {
		c.FrontierAttempts = d.FrontierAttempts
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = d.RetryDelay
	}
	if c.NavPollInterval <= 0 {
		c.NavPollInterval = d.NavPollInterval
	}
}

// RetrySettings are the knobs that can be changed at runtime, for example by
// the configwatcher plugin. Zero values leave the current setting untouched.
type RetrySettings struct {
	BoundaryAttempts int
	NavigateAttempts int
	FrontierAttempts int
	RetryDelay       time.Duration
}

func (c Config) missionConfig() mission.Config {
	return mission.Config{
		BoundaryAttempts: c.BoundaryAttempts,
		NavigateAttempts: c.NavigateAttempts,
		FrontierAttempts: c.FrontierAttempts,
		RetryDelay:       c.RetryDelay,
		ReadyTimeout:     c.ReadyTimeout,
	}
}

func (c Config) validate(o options) error {
	if o.boundary == nil && c.BoundaryURL == "" {
		return fmt.Errorf("boundary service URL is required")
	}
	if o.frontier == nil && c.FrontierURL == "" {
		return fmt.Errorf("frontier service URL is required")
	}
	if o.navigator == nil && c.NavigationURL == "" {
		return fmt.Errorf("navigation service URL is required")
	}
	if o.transformer == nil && c.TransformURL == "" {
		return fmt.Errorf("transform service URL is required")
	}
	if o.localizer == nil && c.LocalizerURL == "" {
		return fmt.Errorf("localizer URL is required")
	}
	return c.missionConfig().Validate()
}
