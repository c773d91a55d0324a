package mission

import (
	"fmt"
	"time"
)

// Default step budgets. These mirror the knobs exposed through configuration;
// nothing in the orchestrator hardcodes them.
const (
	DefaultAttempts     = 5
	DefaultRetryDelay   = 500 * time.Millisecond
	DefaultReadyTimeout = 10 * time.Second
)

// Config holds the per-step retry budgets and timing knobs for one mission.
type Config struct {
	// BoundaryAttempts bounds retries of installing the boundary.
	BoundaryAttempts int

	// NavigateAttempts bounds retries of each navigation step.
	NavigateAttempts int

	// FrontierAttempts bounds consecutive failed frontier requests before
	// the termination inference kicks in.
	FrontierAttempts int

	// RetryDelay is the cooperative delay between failed attempts.
	RetryDelay time.Duration

	// ReadyTimeout bounds each collaborator availability wait. A service
	// still absent after this is a hard abort, not a retry target.
	ReadyTimeout time.Duration
}

// DefaultConfig returns a Config with the default budgets.
func DefaultConfig() Config {
	return Config{
		BoundaryAttempts: DefaultAttempts,
		NavigateAttempts: DefaultAttempts,
		FrontierAttempts: DefaultAttempts,
		RetryDelay:       DefaultRetryDelay,
		ReadyTimeout:     DefaultReadyTimeout,
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.BoundaryAttempts < 0 || c.NavigateAttempts < 0 || c.FrontierAttempts < 0 {
		return fmt.Errorf("attempt budgets must not be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative")
	}
	if c.ReadyTimeout <= 0 {
		return fmt.Errorf("ready timeout must be positive")
	}
	return nil
}
