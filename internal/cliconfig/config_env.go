package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (EXPLORED_*). Environment values override the config file but are
// overridden by explicitly set flags (the changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("listen", os.Getenv("EXPLORED_LISTEN_ADDR"), &cfg.ListenAddr)
	s.setString("boundary-url", os.Getenv("EXPLORED_BOUNDARY_URL"), &cfg.BoundaryURL)
	s.setString("frontier-url", os.Getenv("EXPLORED_FRONTIER_URL"), &cfg.FrontierURL)
	s.setString("nav-url", os.Getenv("EXPLORED_NAV_URL"), &cfg.NavigationURL)
	s.setString("transform-url", os.Getenv("EXPLORED_TRANSFORM_URL"), &cfg.TransformURL)
	s.setString("localizer-url", os.Getenv("EXPLORED_LOCALIZER_URL"), &cfg.LocalizerURL)
	s.setString("store", os.Getenv("EXPLORED_STORE_PATH"), &cfg.StorePath)

	if err := s.setDuration("timeout", os.Getenv("EXPLORED_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("ready-timeout", os.Getenv("EXPLORED_READY_TIMEOUT"), &cfg.ReadyTimeout); err != nil {
		return err
	}
	if err := s.setDuration("retry-delay", os.Getenv("EXPLORED_RETRY_DELAY"), &cfg.RetryDelay); err != nil {
		return err
	}
	if err := s.setDuration("nav-poll", os.Getenv("EXPLORED_NAV_POLL_INTERVAL"), &cfg.NavPollInterval); err != nil {
		return err
	}

	if err := s.setIntFromString("boundary-attempts", os.Getenv("EXPLORED_BOUNDARY_ATTEMPTS"), &cfg.BoundaryAttempts); err != nil {
		return err
	}
	if err := s.setIntFromString("navigate-attempts", os.Getenv("EXPLORED_NAVIGATE_ATTEMPTS"), &cfg.NavigateAttempts); err != nil {
		return err
	}
	if err := s.setIntFromString("frontier-attempts", os.Getenv("EXPLORED_FRONTIER_ATTEMPTS"), &cfg.FrontierAttempts); err != nil {
		return err
	}

	return nil
}
