package explore

import "context"

// Plugin extends an Explorer with optional behavior, such as watching the
// configuration file for retry-knob changes.
type Plugin interface {
	// Name returns the plugin identifier, used in logs.
	Name() string

	// Initialize sets the plugin up. ctx stays alive until Close; plugins
	// that spawn goroutines should tie them to it.
	Initialize(ctx context.Context, env PluginEnv) error

	// Shutdown releases plugin resources. Called in reverse registration
	// order during Close.
	Shutdown(ctx context.Context) error
}

// PluginEnv is what a plugin gets to work with.
type PluginEnv struct {
	// ConfigPath is the configuration file path, when the embedder has one.
	ConfigPath string

	// Logger is the Explorer's logger.
	Logger Logger

	// Explorer is the owning instance. Plugins may apply runtime settings
	// through it.
	Explorer *Explorer
}
