// Package configwatcher provides live retry-knob reloading for explored.
// When enabled, it watches the TOML config file and applies changed retry
// settings to the running Explorer without a restart. Settings take effect
// for the next submitted mission.
package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/roverlabs/explored/internal/cliconfig"
	"github.com/roverlabs/explored/pkg/explore"
	"github.com/roverlabs/explored/pkg/log"
)

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// DebounceDelay is how long to wait after a file change before
	// reloading, so editors that write in several steps trigger one reload.
	// Default: 100 milliseconds.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// Plugin implements config file watching.
type Plugin struct {
	debounceDelay time.Duration

	mu       sync.Mutex
	path     string
	logger   log.Logger
	explorer *explore.Explorer
	watcher  *fsnotify.Watcher
	debounce *time.Timer
	wg       sync.WaitGroup
}

// New creates a new config watcher plugin.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	return &Plugin{debounceDelay: cfg.DebounceDelay}
}

// WithConfigWatcher returns an Explorer option enabling the plugin.
func WithConfigWatcher(cfg Config) explore.Option {
	return explore.WithPlugin(New(cfg))
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string { return "configwatcher" }

// Initialize starts watching the config file. With no config path the
// plugin stays disabled rather than failing the Explorer.
func (p *Plugin) Initialize(ctx context.Context, env explore.PluginEnv) error {
	p.mu.Lock()
	p.path = env.ConfigPath
	p.logger = env.Logger
	p.explorer = env.Explorer
	p.mu.Unlock()

	if p.path == "" {
		env.Logger.Warn("config watcher disabled: no config file path")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: editors replace files on save, which drops
	// watches on the file itself.
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(p.path), err)
	}

	p.mu.Lock()
	p.watcher = watcher
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx, watcher)
	env.Logger.Info("watching config file", log.String("path", p.path))
	return nil
}

func (p *Plugin) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(p.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.scheduleReload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Warn("config watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) scheduleReload() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.debounce = time.AfterFunc(p.debounceDelay, p.reload)
}

func (p *Plugin) reload() {
	fc, err := cliconfig.LoadFileConfig(p.path)
	if err != nil {
		p.logger.Warn("config reload failed", log.Err(err))
		return
	}

	settings := explore.RetrySettings{
		BoundaryAttempts: fc.BoundaryAttempts,
		NavigateAttempts: fc.NavigateAttempts,
		FrontierAttempts: fc.FrontierAttempts,
	}
	if fc.RetryDelay != "" {
		d, err := time.ParseDuration(fc.RetryDelay)
		if err != nil {
			p.logger.Warn("config reload: bad retry_delay", log.Err(err))
			return
		}
		settings.RetryDelay = d
	}

	p.explorer.ApplyRetrySettings(settings)
	p.logger.Info("config reloaded", log.String("path", p.path))
}

// Shutdown stops the watcher and waits for the watch goroutine.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	watcher := p.watcher
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	if watcher != nil {
		_ = watcher.Close()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
