// Package explored provides a frontier exploration mission orchestrator for
// autonomous robots. It drives a boundary-scoped explore loop against HTTP
// boundary, frontier and navigation services, retrying transient failures
// and inferring the mission outcome when no frontiers remain.
//
// Example usage:
//
//	cfg := explored.DefaultConfig()
//	cfg.FrontierURL = "http://localhost:8081"
//	cfg.NavURL = "http://localhost:8082"
//	e, err := explored.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := e.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	m, err := e.Submit(context.Background(), goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outcome, err := m.Wait(context.Background())
package explored

import (
	"github.com/roverlabs/explored/pkg/explore"
)

// Config holds the configuration for the exploration orchestrator.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = explore.Config

// Explorer owns the explore loop and admits one mission at a time.
type Explorer = explore.Explorer

// Mission is a handle to a submitted exploration mission.
type Mission = explore.Mission

// Goal pairs an exploration boundary with its center pose.
type Goal = explore.Goal

// Outcome is the terminal state of a mission.
type Outcome = explore.Outcome

// Option customizes an Explorer at construction time.
type Option = explore.Option

// New builds an Explorer from cfg. The Explorer performs no I/O until
// Start is called.
func New(cfg Config, opts ...Option) (*Explorer, error) {
	return explore.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
// At minimum, you must set the service URLs before calling New.
func DefaultConfig() Config {
	return explore.DefaultConfig()
}
