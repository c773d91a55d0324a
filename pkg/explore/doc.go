// Package explore provides the embeddable mission runner for explored.
//
// Create an [Explorer] with New, Start it, then Submit exploration goals:
//
//	cfg := explore.DefaultConfig()
//	cfg.BoundaryURL = "http://costmap:8080"
//	// ...
//	e, err := explore.New(cfg, explore.WithLogger(logger))
//	if err != nil { ... }
//	if err := e.Start(ctx); err != nil { ... }
//	m, err := e.Submit(ctx, goal)
//	outcome, err := m.Wait(ctx)
//
// Exactly one mission runs at a time; submitting while one is active returns
// [ErrMissionActive]. Cancel a running mission through [Mission.Cancel] or by
// cancelling the submit context.
package explore
