package mission

import (
	"context"
	"time"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

// BoundaryConfigurator installs the mission boundary on the remote costmap.
// Availability is waited for once with a hard bound; the install call itself
// is retried, which is safe because the remote state is idempotent.
type BoundaryConfigurator struct {
	svc          ports.BoundaryService
	retry        Retry
	readyTimeout time.Duration
	logger       log.Logger
}

// NewBoundaryConfigurator creates the configurator for one mission.
func NewBoundaryConfigurator(svc ports.BoundaryService, retry Retry, readyTimeout time.Duration, logger log.Logger) *BoundaryConfigurator {
	return &BoundaryConfigurator{svc: svc, retry: retry, readyTimeout: readyTimeout, logger: logger}
}

// Configure waits for the boundary service and installs the boundary.
// Unavailability surfaces as domain.ErrUnavailable, retry exhaustion as
// domain.ErrExhausted, and caller cancellation as ctx.Err().
func (c *BoundaryConfigurator) Configure(ctx context.Context, boundary domain.Polygon) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.readyTimeout)
	defer cancel()
	if err := c.svc.WaitReady(waitCtx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	return c.retry.Do(ctx, func(ctx context.Context) error {
		if err := c.svc.SetBoundary(ctx, boundary); err != nil {
			c.logger.Warn("failed to set region boundary", log.Err(err))
			return err
		}
		c.logger.Info("region boundary set", log.String("frame", boundary.Frame), log.Int("points", len(boundary.Points)))
		return nil
	})
}
