package ports

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
)

// FrontierService asks the remote planner for the next unexplored point.
type FrontierService interface {
	// WaitReady blocks until the service is reachable or ctx expires.
	WaitReady(ctx context.Context) error

	// NextFrontier returns the next frontier to visit, given the agent's
	// current pose. When the planner answers successfully but finds nothing
	// left, it returns an error wrapping domain.ErrNoFrontier; any other
	// error is a transport or planner failure and may succeed on retry.
	NextFrontier(ctx context.Context, current domain.Pose) (domain.Pose, error)
}
