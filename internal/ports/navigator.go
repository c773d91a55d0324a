package ports

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/pkg/task"
)

// Navigator submits navigation goals to the remote path planner/controller.
// Navigation is a long-running task: the returned handle reaches exactly one
// terminal status and can be cancelled while in flight.
type Navigator interface {
	// WaitReady blocks until the navigation executor is reachable or ctx
	// expires.
	WaitReady(ctx context.Context) error

	// Go submits a goal to move the agent to target. Submission errors are
	// returned directly; execution outcome is observed through the handle.
	Go(ctx context.Context, target domain.Pose) (*task.Handle, error)
}
