package mission

import (
	"context"
	"fmt"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
	"github.com/roverlabs/explored/pkg/task"
)

// NavigationController wraps "move the agent to a pose" as a synchronous
// step: it submits the goal and blocks until the remote task is terminal.
// It performs no retries of its own; the orchestrator owns that budget.
type NavigationController struct {
	nav    ports.Navigator
	logger log.Logger
}

// NewNavigationController creates the controller for one mission.
func NewNavigationController(nav ports.Navigator, logger log.Logger) *NavigationController {
	return &NavigationController{nav: nav, logger: logger}
}

// MoveTo submits a navigation goal and awaits its terminal state. Only the
// remote task's own success maps to nil; aborted, rejected, and preempted
// all map to an error. Cancelling ctx cancels the in-flight remote goal and
// returns ctx.Err().
func (n *NavigationController) MoveTo(ctx context.Context, target domain.Pose) error {
	handle, err := n.nav.Go(ctx, target)
	if err != nil {
		return fmt.Errorf("submit navigation goal: %w", err)
	}

	status, err := handle.Wait(ctx)
	if err != nil {
		// Wait already asked the remote executor to preempt the goal.
		return err
	}
	if status != task.StatusSucceeded {
		n.logger.Warn("navigation goal ended without success", log.Stringer("status", status))
		return fmt.Errorf("navigation ended %s", status)
	}
	return nil
}
