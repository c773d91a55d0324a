package mission

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
)

// FrontierRequester wraps a single "next unexplored point" call. It carries
// no retry budget: "no frontier found" is a meaningful terminal signal, so
// the orchestrator drives the loop-level policy around it.
type FrontierRequester struct {
	svc ports.FrontierService
}

// NewFrontierRequester creates the requester for one mission.
func NewFrontierRequester(svc ports.FrontierService) *FrontierRequester {
	return &FrontierRequester{svc: svc}
}

// Next asks the planner for the next frontier given the current pose.
// A successful answer with nothing left wraps domain.ErrNoFrontier.
func (f *FrontierRequester) Next(ctx context.Context, current domain.Pose) (domain.Pose, error) {
	return f.svc.NextFrontier(ctx, current)
}
