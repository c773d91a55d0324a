package httpsvc

import (
	"context"
	"fmt"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

const frontierEndpoint = "/v1/frontier"

// FrontierClient implements ports.FrontierService against the frontier
// planning service.
type FrontierClient struct {
	client
}

// NewFrontierClient creates a frontier service client for the given base URL.
func NewFrontierClient(base string, httpClient ports.HTTPClient, logger log.Logger) *FrontierClient {
	return &FrontierClient{client: newClient("frontier service", base, httpClient, logger)}
}

// WaitReady blocks until the frontier service is reachable or ctx expires.
func (f *FrontierClient) WaitReady(ctx context.Context) error {
	return f.waitReady(ctx)
}

type frontierRequest struct {
	Pose poseJSON `json:"pose"`
}

type frontierResponse struct {
	Found bool     `json:"found"`
	Next  poseJSON `json:"next"`
}

// NextFrontier asks the planner for the next unexplored point. A successful
// answer with found=false becomes domain.ErrNoFrontier, keeping the negative
// result distinct from transport failure.
func (f *FrontierClient) NextFrontier(ctx context.Context, current domain.Pose) (domain.Pose, error) {
	var resp frontierResponse
	if err := f.postJSON(ctx, frontierEndpoint, frontierRequest{Pose: fromPose(current)}, &resp); err != nil {
		return domain.Pose{}, err
	}
	if !resp.Found {
		return domain.Pose{}, fmt.Errorf("%w: planner reported nothing left", domain.ErrNoFrontier)
	}
	return resp.Next.toPose(), nil
}
