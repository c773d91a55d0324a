package httpsvc

import (
	"context"
	"fmt"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

const boundaryEndpoint = "/v1/boundary"

// BoundaryClient implements ports.BoundaryService against the costmap
// boundary service.
type BoundaryClient struct {
	client
}

// NewBoundaryClient creates a boundary service client for the given base URL.
func NewBoundaryClient(base string, httpClient ports.HTTPClient, logger log.Logger) *BoundaryClient {
	return &BoundaryClient{client: newClient("boundary service", base, httpClient, logger)}
}

// WaitReady blocks until the boundary service is reachable or ctx expires.
func (b *BoundaryClient) WaitReady(ctx context.Context) error {
	return b.waitReady(ctx)
}

type boundaryRequest struct {
	Frame  string      `json:"frame"`
	Points []pointJSON `json:"points"`
}

type boundaryResponse struct {
	Accepted bool `json:"accepted"`
}

// SetBoundary installs the boundary on the remote costmap. Rejection is a
// transient failure; the caller's retry policy decides whether to re-send.
func (b *BoundaryClient) SetBoundary(ctx context.Context, boundary domain.Polygon) error {
	req := boundaryRequest{Frame: boundary.Frame, Points: make([]pointJSON, len(boundary.Points))}
	for i, p := range boundary.Points {
		req.Points[i] = pointJSON{X: p.X, Y: p.Y}
	}

	var resp boundaryResponse
	if err := b.postJSON(ctx, boundaryEndpoint, req, &resp); err != nil {
		return err
	}
	if !resp.Accepted {
		return fmt.Errorf("boundary service rejected the polygon")
	}
	return nil
}
