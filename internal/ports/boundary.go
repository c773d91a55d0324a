package ports

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
)

// BoundaryService installs the mission boundary on the remote costmap.
type BoundaryService interface {
	// WaitReady blocks until the service is reachable or ctx expires.
	// Expiry must be reported as an error wrapping domain.ErrUnavailable.
	WaitReady(ctx context.Context) error

	// SetBoundary installs the boundary. The remote state is idempotent:
	// re-sending the same boundary on retry is safe and expected.
	SetBoundary(ctx context.Context, boundary domain.Polygon) error
}
