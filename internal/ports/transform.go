package ports

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
)

// PoseTransformer converts poses between coordinate frames. Comparing points
// across mismatched frames is undefined; the core transforms explicitly
// before any geometric test.
type PoseTransformer interface {
	// Transform returns pose expressed in frame. It fails when the frames
	// are not convertible.
	Transform(ctx context.Context, pose domain.Pose, frame string) (domain.Pose, error)
}

// Localizer reports the agent's current pose.
type Localizer interface {
	// CurrentPose returns the latest localization estimate.
	CurrentPose(ctx context.Context) (domain.Pose, error)
}
