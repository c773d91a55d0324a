package httpsvc

import (
	"context"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

const (
	transformEndpoint = "/v1/transform"
	poseEndpoint      = "/v1/pose"
)

// TransformClient implements ports.PoseTransformer against the
// pose-transform service.
type TransformClient struct {
	client
}

// NewTransformClient creates a transform service client for the given base URL.
func NewTransformClient(base string, httpClient ports.HTTPClient, logger log.Logger) *TransformClient {
	return &TransformClient{client: newClient("transform service", base, httpClient, logger)}
}

type transformRequest struct {
	Pose        poseJSON `json:"pose"`
	TargetFrame string   `json:"target_frame"`
}

type transformResponse struct {
	Pose poseJSON `json:"pose"`
}

// Transform returns pose expressed in frame. Non-convertible frames surface
// as the service's error status.
func (t *TransformClient) Transform(ctx context.Context, pose domain.Pose, frame string) (domain.Pose, error) {
	var resp transformResponse
	req := transformRequest{Pose: fromPose(pose), TargetFrame: frame}
	if err := t.postJSON(ctx, transformEndpoint, req, &resp); err != nil {
		return domain.Pose{}, err
	}
	return resp.Pose.toPose(), nil
}

// LocalizerClient implements ports.Localizer against the localization
// service.
type LocalizerClient struct {
	client
}

// NewLocalizerClient creates a localizer client for the given base URL.
func NewLocalizerClient(base string, httpClient ports.HTTPClient, logger log.Logger) *LocalizerClient {
	return &LocalizerClient{client: newClient("localizer", base, httpClient, logger)}
}

type poseResponse struct {
	Pose poseJSON `json:"pose"`
}

// CurrentPose returns the latest localization estimate.
func (l *LocalizerClient) CurrentPose(ctx context.Context) (domain.Pose, error) {
	var resp poseResponse
	if err := l.getJSON(ctx, poseEndpoint, &resp); err != nil {
		return domain.Pose{}, err
	}
	return resp.Pose.toPose(), nil
}
