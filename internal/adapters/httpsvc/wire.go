package httpsvc

import "github.com/roverlabs/explored/internal/domain"

// poseJSON is the wire shape shared by the boundary, frontier, transform,
// and localizer services.
type poseJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Yaw   float64 `json:"yaw"`
	Frame string  `json:"frame"`
}

func fromPose(p domain.Pose) poseJSON {
	return poseJSON{X: p.Point.X, Y: p.Point.Y, Yaw: p.Yaw, Frame: p.Frame}
}

func (p poseJSON) toPose() domain.Pose {
	return domain.Pose{Point: domain.Point{X: p.X, Y: p.Y}, Yaw: p.Yaw, Frame: p.Frame}
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
