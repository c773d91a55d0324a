package domain

// Pose is a frame-qualified position and heading of the agent or of a
// navigation target. Poses are produced by collaborators (localization,
// frontier planning) and never mutated by the core.
type Pose struct {
	Point Point   `json:"point"`
	Yaw   float64 `json:"yaw"`
	Frame string  `json:"frame"`
}

// InFrame reports whether the pose is expressed in the given frame.
func (p Pose) InFrame(frame string) bool {
	return p.Frame == frame
}
