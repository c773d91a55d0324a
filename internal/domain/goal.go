package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Goal is the immutable input of one exploration mission: the boundary the
// agent must stay within and the point it starts coverage from.
type Goal struct {
	// ID identifies the mission for logging, the HTTP API, and the mission log.
	ID uuid.UUID `json:"id"`

	// Boundary is the closed polygon constraining exploration.
	Boundary Polygon `json:"boundary"`

	// Center is the frame-qualified starting point inside the boundary.
	Center Pose `json:"center"`
}

// NewGoal builds a goal with a fresh mission ID.
func NewGoal(boundary Polygon, center Pose) Goal {
	return Goal{ID: uuid.New(), Boundary: boundary, Center: center}
}

// Validate checks the goal preconditions. A degenerate boundary is rejected
// here, before any remote call is made.
func (g Goal) Validate() error {
	if err := g.Boundary.Validate(); err != nil {
		return err
	}
	if g.Center.Frame == "" {
		return fmt.Errorf("%w: center frame is required", ErrInvalidGoal)
	}
	return nil
}
