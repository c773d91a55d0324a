package explore

import (
	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/mission"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
)

// Re-exported domain types, so embedders build goals without reaching into
// internal packages.
type (
	// Point is a 2D position.
	Point = domain.Point

	// Polygon is a closed, frame-qualified exploration boundary.
	Polygon = domain.Polygon

	// Pose is a frame-qualified position and heading.
	Pose = domain.Pose

	// Goal is the input of one exploration mission.
	Goal = domain.Goal

	// Outcome is the terminal result of a mission.
	Outcome = domain.Outcome

	// Phase is a stage of the mission state machine.
	Phase = mission.Phase
)

// Terminal outcomes.
const (
	OutcomeUnknown   = domain.OutcomeUnknown
	OutcomeSucceeded = domain.OutcomeSucceeded
	OutcomeAborted   = domain.OutcomeAborted
	OutcomePreempted = domain.OutcomePreempted
)

// NewGoal builds a goal with a fresh mission ID.
func NewGoal(boundary Polygon, center Pose) Goal {
	return domain.NewGoal(boundary, center)
}

// Errors embedders may check with errors.Is.
var (
	ErrMissionActive = domain.ErrMissionActive
	ErrInvalidGoal   = domain.ErrInvalidGoal
	ErrUnavailable   = domain.ErrUnavailable
	ErrExhausted     = domain.ErrExhausted
	ErrNoFrontier    = domain.ErrNoFrontier
)

// Collaborator interfaces, re-exported for injection via options.
type (
	// BoundaryService installs the exploration boundary.
	BoundaryService = ports.BoundaryService

	// FrontierService computes the next unexplored point.
	FrontierService = ports.FrontierService

	// Navigator moves the agent as a long-running task.
	Navigator = ports.Navigator

	// PoseTransformer converts poses between frames.
	PoseTransformer = ports.PoseTransformer

	// Localizer reports the agent's current pose.
	Localizer = ports.Localizer

	// MissionRecorder persists terminal mission records.
	MissionRecorder = ports.MissionRecorder

	// MissionRecord is one terminal mission record.
	MissionRecord = ports.MissionRecord

	// HTTPClient abstracts HTTP transport; *http.Client satisfies it.
	HTTPClient = ports.HTTPClient

	// Logger is the structured logging interface from pkg/log.
	Logger = log.Logger
)
