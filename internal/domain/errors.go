package domain

import "errors"

// Domain errors classify step failures for the orchestrator. Each component
// resolves its own failure detail into one of these kinds; the orchestrator
// checks them with errors.Is and never inspects anything lower-level.
var (
	// ErrUnavailable means a collaborator never came online within its wait
	// bound. Fatal for the mission; never retried.
	ErrUnavailable = errors.New("explored: collaborator unavailable")

	// ErrExhausted means a retried step failed on every attempt.
	ErrExhausted = errors.New("explored: retries exhausted")

	// ErrNoFrontier means the frontier planner answered successfully but
	// found nothing left to explore. A negative result, not a failure.
	ErrNoFrontier = errors.New("explored: no frontier found")

	// ErrMissionActive is returned when a mission is submitted while another
	// is still running. One mission runs per agent at a time.
	ErrMissionActive = errors.New("explored: a mission is already active")

	// ErrInvalidGoal is returned for goals that violate preconditions, such
	// as a boundary with fewer than three points.
	ErrInvalidGoal = errors.New("explored: invalid goal")
)
