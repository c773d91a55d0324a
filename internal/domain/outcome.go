package domain

// Outcome is the terminal result of a mission. It is set exactly once and
// reported exactly once.
type Outcome int

const (
	// OutcomeUnknown means the mission has not reached a terminal state.
	OutcomeUnknown Outcome = iota

	// OutcomeSucceeded means the region is considered covered: the frontier
	// planner repeatedly found nothing left after at least one successful
	// exploration move.
	OutcomeSucceeded

	// OutcomeAborted means a step exhausted its retries, a collaborator never
	// became available, or coverage was never achieved.
	OutcomeAborted

	// OutcomePreempted means the caller cancelled the mission.
	OutcomePreempted
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnknown:
		return "Unknown"
	case OutcomeSucceeded:
		return "Succeeded"
	case OutcomeAborted:
		return "Aborted"
	case OutcomePreempted:
		return "Preempted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the outcome is one of the three terminal results.
func (o Outcome) Terminal() bool {
	return o == OutcomeSucceeded || o == OutcomeAborted || o == OutcomePreempted
}
