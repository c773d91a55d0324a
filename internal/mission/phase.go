package mission

import (
	"fmt"

	"github.com/roverlabs/explored/pkg/log"
)

// Phase is a non-terminal stage of the mission state machine. Terminal
// results are carried by domain.Outcome; PhaseDone marks that the machine
// has stopped, whatever the outcome.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseConfiguringBoundary
	PhaseMovingToCenter
	PhaseCheckingBoundary
	PhaseRequestingFrontier
	PhaseMovingToFrontier
	PhaseDone
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseConfiguringBoundary:
		return "ConfiguringBoundary"
	case PhaseMovingToCenter:
		return "MovingToCenter"
	case PhaseCheckingBoundary:
		return "CheckingBoundary"
	case PhaseRequestingFrontier:
		return "RequestingFrontier"
	case PhaseMovingToFrontier:
		return "MovingToFrontier"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// EventEmitter is called when the mission changes phase.
type EventEmitter interface {
	OnPhaseChange(previous, current Phase, reason string)
}

// validNext lists the allowed forward transitions. Every phase may also
// transition to PhaseDone, since abort and preemption can strike anywhere.
var validNext = map[Phase][]Phase{
	PhaseInit:                {PhaseConfiguringBoundary},
	PhaseConfiguringBoundary: {PhaseMovingToCenter},
	PhaseMovingToCenter:      {PhaseCheckingBoundary},
	PhaseCheckingBoundary:    {PhaseRequestingFrontier, PhaseMovingToFrontier},
	PhaseRequestingFrontier:  {PhaseMovingToFrontier},
	PhaseMovingToFrontier:    {PhaseCheckingBoundary},
	PhaseDone:                nil,
}

// tracker enforces the phase machine for a single mission. Missions run on
// one goroutine, so no locking is needed; the tracker exists to catch
// sequencing bugs and to emit phase events.
type tracker struct {
	phase   Phase
	logger  log.Logger
	emitter EventEmitter
}

func newTracker(logger log.Logger, emitter EventEmitter) *tracker {
	return &tracker{phase: PhaseInit, logger: logger, emitter: emitter}
}

// to transitions to next, rejecting edges the state machine does not have.
func (t *tracker) to(next Phase, reason string) error {
	if next != PhaseDone && !allowed(t.phase, next) {
		return fmt.Errorf("invalid phase transition %s -> %s", t.phase, next)
	}
	prev := t.phase
	t.phase = next

	if t.emitter != nil {
		t.emitter.OnPhaseChange(prev, next, reason)
	}
	t.logger.Info("phase transition",
		log.Stringer("from", prev),
		log.Stringer("to", next),
		log.String("reason", reason),
	)
	return nil
}

func allowed(from, to Phase) bool {
	for _, p := range validNext[from] {
		if p == to {
			return true
		}
	}
	return false
}
