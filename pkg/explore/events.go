package explore

import (
	"github.com/google/uuid"

	"github.com/roverlabs/explored/internal/mission"
)

// EventHandler receives mission progress events. Handlers are called
// synchronously from the mission goroutine and should return quickly.
type EventHandler interface {
	// OnPhaseChange is called on every mission phase transition.
	OnPhaseChange(previous, current Phase, reason string)

	// OnMissionFinished is called once per mission with its terminal outcome.
	OnMissionFinished(id uuid.UUID, outcome Outcome)
}

// emitterAdapter bridges the mission package's phase events to the public
// EventHandler.
type emitterAdapter struct {
	handler EventHandler
}

func (a emitterAdapter) OnPhaseChange(previous, current mission.Phase, reason string) {
	if a.handler != nil {
		a.handler.OnPhaseChange(previous, current, reason)
	}
}
