package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/roverlabs/explored/internal/domain"
)

// MissionRecord is the terminal record of one mission, written exactly once.
type MissionRecord struct {
	ID         uuid.UUID
	Outcome    domain.Outcome
	Moves      int
	Reason     string
	StartedAt  time.Time
	FinishedAt time.Time
}

// MissionRecorder persists terminal mission records. Recording is
// best-effort: a recorder failure is logged and never changes the outcome.
type MissionRecorder interface {
	// Record persists one terminal mission record.
	Record(ctx context.Context, rec MissionRecord) error
}
