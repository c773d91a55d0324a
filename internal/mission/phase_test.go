package mission

import (
	"testing"

	"github.com/roverlabs/explored/pkg/log"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseInit, "Init"},
		{PhaseConfiguringBoundary, "ConfiguringBoundary"},
		{PhaseMovingToCenter, "MovingToCenter"},
		{PhaseCheckingBoundary, "CheckingBoundary"},
		{PhaseRequestingFrontier, "RequestingFrontier"},
		{PhaseMovingToFrontier, "MovingToFrontier"},
		{PhaseDone, "Done"},
		{Phase(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

type phaseRecorder struct {
	transitions [][2]Phase
}

func (r *phaseRecorder) OnPhaseChange(prev, cur Phase, reason string) {
	r.transitions = append(r.transitions, [2]Phase{prev, cur})
}

func TestTracker_ValidTransitions(t *testing.T) {
	rec := &phaseRecorder{}
	tr := newTracker(log.Noop(), rec)

	steps := []Phase{
		PhaseConfiguringBoundary,
		PhaseMovingToCenter,
		PhaseCheckingBoundary,
		PhaseRequestingFrontier,
		PhaseMovingToFrontier,
		PhaseCheckingBoundary,
		PhaseMovingToFrontier, // boundary recovery skips the frontier request
		PhaseDone,
	}
	for _, next := range steps {
		if err := tr.to(next, "test"); err != nil {
			t.Fatalf("to(%v) error = %v, want nil", next, err)
		}
	}
	if len(rec.transitions) != len(steps) {
		t.Errorf("emitted %d transitions, want %d", len(rec.transitions), len(steps))
	}
}

func TestTracker_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		to   Phase
	}{
		{"init cannot skip to moving", PhaseInit, PhaseMovingToFrontier},
		{"boundary config cannot loop", PhaseConfiguringBoundary, PhaseConfiguringBoundary},
		{"center move cannot request frontier directly", PhaseMovingToCenter, PhaseRequestingFrontier},
		{"done is terminal", PhaseDone, PhaseCheckingBoundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(log.Noop(), nil)
			tr.phase = tt.from
			if err := tr.to(tt.to, "test"); err == nil {
				t.Errorf("to(%v) from %v succeeded, want error", tt.to, tt.from)
			}
		})
	}
}

func TestTracker_DoneReachableFromAnywhere(t *testing.T) {
	for p := PhaseInit; p <= PhaseMovingToFrontier; p++ {
		tr := newTracker(log.Noop(), nil)
		tr.phase = p
		if err := tr.to(PhaseDone, "abort"); err != nil {
			t.Errorf("to(Done) from %v error = %v, want nil", p, err)
		}
	}
}
