package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewGoal(t *testing.T) {
	center := Pose{Point: Point{X: 5, Y: 5}, Frame: "map"}
	g := NewGoal(square(), center)

	if g.ID == uuid.Nil {
		t.Error("NewGoal() did not assign a mission ID")
	}
	if g.Boundary.Frame != "map" {
		t.Errorf("Boundary.Frame = %v, want map", g.Boundary.Frame)
	}
	if g.Center != center {
		t.Errorf("Center = %v, want %v", g.Center, center)
	}
}

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{
			name:    "valid goal",
			goal:    NewGoal(square(), Pose{Point: Point{X: 5, Y: 5}, Frame: "map"}),
			wantErr: false,
		},
		{
			name:    "degenerate boundary",
			goal:    NewGoal(Polygon{Frame: "map", Points: []Point{{X: 0, Y: 0}}}, Pose{Frame: "map"}),
			wantErr: true,
		},
		{
			name:    "center missing frame",
			goal:    NewGoal(square(), Pose{Point: Point{X: 5, Y: 5}}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.goal.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGoal) {
				t.Errorf("Validate() error = %v, want ErrInvalidGoal", err)
			}
		})
	}
}

func TestPose_InFrame(t *testing.T) {
	p := Pose{Point: Point{X: 1, Y: 2}, Frame: "map"}
	if !p.InFrame("map") {
		t.Error("InFrame(map) = false, want true")
	}
	if p.InFrame("odom") {
		t.Error("InFrame(odom) = true, want false")
	}
}

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeUnknown, "Unknown"},
		{OutcomeSucceeded, "Succeeded"},
		{OutcomeAborted, "Aborted"},
		{OutcomePreempted, "Preempted"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestOutcome_Terminal(t *testing.T) {
	if OutcomeUnknown.Terminal() {
		t.Error("OutcomeUnknown.Terminal() = true, want false")
	}
	for _, o := range []Outcome{OutcomeSucceeded, OutcomeAborted, OutcomePreempted} {
		if !o.Terminal() {
			t.Errorf("%v.Terminal() = false, want true", o)
		}
	}
}
