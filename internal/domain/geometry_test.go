package domain

import (
	"errors"
	"testing"
)

func square() Polygon {
	return Polygon{
		Frame: "map",
		Points: []Point{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 10},
			{X: 0, Y: 10},
		},
	}
}

func TestPolygon_Contains(t *testing.T) {
	tests := []struct {
		name    string
		polygon Polygon
		pt      Point
		want    bool
	}{
		{
			name:    "center of square",
			polygon: square(),
			pt:      Point{X: 5, Y: 5},
			want:    true,
		},
		{
			name:    "outside to the right",
			polygon: square(),
			pt:      Point{X: 15, Y: 5},
			want:    false,
		},
		{
			name:    "outside above",
			polygon: square(),
			pt:      Point{X: 5, Y: 15},
			want:    false,
		},
		{
			name:    "near a corner but inside",
			polygon: square(),
			pt:      Point{X: 0.1, Y: 0.1},
			want:    true,
		},
		{
			name: "concave notch excludes point",
			polygon: Polygon{
				Frame: "map",
				Points: []Point{
					{X: 0, Y: 0},
					{X: 10, Y: 0},
					{X: 10, Y: 10},
					{X: 5, Y: 5},
					{X: 0, Y: 10},
				},
			},
			pt:   Point{X: 5, Y: 8},
			want: false,
		},
		{
			name: "concave shape still contains lower half",
			polygon: Polygon{
				Frame: "map",
				Points: []Point{
					{X: 0, Y: 0},
					{X: 10, Y: 0},
					{X: 10, Y: 10},
					{X: 5, Y: 5},
					{X: 0, Y: 10},
				},
			},
			pt:   Point{X: 5, Y: 2},
			want: true,
		},
		{
			name: "triangle inside",
			polygon: Polygon{
				Frame:  "map",
				Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}},
			},
			pt:   Point{X: 2, Y: 1},
			want: true,
		},
		{
			name: "triangle outside",
			polygon: Polygon{
				Frame:  "map",
				Points: []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4}},
			},
			pt:   Point{X: 3.5, Y: 3},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.polygon.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPolygon_ContainsEdgeDeterministic(t *testing.T) {
	// Points exactly on an edge get an unspecified but stable answer.
	p := square()
	pt := Point{X: 0, Y: 5}
	first := p.Contains(pt)
	for i := 0; i < 100; i++ {
		if got := p.Contains(pt); got != first {
			t.Fatalf("Contains(%v) not deterministic: got %v then %v", pt, first, got)
		}
	}
}

func TestPolygon_Validate(t *testing.T) {
	tests := []struct {
		name    string
		polygon Polygon
		wantErr bool
	}{
		{
			name:    "valid square",
			polygon: square(),
			wantErr: false,
		},
		{
			name: "two points is degenerate",
			polygon: Polygon{
				Frame:  "map",
				Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
			},
			wantErr: true,
		},
		{
			name:    "no points",
			polygon: Polygon{Frame: "map"},
			wantErr: true,
		},
		{
			name: "missing frame",
			polygon: Polygon{
				Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.polygon.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidGoal) {
				t.Errorf("Validate() error = %v, want ErrInvalidGoal", err)
			}
		})
	}
}
