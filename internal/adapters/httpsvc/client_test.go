package httpsvc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/pkg/log"
)

func TestWaitReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("health probe hit %s, want /healthz", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := WaitReady(ctx, srv.Client(), srv.URL, "test service"); err != nil {
		t.Errorf("WaitReady() error = %v, want nil", err)
	}
}

func TestWaitReady_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := WaitReady(ctx, srv.Client(), srv.URL, "test service")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("WaitReady() error = %v, want ErrUnavailable", err)
	}
}

func TestBoundaryClient_SetBoundary(t *testing.T) {
	tests := []struct {
		name     string
		accepted bool
		status   int
		wantErr  bool
	}{
		{"accepted", true, http.StatusOK, false},
		{"rejected", false, http.StatusOK, true},
		{"server error", true, http.StatusInternalServerError, true},
	}

	boundary := domain.Polygon{
		Frame:  "map",
		Points: []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/boundary" || r.Method != http.MethodPost {
					t.Errorf("request = %s %s, want POST /v1/boundary", r.Method, r.URL.Path)
				}
				var req boundaryRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("decode request: %v", err)
				}
				if req.Frame != "map" || len(req.Points) != 3 {
					t.Errorf("request body = %+v, want the submitted polygon", req)
				}
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(boundaryResponse{Accepted: tt.accepted})
			}))
			defer srv.Close()

			c := NewBoundaryClient(srv.URL, srv.Client(), log.Noop())
			err := c.SetBoundary(context.Background(), boundary)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetBoundary() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrontierClient_NextFrontier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req frontierRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Pose.Frame != "map" {
			t.Errorf("request pose frame = %v, want map", req.Pose.Frame)
		}
		_ = json.NewEncoder(w).Encode(frontierResponse{
			Found: true,
			Next:  poseJSON{X: 3, Y: 4, Yaw: 1.5, Frame: "map"},
		})
	}))
	defer srv.Close()

	c := NewFrontierClient(srv.URL, srv.Client(), log.Noop())
	current := domain.Pose{Point: domain.Point{X: 1, Y: 1}, Frame: "map"}
	next, err := c.NextFrontier(context.Background(), current)
	if err != nil {
		t.Fatalf("NextFrontier() error = %v, want nil", err)
	}
	want := domain.Pose{Point: domain.Point{X: 3, Y: 4}, Yaw: 1.5, Frame: "map"}
	if next != want {
		t.Errorf("NextFrontier() = %v, want %v", next, want)
	}
}

func TestFrontierClient_NothingLeft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(frontierResponse{Found: false})
	}))
	defer srv.Close()

	c := NewFrontierClient(srv.URL, srv.Client(), log.Noop())
	_, err := c.NextFrontier(context.Background(), domain.Pose{Frame: "map"})
	if !errors.Is(err, domain.ErrNoFrontier) {
		t.Errorf("NextFrontier() error = %v, want ErrNoFrontier", err)
	}
}

func TestTransformClient_Transform(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/transform" {
			t.Errorf("request path = %s, want /v1/transform", r.URL.Path)
		}
		var req transformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.TargetFrame != "map" {
			t.Errorf("target frame = %v, want map", req.TargetFrame)
		}
		_ = json.NewEncoder(w).Encode(transformResponse{
			Pose: poseJSON{X: req.Pose.X + 1, Y: req.Pose.Y + 1, Frame: req.TargetFrame},
		})
	}))
	defer srv.Close()

	c := NewTransformClient(srv.URL, srv.Client(), log.Noop())
	in := domain.Pose{Point: domain.Point{X: 1, Y: 2}, Frame: "odom"}
	out, err := c.Transform(context.Background(), in, "map")
	if err != nil {
		t.Fatalf("Transform() error = %v, want nil", err)
	}
	if out.Frame != "map" || out.Point.X != 2 || out.Point.Y != 3 {
		t.Errorf("Transform() = %v, want pose relabeled into map", out)
	}
}

func TestLocalizerClient_CurrentPose(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pose" || r.Method != http.MethodGet {
			t.Errorf("request = %s %s, want GET /v1/pose", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(poseResponse{Pose: poseJSON{X: 7, Y: 8, Yaw: 0.5, Frame: "odom"}})
	}))
	defer srv.Close()

	c := NewLocalizerClient(srv.URL, srv.Client(), log.Noop())
	pose, err := c.CurrentPose(context.Background())
	if err != nil {
		t.Fatalf("CurrentPose() error = %v, want nil", err)
	}
	want := domain.Pose{Point: domain.Point{X: 7, Y: 8}, Yaw: 0.5, Frame: "odom"}
	if pose != want {
		t.Errorf("CurrentPose() = %v, want %v", pose, want)
	}
}
