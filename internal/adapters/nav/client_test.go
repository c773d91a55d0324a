package nav

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/pkg/log"
	"github.com/roverlabs/explored/pkg/task"
)

// goalServer is a scripted navigation executor: goals start active and move
// to the configured terminal status after a given number of polls, or to
// preempted when cancelled.
type goalServer struct {
	mu        sync.Mutex
	terminal  string
	pollsLeft int
	cancelled bool
	submitted poseJSON
}

func (g *goalServer) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/goals", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req goalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode goal request: %v", err)
		}
		g.mu.Lock()
		g.submitted = req.Target
		g.mu.Unlock()
		_ = json.NewEncoder(w).Encode(goalResponse{ID: "goal-1", Status: "active"})
	})
	mux.HandleFunc("/v1/goals/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/v1/goals/")
		if id != "goal-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		g.mu.Lock()
		defer g.mu.Unlock()
		switch r.Method {
		case http.MethodDelete:
			g.cancelled = true
			w.WriteHeader(http.StatusAccepted)
		case http.MethodGet:
			status := "active"
			if g.cancelled {
				status = "preempted"
			} else if g.pollsLeft <= 0 {
				status = g.terminal
			} else {
				g.pollsLeft--
			}
			_ = json.NewEncoder(w).Encode(goalResponse{ID: id, Status: status})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func TestClient_GoTracksToSuccess(t *testing.T) {
	gs := &goalServer{terminal: "succeeded", pollsLeft: 2}
	srv := httptest.NewServer(gs.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), 10*time.Millisecond, log.Noop())
	target := domain.Pose{Point: domain.Point{X: 3, Y: 4}, Yaw: 1.2, Frame: "map"}
	handle, err := c.Go(context.Background(), target)
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	status, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if status != task.StatusSucceeded {
		t.Errorf("Wait() status = %v, want Succeeded", status)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()
	want := poseJSON{X: 3, Y: 4, Yaw: 1.2, Frame: "map"}
	if gs.submitted != want {
		t.Errorf("submitted goal = %+v, want %+v", gs.submitted, want)
	}
}

func TestClient_GoTracksToAborted(t *testing.T) {
	gs := &goalServer{terminal: "aborted", pollsLeft: 1}
	srv := httptest.NewServer(gs.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), 10*time.Millisecond, log.Noop())
	handle, err := c.Go(context.Background(), domain.Pose{Frame: "map"})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	status, err := handle.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if status != task.StatusAborted {
		t.Errorf("Wait() status = %v, want Aborted", status)
	}
}

func TestClient_CancelPreemptsRemoteGoal(t *testing.T) {
	gs := &goalServer{terminal: "succeeded", pollsLeft: 1000}
	srv := httptest.NewServer(gs.handler(t))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), 10*time.Millisecond, log.Noop())
	handle, err := c.Go(context.Background(), domain.Pose{Frame: "map"})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}

	// Cancelling the wait context issues a remote DELETE; the tracker then
	// observes the preempted status.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := handle.Wait(ctx); err == nil {
		t.Fatal("Wait() with cancelled context returned nil error")
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-handle.Done():
			if got := handle.Status(); got != task.StatusPreempted {
				t.Errorf("final status = %v, want Preempted", got)
			}
			gs.mu.Lock()
			cancelled := gs.cancelled
			gs.mu.Unlock()
			if !cancelled {
				t.Error("remote goal was never cancelled")
			}
			return
		case <-deadline:
			t.Fatal("goal never reached a terminal state after cancellation")
		}
	}
}

func TestClient_GoRejectedImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(goalResponse{ID: "goal-1", Status: "rejected"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), 10*time.Millisecond, log.Noop())
	handle, err := c.Go(context.Background(), domain.Pose{Frame: "map"})
	if err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	if got := handle.Status(); got != task.StatusRejected {
		t.Errorf("Status() = %v, want Rejected without any polling", got)
	}
}

func TestClient_GoMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(goalResponse{Status: "active"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), 10*time.Millisecond, log.Noop())
	if _, err := c.Go(context.Background(), domain.Pose{Frame: "map"}); err == nil {
		t.Error("Go() with missing goal id succeeded, want error")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want task.Status
	}{
		{"pending", task.StatusPending},
		{"active", task.StatusActive},
		{"succeeded", task.StatusSucceeded},
		{"aborted", task.StatusAborted},
		{"rejected", task.StatusRejected},
		{"preempted", task.StatusPreempted},
		{"garbage", task.StatusPending},
	}
	for _, tt := range tests {
		if got := parseStatus(tt.in); got != tt.want {
			t.Errorf("parseStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
