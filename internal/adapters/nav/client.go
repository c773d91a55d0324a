// Package nav implements ports.Navigator over the navigation service's
// long-running-task HTTP protocol: goals are submitted, polled to a terminal
// status, and cancellable while in flight.
package nav

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/roverlabs/explored/internal/adapters/httpsvc"
	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
	"github.com/roverlabs/explored/pkg/log"
	"github.com/roverlabs/explored/pkg/task"
)

const goalsEndpoint = "/v1/goals"

// requestTimeout bounds individual poll and cancel requests, which run on
// their own contexts so an already-preempted mission can still observe the
// remote goal reaching its terminal state.
const requestTimeout = 10 * time.Second

// maxPollFailures is how many consecutive poll failures are tolerated before
// the goal is presumed lost and reported aborted.
const maxPollFailures = 5

// Client implements ports.Navigator against the navigation service.
type Client struct {
	base   string
	http   ports.HTTPClient
	poll   time.Duration
	logger log.Logger
}

// NewClient creates a navigation client. poll is the status poll interval.
func NewClient(base string, httpClient ports.HTTPClient, poll time.Duration, logger log.Logger) *Client {
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}
	return &Client{base: base, http: httpClient, poll: poll, logger: logger}
}

// WaitReady blocks until the navigation service is reachable or ctx expires.
func (c *Client) WaitReady(ctx context.Context) error {
	return httpsvc.WaitReady(ctx, c.http, c.base, "navigation service")
}

type poseJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Yaw   float64 `json:"yaw"`
	Frame string  `json:"frame"`
}

type goalRequest struct {
	Target poseJSON `json:"target"`
}

type goalResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Go submits target as a navigation goal and returns a handle tracking the
// remote task. The handle's cancel function issues a remote cancellation;
// the tracking goroutine keeps polling until the executor reports a terminal
// state, so preempted goals are observed, not abandoned.
func (c *Client) Go(ctx context.Context, target domain.Pose) (*task.Handle, error) {
	body, err := json.Marshal(goalRequest{Target: poseJSON{
		X: target.Point.X, Y: target.Point.Y, Yaw: target.Yaw, Frame: target.Frame,
	}})
	if err != nil {
		return nil, fmt.Errorf("marshal goal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+goalsEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create goal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp goalResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, fmt.Errorf("navigation service returned no goal id")
	}

	handle := task.NewHandle(func() { c.cancelGoal(resp.ID) })
	switch status := parseStatus(resp.Status); {
	case status.Terminal():
		handle.Finish(status)
	case status == task.StatusActive:
		handle.Activate()
	}

	if !handle.Status().Terminal() {
		go c.track(resp.ID, handle)
	}
	return handle, nil
}

// track polls the goal until it reaches a terminal status.
func (c *Client) track(id string, handle *task.Handle) {
	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	failures := 0
	for range ticker.C {
		status, err := c.goalStatus(id)
		if err != nil {
			failures++
			c.logger.Warn("goal status poll failed", log.String("goal", id), log.Err(err))
			if failures >= maxPollFailures {
				handle.Finish(task.StatusAborted)
				return
			}
			continue
		}
		failures = 0

		if status.Terminal() {
			handle.Finish(status)
			return
		}
		if status == task.StatusActive {
			handle.Activate()
		}
	}
}

func (c *Client) goalStatus(id string) (task.Status, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+goalsEndpoint+"/"+id, nil)
	if err != nil {
		return task.StatusPending, err
	}
	var resp goalResponse
	if err := c.do(req, &resp); err != nil {
		return task.StatusPending, err
	}
	return parseStatus(resp.Status), nil
}

// cancelGoal asks the executor to preempt the goal. The tracking goroutine
// observes the resulting terminal status.
func (c *Client) cancelGoal(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+goalsEndpoint+"/"+id, nil)
	if err != nil {
		c.logger.Error("create cancel request", log.String("goal", id), log.Err(err))
		return
	}
	if err := c.do(req, nil); err != nil {
		c.logger.Error("cancel navigation goal", log.String("goal", id), log.Err(err))
		return
	}
	c.logger.Info("navigation goal cancellation requested", log.String("goal", id))
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("navigation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("navigation service returned %d: %s", resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode navigation response: %w", err)
	}
	return nil
}

func parseStatus(s string) task.Status {
	switch s {
	case "pending":
		return task.StatusPending
	case "active":
		return task.StatusActive
	case "succeeded":
		return task.StatusSucceeded
	case "aborted":
		return task.StatusAborted
	case "rejected":
		return task.StatusRejected
	case "preempted":
		return task.StatusPreempted
	default:
		return task.StatusPending
	}
}
