package task

import (
	"context"
	"sync"
)

// Status is the state of a long-running task.
type Status int

const (
	// StatusPending means the task was submitted but not yet accepted.
	StatusPending Status = iota

	// StatusActive means the remote executor accepted the task and is
	// working on it.
	StatusActive

	// StatusSucceeded is the only terminal state that counts as success.
	StatusSucceeded

	// StatusAborted means the remote executor gave up on the task.
	StatusAborted

	// StatusRejected means the remote executor refused the task outright.
	StatusRejected

	// StatusPreempted means the task was cancelled while in flight.
	StatusPreempted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusActive:
		return "Active"
	case StatusSucceeded:
		return "Succeeded"
	case StatusAborted:
		return "Aborted"
	case StatusRejected:
		return "Rejected"
	case StatusPreempted:
		return "Preempted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status ends the task.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusAborted, StatusRejected, StatusPreempted:
		return true
	default:
		return false
	}
}

// Handle tracks one submitted task. The submitter finishes it exactly once
// with a terminal status; any number of goroutines may wait on it.
type Handle struct {
	mu       sync.Mutex
	status   Status
	done     chan struct{}
	cancelFn func()
}

// NewHandle creates a pending handle. cancel, if non-nil, is invoked at most
// once when Cancel is called and should ask the remote executor to preempt
// the task; the handle still only finishes when Finish is called.
func NewHandle(cancel func()) *Handle {
	return &Handle{
		status:   StatusPending,
		done:     make(chan struct{}),
		cancelFn: cancel,
	}
}

// Activate marks the task as accepted by the remote executor. It has no
// effect once the task is terminal.
func (h *Handle) Activate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.status.Terminal() {
		h.status = StatusActive
	}
}

// Finish records the terminal status. The first terminal status wins;
// subsequent calls are ignored. Finishing with a non-terminal status panics,
// since that is a programming error in the submitter.
func (h *Handle) Finish(s Status) {
	if !s.Terminal() {
		panic("task: Finish called with non-terminal status " + s.String())
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status.Terminal() {
		return
	}
	h.status = s
	close(h.done)
}

// Cancel asks the remote executor to preempt the task. It does not finish
// the handle; the submitter observes the preemption and calls Finish.
func (h *Handle) Cancel() {
	h.mu.Lock()
	fn := h.cancelFn
	h.cancelFn = nil
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Status returns the current status.
func (h *Handle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// Done returns a channel closed when the task reaches a terminal state.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task is terminal or ctx is cancelled. When ctx is
// cancelled first, Wait cancels the task and returns ctx's error alongside
// the current (possibly non-terminal) status.
func (h *Handle) Wait(ctx context.Context) (Status, error) {
	select {
	case <-h.done:
		return h.Status(), nil
	case <-ctx.Done():
		h.Cancel()
		return h.Status(), ctx.Err()
	}
}
