package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	adapter := WrapZerolog(zerolog.New(&buf))

	adapter.Info("mission started",
		String("mission", "m-1"),
		Int("points", 4),
		Float64("x", 2.5),
		Bool("ready", true),
		Duration("delay", 500*time.Millisecond),
		Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\noutput: %s", err, buf.String())
	}
	if entry["message"] != "mission started" {
		t.Errorf("message = %v, want mission started", entry["message"])
	}
	if entry["mission"] != "m-1" {
		t.Errorf("mission = %v, want m-1", entry["mission"])
	}
	if entry["points"] != float64(4) {
		t.Errorf("points = %v, want 4", entry["points"])
	}
	if entry["ready"] != true {
		t.Errorf("ready = %v, want true", entry["ready"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

type phaseLike int

func (phaseLike) String() string { return "CheckingBoundary" }

func TestStringerField(t *testing.T) {
	f := Stringer("phase", phaseLike(0))
	if f.Value != "CheckingBoundary" {
		t.Errorf("Stringer field value = %v, want CheckingBoundary", f.Value)
	}
}

func TestNoopLoggerDiscards(t *testing.T) {
	// Must not panic, even with nil-ish fields.
	l := Noop()
	l.Debug("a")
	l.Info("b", String("k", "v"))
	l.Warn("c")
	l.Error("d", Err(errors.New("x")))
}
