package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/roverlabs/explored/pkg/explore"
)

// server exposes the mission submission protocol over HTTP: submit a goal,
// observe its terminal state, and cancel it asynchronously.
type server struct {
	explorer *explore.Explorer
	log      zerolog.Logger
}

func newServer(e *explore.Explorer, log zerolog.Logger) *server {
	return &server{explorer: e, log: log}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /v1/missions", s.submitMission)
	mux.HandleFunc("GET /v1/missions", s.listMissions)
	mux.HandleFunc("GET /v1/missions/{id}", s.missionStatus)
	mux.HandleFunc("DELETE /v1/missions/{id}", s.cancelMission)
	return mux
}

type missionStatusResponse struct {
	ID      string `json:"id"`
	Running bool   `json:"running"`
	Outcome string `json:"outcome,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *server) submitMission(w http.ResponseWriter, r *http.Request) {
	var goal explore.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		httpError(w, http.StatusBadRequest, "decode goal: "+err.Error())
		return
	}

	// The mission must outlive the submit request; cancellation goes
	// through DELETE, not through the request context.
	m, err := s.explorer.Submit(context.Background(), goal)
	switch {
	case errors.Is(err, explore.ErrMissionActive):
		httpError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, explore.ErrInvalidGoal):
		httpError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info().Str("mission", m.ID().String()).Msg("mission submitted")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(missionStatusResponse{ID: m.ID().String(), Running: true})
}

func (s *server) missionStatus(w http.ResponseWriter, r *http.Request) {
	m := s.currentMission(w, r)
	if m == nil {
		return
	}

	resp := missionStatusResponse{ID: m.ID().String()}
	select {
	case <-m.Done():
		outcome, err := m.Outcome()
		resp.Outcome = outcome.String()
		if err != nil {
			resp.Error = err.Error()
		}
	default:
		resp.Running = true
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *server) cancelMission(w http.ResponseWriter, r *http.Request) {
	m := s.currentMission(w, r)
	if m == nil {
		return
	}
	m.Cancel()
	s.log.Info().Str("mission", m.ID().String()).Msg("mission cancellation requested")
	w.WriteHeader(http.StatusAccepted)
}

func (s *server) listMissions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.explorer.MissionLog(r.Context(), 20)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type missionRecord struct {
		ID         string `json:"id"`
		Outcome    string `json:"outcome"`
		Moves      int    `json:"moves"`
		Reason     string `json:"reason,omitempty"`
		StartedAt  int64  `json:"started_at"`
		FinishedAt int64  `json:"finished_at"`
	}
	out := make([]missionRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, missionRecord{
			ID:         rec.ID.String(),
			Outcome:    rec.Outcome.String(),
			Moves:      rec.Moves,
			Reason:     rec.Reason,
			StartedAt:  rec.StartedAt.UnixMilli(),
			FinishedAt: rec.FinishedAt.UnixMilli(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// currentMission resolves the {id} path segment against the active or most
// recent mission; this daemon runs one mission at a time.
func (s *server) currentMission(w http.ResponseWriter, r *http.Request) *explore.Mission {
	m := s.explorer.Current()
	if m == nil || m.ID().String() != r.PathValue("id") {
		httpError(w, http.StatusNotFound, "no such mission")
		return nil
	}
	return m
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
