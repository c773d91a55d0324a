// Package store persists terminal mission records in a local SQLite
// database, giving operators a queryable mission log.
package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/roverlabs/explored/internal/domain"
	"github.com/roverlabs/explored/internal/ports"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store is a SQLite-backed mission recorder.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the mission log at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open mission log: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema, err := migrationFS.ReadFile("migrations/0001_init.sql")
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Record persists one terminal mission record.
func (s *Store) Record(ctx context.Context, rec ports.MissionRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO missions (id, outcome, moves, reason, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID.String(),
		rec.Outcome.String(),
		rec.Moves,
		rec.Reason,
		rec.StartedAt.UnixMilli(),
		rec.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record mission: %w", err)
	}
	return nil
}

// LastRecords returns up to n mission records, most recently finished first.
func (s *Store) LastRecords(ctx context.Context, n int) ([]ports.MissionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, outcome, moves, reason, started_at, finished_at
		 FROM missions ORDER BY finished_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query missions: %w", err)
	}
	defer rows.Close()

	var recs []ports.MissionRecord
	for rows.Next() {
		var (
			id, outcome, reason string
			moves               int
			startedMs, finished int64
		)
		if err := rows.Scan(&id, &outcome, &moves, &reason, &startedMs, &finished); err != nil {
			return nil, fmt.Errorf("scan mission: %w", err)
		}
		rec := ports.MissionRecord{
			Outcome:    parseOutcome(outcome),
			Moves:      moves,
			Reason:     reason,
			StartedAt:  time.UnixMilli(startedMs),
			FinishedAt: time.UnixMilli(finished),
		}
		if uid, err := uuid.Parse(id); err == nil {
			rec.ID = uid
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func parseOutcome(s string) domain.Outcome {
	switch s {
	case domain.OutcomeSucceeded.String():
		return domain.OutcomeSucceeded
	case domain.OutcomeAborted.String():
		return domain.OutcomeAborted
	case domain.OutcomePreempted.String():
		return domain.OutcomePreempted
	default:
		return domain.OutcomeUnknown
	}
}
