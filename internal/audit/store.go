package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed history database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		action TEXT NOT NULL,
		request TEXT NOT NULL,
		outcome TEXT NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		summary TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_events_started ON events(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert writes one event row.
func (s *Store) Insert(ctx context.Context, e *Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, session_id, started_at, action, request, outcome, duration_ms, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Session, e.StartedAt.UTC(), e.Action, e.Request, string(e.Outcome), e.DurationMs, e.Summary)
	return err
}

// Recent returns the most recent events, newest first. A non-positive
// limit means the default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, started_at, action, request, outcome, duration_ms, summary
		FROM events ORDER BY started_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var outcome string
		if err := rows.Scan(&e.ID, &e.Session, &e.StartedAt, &e.Action, &e.Request, &outcome, &e.DurationMs, &e.Summary); err != nil {
			return nil, err
		}
		e.Outcome = Outcome(outcome)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Stats summarises the full history table.
type Stats struct {
	Total         int
	OK            int
	Validation    int
	Errors        int
	AvgDurationMs float64
}

// ReadStats aggregates outcome counts and average duration.
func (s *Store) ReadStats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT count(*),
		       COALESCE(SUM(CASE WHEN outcome = 'ok' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = 'validation-error' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN outcome = 'error' THEN 1 ELSE 0 END), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM events
	`).Scan(&st.Total, &st.OK, &st.Validation, &st.Errors, &st.AvgDurationMs)
	if err != nil {
		return Stats{}, fmt.Errorf("read history stats: %w", err)
	}
	return st, nil
}
