// Package audit persists the step-by-step trace of a normalization run to a
// SQLite-backed log: which pass ran, what the expression looked like before
// and after, and whether the pass actually changed anything. cmd/ariscore's
// --audit flag and internal/rpcservice's Normalize RPC both write through a
// *Log obtained from Open.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	started_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS steps (
	session_id TEXT NOT NULL REFERENCES sessions(id),
	seq        INTEGER NOT NULL,
	pass_name  TEXT NOT NULL,
	before     TEXT NOT NULL,
	after      TEXT NOT NULL,
	changed    BOOLEAN NOT NULL,
	PRIMARY KEY (session_id, seq)
);
`

// Log is a handle to the audit database. The zero value is not usable; call
// Open.
type Log struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and ensures
// its schema exists.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("audit: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: pinging %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: creating schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Log) Close() error {
	return l.db.Close()
}

// Session records one normalization run and returns its ID so that Record
// calls can be attributed back to it. startedAt is passed in by the caller
// rather than taken from time.Now here, so callers under internal/config's
// IsTestMode can supply a fixed timestamp.
func (l *Log) Session(ctx context.Context, input string, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO sessions (id, input, started_at) VALUES (?, ?, ?)`,
		id, input, startedAt)
	if err != nil {
		return "", fmt.Errorf("audit: recording session: %w", err)
	}
	return id, nil
}

// Step is one pass's contribution to a normalization run.
type Step struct {
	Seq      int
	PassName string
	Before   string
	After    string
	Changed  bool
}

// Record appends a Step to sessionID's trace.
func (l *Log) Record(ctx context.Context, sessionID string, step Step) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO steps (session_id, seq, pass_name, before, after, changed) VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, step.Seq, step.PassName, step.Before, step.After, step.Changed)
	if err != nil {
		return fmt.Errorf("audit: recording step %d for session %s: %w", step.Seq, sessionID, err)
	}
	return nil
}

// Trace returns a session's steps in the order they ran.
func (l *Log) Trace(ctx context.Context, sessionID string) ([]Step, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT seq, pass_name, before, after, changed FROM steps WHERE session_id = ? ORDER BY seq`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("audit: querying trace for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var s Step
		if err := rows.Scan(&s.Seq, &s.PassName, &s.Before, &s.After, &s.Changed); err != nil {
			return nil, fmt.Errorf("audit: scanning trace row: %w", err)
		}
		steps = append(steps, s)
	}
	return steps, rows.Err()
}
