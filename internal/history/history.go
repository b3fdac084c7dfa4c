// Package history provides SQLite-based persistence for chat transcripts and
// status-check records. If opening the database fails the store degrades to
// in-memory storage with a logged warning, so the service still answers.
package history

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/glebarez/go-sqlite"

	"github.com/rmss-studio/tutorbot/internal/logger"
)

// Store persists conversation turns and status checks.
type Store struct {
	db *sql.DB // nil when running memory-only

	mu       sync.Mutex
	messages []Message
	statuses []StatusCheck
}

// NewStore opens (and if needed creates) the SQLite database at path. A
// failed open or migration is not fatal: the returned store keeps everything
// in memory instead.
func NewStore(path string) *Store {
	s := &Store{}

	db, err := sql.Open("sqlite", "file:"+path+"?_busy_timeout=10000&_fk=1")
	if err != nil {
		logger.L.Warn("sqlite open failed; using in-memory history", "error", err)
		return s
	}
	if err := migrate(db); err != nil {
		logger.L.Warn("sqlite migration failed; using in-memory history", "error", err)
		db.Close()
		return s
	}

	logger.L.Info("sqlite history DB initialized", "path", path)
	s.db = db
	return s
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			body TEXT NOT NULL,
			sender TEXT NOT NULL,
			user_type TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id, created_at);`,
		`CREATE TABLE IF NOT EXISTS status_checks (
			id TEXT PRIMARY KEY,
			client_name TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveMessage appends one turn to a session's transcript.
func (s *Store) SaveMessage(ctx context.Context, msg Message) error {
	if s.db == nil {
		s.mu.Lock()
		s.messages = append(s.messages, msg)
		s.mu.Unlock()
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, session_id, body, sender, user_type, created_at) VALUES (?,?,?,?,?,?);`,
		msg.ID, msg.SessionID, msg.Body, msg.Sender, msg.UserType, msg.CreatedAt)
	return err
}

// ListMessages returns every turn of a session in chronological order.
func (s *Store) ListMessages(ctx context.Context, sessionID string) ([]Message, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		var out []Message
		for _, m := range s.messages {
			if m.SessionID == sessionID {
				out = append(out, m)
			}
		}
		return out, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, body, sender, user_type, created_at FROM messages
		 WHERE session_id = ? ORDER BY created_at ASC, rowid ASC;`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMessages(rows)
}

// Recent returns up to n of the most recent turns of a session, oldest first.
// The dialog lookback only ever needs the tail of the transcript.
func (s *Store) Recent(ctx context.Context, sessionID string, n int) ([]Message, error) {
	if s.db == nil {
		all, _ := s.ListMessages(ctx, sessionID)
		if len(all) > n {
			all = all[len(all)-n:]
		}
		return all, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, body, sender, user_type, created_at FROM messages
		 WHERE session_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?;`, sessionID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}
	// Newest-first from the query; flip back to chronological.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func scanMessages(rows *sql.Rows) ([]Message, error) {
	var out []Message
	for rows.Next() {
		var m Message
		var userType sql.NullString
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Body, &m.Sender, &userType, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.UserType = userType.String
		out = append(out, m)
	}
	return out, rows.Err()
}

// SaveStatusCheck records one health-check entry.
func (s *Store) SaveStatusCheck(ctx context.Context, check StatusCheck) error {
	if s.db == nil {
		s.mu.Lock()
		s.statuses = append(s.statuses, check)
		s.mu.Unlock()
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES (?,?,?);`,
		check.ID, check.ClientName, check.Timestamp)
	return err
}

// ListStatusChecks returns all recorded health checks, oldest first.
func (s *Store) ListStatusChecks(ctx context.Context) ([]StatusCheck, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]StatusCheck, len(s.statuses))
		copy(out, s.statuses)
		return out, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_name, created_at FROM status_checks ORDER BY created_at ASC, rowid ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StatusCheck
	for rows.Next() {
		var c StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Close releases the underlying database, if any.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
