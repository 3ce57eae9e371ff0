// Package storage provides SQLite-based persistence for finished match-3
// sessions and their swap journals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how timestamps are written: fixed width, so text order is
// time order. legacyTimeLayout is SQLite's CURRENT_TIMESTAMP format,
// accepted when reading.
const (
	timeLayout       = "2006-01-02T15:04:05.000000000Z07:00"
	legacyTimeLayout = "2006-01-02 15:04:05"
)

// ErrNotFound is returned by lookups of a row that does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is the summary of one finished game session.
type Session struct {
	ID             string
	Variant        string
	Seed           int64
	Width          int
	Height         int
	Kinds          int
	Swaps          int // committed swaps
	Rejected       int // swaps refused by the engine
	Cleared        int // tokens removed across all cascades
	LongestCascade int // most cycles triggered by a single swap
	Reshuffles     int
	StartedAt      time.Time
	EndedAt        time.Time
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	if s.EndedAt.Before(s.StartedAt) {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// SwapRecord is one journal line of a session.
type SwapRecord struct {
	Seq     int
	AX, AY  int
	BX, BY  int
	Outcome string // "ok", "no_matches", "no_token", "limit"
	Cycles  int
	Removed int
}

// VariantStats aggregates all stored sessions of one variant.
type VariantStats struct {
	Variant        string
	Sessions       int
	TotalSwaps     int
	TotalCleared   int64
	BestCleared    int
	AvgCleared     float64
	LongestCascade int
	LastPlayed     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			kinds INTEGER NOT NULL,
			swaps INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			cleared INTEGER NOT NULL DEFAULT 0,
			longest_cascade INTEGER NOT NULL DEFAULT 0,
			reshuffles INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_variant ON sessions(variant);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(variant, cleared DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at DESC);

		CREATE TABLE IF NOT EXISTS swaps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq INTEGER NOT NULL,
			a_x INTEGER NOT NULL,
			a_y INTEGER NOT NULL,
			b_x INTEGER NOT NULL,
			b_y INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			cycles INTEGER NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_swaps_session ON swaps(session_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession stores a session and its journal in one transaction.
// A missing ID is generated. Returns the session ID.
func (s *Store) SaveSession(sess Session, swaps []SwapRecord) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.EndedAt.IsZero() {
		sess.EndedAt = time.Now()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = sess.EndedAt
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	_, err = tx.Exec(
		`INSERT INTO sessions (id, variant, seed, width, height, kinds, swaps, rejected,
		                       cleared, longest_cascade, reshuffles, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Variant, sess.Seed, sess.Width, sess.Height, sess.Kinds,
		sess.Swaps, sess.Rejected, sess.Cleared, sess.LongestCascade, sess.Reshuffles,
		sess.StartedAt.UTC().Format(timeLayout), sess.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}

	if len(swaps) > 0 {
		stmt, err := tx.Prepare(
			`INSERT INTO swaps (session_id, seq, a_x, a_y, b_x, b_y, outcome, cycles, removed)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot prepare swap insert: %w", err)
		}
		defer stmt.Close()

		for _, sw := range swaps {
			if _, err := stmt.Exec(sess.ID, sw.Seq, sw.AX, sw.AY, sw.BX, sw.BY, sw.Outcome, sw.Cycles, sw.Removed); err != nil {
				return "", fmt.Errorf("storage: cannot save swap %d: %w", sw.Seq, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return sess.ID, nil
}

const sessionColumns = `id, variant, seed, width, height, kinds, swaps, rejected,
	cleared, longest_cascade, reshuffles, started_at, ended_at`

// RecentSessions returns the most recently finished sessions of any variant.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+` FROM sessions ORDER BY ended_at DESC LIMIT ?`,
		limit,
	)
}

// BestSessions returns the sessions of a variant with the most tokens cleared.
func (s *Store) BestSessions(variant string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.querySessions(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE variant = ?
		 ORDER BY cleared DESC, ended_at ASC
		 LIMIT ?`,
		variant, limit,
	)
}

// SessionByID returns one session. A missing session yields ErrNotFound.
func (s *Store) SessionByID(id string) (Session, error) {
	sessions, err := s.querySessions(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	if err != nil {
		return Session{}, err
	}
	if len(sessions) == 0 {
		return Session{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return sessions[0], nil
}

func (s *Store) querySessions(query string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var sess Session
		var started, ended any
		if err := rows.Scan(
			&sess.ID, &sess.Variant, &sess.Seed, &sess.Width, &sess.Height, &sess.Kinds,
			&sess.Swaps, &sess.Rejected, &sess.Cleared, &sess.LongestCascade, &sess.Reshuffles,
			&started, &ended,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session row: %w", err)
		}
		sess.StartedAt = parseTime(started)
		sess.EndedAt = parseTime(ended)
		out = append(out, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SessionSwaps returns the journal of a session in sequence order.
func (s *Store) SessionSwaps(sessionID string) ([]SwapRecord, error) {
	rows, err := s.db.Query(
		`SELECT seq, a_x, a_y, b_x, b_y, outcome, cycles, removed
		 FROM swaps
		 WHERE session_id = ?
		 ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query swaps: %w", err)
	}
	defer rows.Close()

	var out []SwapRecord
	for rows.Next() {
		var sw SwapRecord
		if err := rows.Scan(&sw.Seq, &sw.AX, &sw.AY, &sw.BX, &sw.BY, &sw.Outcome, &sw.Cycles, &sw.Removed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan swap row: %w", err)
		}
		out = append(out, sw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Stats returns aggregated statistics for one variant.
// A variant without sessions yields zero values.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(swaps), 0), COALESCE(SUM(cleared), 0),
		        COALESCE(MAX(cleared), 0), COALESCE(AVG(cleared), 0),
		        COALESCE(MAX(longest_cascade), 0), MAX(ended_at)
		 FROM sessions WHERE variant = ?`,
		variant,
	).Scan(&stats.Sessions, &stats.TotalSwaps, &stats.TotalCleared,
		&stats.BestCleared, &stats.AvgCleared, &stats.LongestCascade, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllStats returns statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(`SELECT DISTINCT variant FROM sessions`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list variants: %w", err)
	}

	var variants []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	out := make(map[string]*VariantStats, len(variants))
	for _, v := range variants {
		st, err := s.Stats(v)
		if err != nil {
			return nil, err
		}
		out[v] = st
	}
	return out, nil
}

// ClearSessions deletes every session of a variant together with its
// journal. An empty variant clears everything.
func (s *Store) ClearSessions(variant string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if variant == "" {
		_, err = tx.Exec(`DELETE FROM swaps`)
		if err == nil {
			_, err = tx.Exec(`DELETE FROM sessions`)
		}
	} else {
		_, err = tx.Exec(`DELETE FROM swaps WHERE session_id IN (SELECT id FROM sessions WHERE variant = ?)`, variant)
		if err == nil {
			_, err = tx.Exec(`DELETE FROM sessions WHERE variant = ?`, variant)
		}
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// parseTime accepts the value types the driver may return for a timestamp.
func parseTime(v any) time.Time {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}
	}
	if parsed, err := time.Parse(timeLayout, s); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(legacyTimeLayout, s); err == nil {
		return parsed
	}
	return time.Time{}
}
