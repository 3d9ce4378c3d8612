// Package storage provides the SQLite-backed results log: one row per
// finished match, tallied per session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryPath opens a private in-memory database that vanishes on Close.
const MemoryPath = ":memory:"

// Outcome values stored in the results table.
const (
	OutcomeWon   = "won"
	OutcomeDrawn = "drawn"
)

// Store manages the SQLite database connection for the results log.
type Store struct {
	db   *sql.DB
	path string
}

// Result is one finished match.
type Result struct {
	ID        int64
	SessionID string
	Outcome   string // OutcomeWon or OutcomeDrawn
	Winner    string // "a", "b", or empty for a draw
	Starter   string // "a" or "b"
	Moves     int
	PlayerA   string
	PlayerB   string
	Duration  int // Duration in seconds
	CreatedAt time.Time
}

// WinnerName returns the display name of the winner, or empty for a draw.
func (r Result) WinnerName() string {
	switch r.Winner {
	case "a":
		return r.PlayerA
	case "b":
		return r.PlayerB
	default:
		return ""
	}
}

// Tally aggregates results.
type Tally struct {
	Games int
	WinsA int
	WinsB int
	Draws int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// An empty path or MemoryPath opens an in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" || dbPath == MemoryPath {
		return openMemory()
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Other processes (e.g. `connect4 results`) may hold the lock briefly.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	return initStore(db, dbPath)
}

func openMemory() (*Store, error) {
	db, err := sql.Open("sqlite", MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	return initStore(db, MemoryPath)
}

func initStore(db *sql.DB, path string) (*Store, error) {
	// SQLite has a single writer, and every connection to :memory: is a
	// separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, path: path}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			starter TEXT NOT NULL,
			moves INTEGER NOT NULL,
			player_a TEXT NOT NULL,
			player_b TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database location, MemoryPath for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// InMemory reports whether the store vanishes on Close.
func (s *Store) InMemory() bool {
	return s.path == MemoryPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Outcome != OutcomeWon && r.Outcome != OutcomeDrawn {
		return 0, fmt.Errorf("storage: invalid outcome %q", r.Outcome)
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, outcome, winner, starter, moves, player_a, player_b, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.Outcome,
		r.Winner,
		r.Starter,
		r.Moves,
		r.PlayerA,
		r.PlayerB,
		r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, session_id, outcome, winner, starter, moves,
		        player_a, player_b, duration_secs, created_at`

// RecentResults retrieves the most recent results across all sessions,
// newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// SessionResults retrieves the results of one session, newest first.
func (s *Store) SessionResults(sessionID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Outcome,
			&r.Winner,
			&r.Starter,
			&r.Moves,
			&r.PlayerA,
			&r.PlayerB,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Tally counts the results of one session. An empty sessionID counts all.
func (s *Store) Tally(sessionID string) (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 'a'), 0),
		        COALESCE(SUM(winner = 'b'), 0),
		        COALESCE(SUM(outcome = 'drawn'), 0)
		 FROM results
		 WHERE ? = '' OR session_id = ?`,
		sessionID, sessionID,
	).Scan(&t.Games, &t.WinsA, &t.WinsB, &t.Draws)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally results: %w", err)
	}
	return t, nil
}

// ClearResults deletes the results of one session, or all when sessionID
// is empty.
func (s *Store) ClearResults(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE ? = '' OR session_id = ?", sessionID, sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
