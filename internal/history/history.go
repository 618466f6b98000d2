// Package history keeps a local log of oracle conversions: task, model,
// attempt count, latency, and outcome. It never stores prompts, oracle
// output, or converted values — those are transient per invocation.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// OpenDB opens the history SQLite database at the given path, creating
// parent directories as needed. ":memory:" opens an in-memory database.
// Sets WAL mode and runs migrations.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS conversions (
			id          TEXT PRIMARY KEY,
			task        TEXT NOT NULL,
			model       TEXT NOT NULL DEFAULT '',
			attempts    INTEGER NOT NULL,
			latency_ms  INTEGER NOT NULL,
			success     INTEGER NOT NULL,
			error_code  TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		)`)
	return err
}

// Entry is one logged conversion.
type Entry struct {
	ID        string
	Task      string
	Model     string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
	CreatedAt time.Time
}

// Store reads and writes conversion entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open history database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts one entry.
func (s *Store) Record(e Entry) error {
	success := 0
	if e.Success {
		success = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO conversions (id, task, model, attempts, latency_ms, success, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Task, e.Model, e.Attempts, e.LatencyMs, success, e.ErrorCode,
		e.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, task, model, attempts, latency_ms, success, error_code, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var success int
		var created string
		if err := rows.Scan(&e.ID, &e.Task, &e.Model, &e.Attempts, &e.LatencyMs, &success, &e.ErrorCode, &created); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Success = success == 1
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
