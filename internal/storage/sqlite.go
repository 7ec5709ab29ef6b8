// Package storage persists Flappy Claude scores. FileStore keeps the single
// high score in a text file; Store uses SQLite through the pure-Go
// modernc.org/sqlite driver and also keeps a history of finished lives.
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

	"github.com/bnookala/flappy-claude/internal/config"
)

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// LifeEntry is one finished life.
type LifeEntry struct {
	ID        int64
	RunID     string
	Mode      string
	Score     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// One writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS lives (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_lives_top ON lives(score DESC);
		CREATE INDEX IF NOT EXISTS idx_lives_run ON lives(run_id);
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

// Load returns the stored high score, or 0 if none has been saved.
func (s *Store) Load() (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return max(score, 0), nil
}

// Save records a new high score. A lower value than the stored one is
// ignored so concurrent sessions cannot lower the record.
func (s *Store) Save(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   score = MAX(score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Run groups the lives of one game process or SSH session.
type Run struct {
	ID    string
	store *Store
}

// StartRun returns a recorder that stamps every life with a fresh run ID.
func (s *Store) StartRun() *Run {
	return &Run{ID: uuid.NewString(), store: s}
}

// RecordLife appends a finished life to the history.
func (r *Run) RecordLife(mode string, score int) error {
	_, err := r.store.db.Exec(
		"INSERT INTO lives (run_id, mode, score) VALUES (?, ?, ?)",
		r.ID, mode, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record life: %w", err)
	}
	return nil
}

// TopLives retrieves the best N lives, highest score first.
func (s *Store) TopLives(limit int) ([]LifeEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryLives(
		`SELECT id, run_id, mode, score, created_at
		 FROM lives
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RunLives retrieves every life of one run in the order they were played.
func (s *Store) RunLives(runID string) ([]LifeEntry, error) {
	return s.queryLives(
		`SELECT id, run_id, mode, score, created_at
		 FROM lives
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
}

func (s *Store) queryLives(query string, args ...any) ([]LifeEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query lives: %w", err)
	}
	defer rows.Close()

	var entries []LifeEntry
	for rows.Next() {
		var e LifeEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Mode, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearLives deletes the life history. The high score is kept.
func (s *Store) ClearLives() error {
	_, err := s.db.Exec("DELETE FROM lives")
	if err != nil {
		return fmt.Errorf("storage: cannot clear lives: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over the life history.
type Stats struct {
	Lives      int
	Runs       int
	BestLife   int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics over every recorded life.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT run_id), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM lives`,
	).Scan(&stats.Lives, &stats.Runs, &stats.BestLife, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
