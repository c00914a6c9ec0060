// Package storage provides SQLite-based persistence for simulation run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-life/internal/life"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one finished simulation.
type Run struct {
	ID          int64
	Seed        life.Seed // NoSeed for hand-drawn or blank maps
	Width       int
	Height      int
	Probability float64
	Rule        string
	Steps       int // generations reached
	Living      int // living cells when the run ended
	CreatedAt   time.Time
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			probability REAL NOT NULL DEFAULT 0,
			rule TEXT NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			living INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
		CREATE INDEX IF NOT EXISTS idx_runs_steps ON runs(steps DESC);
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

const runColumns = `id, seed, width, height, probability, rule, steps, living, created_at`

// SaveRun records a finished simulation.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	var seed sql.NullInt64
	if r.Seed.Valid {
		seed = sql.NullInt64{Int64: r.Seed.Value, Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (seed, width, height, probability, rule, steps, living)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seed, r.Width, r.Height, r.Probability, r.Rule, r.Steps, r.Living,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the N runs that reached the most generations.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY steps DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RecentRuns retrieves the N most recently recorded runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return collectRuns(rows)
}

// RunsForSeed retrieves every run recorded for seed, longest first.
func (s *Store) RunsForSeed(seed int64) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE seed = ?
		 ORDER BY steps DESC, id ASC`,
		seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs for seed: %w", err)
	}
	return collectRuns(rows)
}

// LongestRun returns the run with the most generations.
// Returns nil if no runs exist.
func (s *Store) LongestRun() (*Run, error) {
	row := s.db.QueryRow(
		`SELECT ` + runColumns + `
		 FROM runs
		 ORDER BY steps DESC, id ASC
		 LIMIT 1`,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Summary contains aggregated statistics over all runs.
type Summary struct {
	Runs     int
	MaxSteps int
	AvgSteps float64
	LastRun  time.Time
}

// Summary retrieves aggregated statistics over the run history.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	// Get count, max, avg
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(steps), 0), COALESCE(AVG(steps), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &sum.MaxSteps, &sum.AvgSteps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summary: %w", err)
	}

	// Get last run
	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		sum.LastRun = parseTime(lastRun)
	}

	return sum, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var seed sql.NullInt64
	var createdAt any
	if err := row.Scan(
		&r.ID,
		&seed,
		&r.Width,
		&r.Height,
		&r.Probability,
		&r.Rule,
		&r.Steps,
		&r.Living,
		&createdAt,
	); err != nil {
		return r, err
	}
	if seed.Valid {
		r.Seed = life.SeedOf(seed.Int64)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func collectRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
