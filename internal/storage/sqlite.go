// Package storage provides SQLite-based persistence for detonation runs.
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
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents a single recorded detonation.
type Run struct {
	ID               int64
	Maze             string // Input path or maze name
	X                int
	Y                int
	Outcome          string // "ok" or an error code
	Size             int
	BombsTriggered   int
	EnemiesDamaged   int
	EnemiesDestroyed int
	CreatedAt        time.Time
}

// MazeStats contains aggregated statistics for one maze.
type MazeStats struct {
	Maze           string
	Runs           int
	Failures       int
	MaxChain       int
	TotalDestroyed int64
	LastRun        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The path is used as given; callers expand ~ beforehand.
func Open(dbPath string) (*Store, error) {
	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			size INTEGER NOT NULL DEFAULT 0,
			bombs_triggered INTEGER NOT NULL DEFAULT 0,
			enemies_damaged INTEGER NOT NULL DEFAULT 0,
			enemies_destroyed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_maze ON runs(maze);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a detonation. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (maze, x, y, outcome, size, bombs_triggered, enemies_damaged, enemies_destroyed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Maze, r.X, r.Y, r.Outcome, r.Size,
		r.BombsTriggered, r.EnemiesDamaged, r.EnemiesDestroyed,
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

const runColumns = `id, maze, x, y, outcome, size, bombs_triggered, enemies_damaged, enemies_destroyed, created_at`

// RecentRuns retrieves the most recent runs, newest first.
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
	return scanRuns(rows)
}

// RunsForMaze retrieves the most recent runs of one maze, newest first.
func (s *Store) RunsForMaze(maze string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE maze = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		maze, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns deletes all runs of the given maze, or every run when maze is empty.
func (s *Store) ClearRuns(maze string) error {
	var err error
	if maze == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE maze = ?", maze)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetMazeStats retrieves aggregated statistics for a maze.
func (s *Store) GetMazeStats(maze string) (*MazeStats, error) {
	stats := &MazeStats{Maze: maze}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome != 'ok' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(bombs_triggered), 0),
		        COALESCE(SUM(enemies_destroyed), 0)
		 FROM runs WHERE maze = ?`,
		maze,
	).Scan(&stats.Runs, &stats.Failures, &stats.MaxChain, &stats.TotalDestroyed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get maze stats: %w", err)
	}

	var lastRun any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE maze = ? ORDER BY created_at DESC LIMIT 1`,
		maze,
	).Scan(&lastRun)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastRun = parseTime(lastRun)
	}

	return stats, nil
}

// scanRuns reads every row and closes rows.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.Maze, &r.X, &r.Y, &r.Outcome, &r.Size,
			&r.BombsTriggered, &r.EnemiesDamaged, &r.EnemiesDestroyed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes.
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
