// Package storage provides the SQLite hall of fame of finished adventures.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Runs are only ever appended and listed; progress is never restored from
// the database.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the hall of fame.
type Store struct {
	db *sql.DB
}

// Run is one finished adventure.
type Run struct {
	ID             string // UUID, assigned by SaveRun when empty
	Player         string
	PatternScore   int
	AttentionScore int
	Lessons        int // Lessons completed
	Duration       time.Duration
	Pace           string
	CreatedAt      time.Time
}

// Points is the combined quiz and attention score used for ranking.
func (r Run) Points() int {
	return r.PatternScore + r.AttentionScore
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			pattern_score INTEGER NOT NULL DEFAULT 0,
			attention_score INTEGER NOT NULL DEFAULT 0,
			lessons INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			pace TEXT NOT NULL DEFAULT 'normal',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished adventure and returns its ID.
// A zero CreatedAt is replaced with the current time.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.Player == "" {
		return "", errors.New("storage: run has no player")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.Pace == "" {
		run.Pace = "normal"
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, player, pattern_score, attention_score, lessons, duration_ms, pace, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Player,
		run.PatternScore,
		run.AttentionScore,
		run.Lessons,
		run.Duration.Milliseconds(),
		run.Pace,
		run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

const runColumns = `id, player, pattern_score, attention_score, lessons, duration_ms, pace, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
}

// BestRuns retrieves the top runs: highest combined score first, then the
// fastest.
func (s *Store) BestRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY pattern_score + attention_score DESC, duration_ms ASC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves the runs of one player, newest first.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE player = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		player, limit,
	)
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&r.PatternScore,
			&r.AttentionScore,
			&r.Lessons,
			&durationMS,
			&r.Pace,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes every run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	Runs         int
	Players      int
	PerfectRuns  int // Runs with full pattern and attention scores
	FastestRun   time.Duration
	AvgDuration  time.Duration
	LastFinished time.Time
}

// Stats retrieves aggregated statistics. perfect is the combined score of
// a perfect run.
func (s *Store) Stats(perfect int) (*Stats, error) {
	stats := &Stats{}

	var fastest, avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player),
		        COALESCE(SUM(CASE WHEN pattern_score + attention_score >= ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0)
		 FROM runs`,
		perfect,
	).Scan(&stats.Runs, &stats.Players, &stats.PerfectRuns, &fastest, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.FastestRun = time.Duration(fastest) * time.Millisecond
	stats.AvgDuration = time.Duration(avg) * time.Millisecond

	var last any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last run: %w", err)
	}
	if err == nil {
		stats.LastFinished = parseTime(last)
	}

	return stats, nil
}

// parseTime handles both driver-parsed times and raw strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
