// Package storage provides SQLite-based history of periodic simulation
// reports. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The history is append-only and is never loaded back into a
// running simulation.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-eco/internal/eco"
)

// Store manages the SQLite database connection for report history.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation session.
type Run struct {
	ID        int64
	Scenario  string
	Host      string // "local", or the SSH user
	Readings  int    // Number of recorded readings
	CreatedAt time.Time
}

// ReadingEntry is one stockpile sample of a run.
type ReadingEntry struct {
	ID        int64
	RunID     int64
	Tick      uint64
	Label     string
	Amount    float64
	Capacity  sql.NullFloat64
	CreatedAt time.Time
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
			scenario TEXT NOT NULL,
			host TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS readings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			tick INTEGER NOT NULL,
			label TEXT NOT NULL,
			amount REAL NOT NULL,
			capacity REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_readings_run ON readings(run_id, tick);
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

// StartRun records the start of a simulation session and returns its ID.
func (s *Store) StartRun(scenario, host string) (int64, error) {
	if host == "" {
		host = "local"
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (scenario, host) VALUES (?, ?)",
		scenario, host,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordReadings stores one report's readings in a single transaction.
func (s *Store) RecordReadings(runID int64, tick uint64, readings []eco.Reading) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO readings (run_id, tick, label, amount, capacity) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rd := range readings {
		var capacity sql.NullFloat64
		if rd.Capacity != nil {
			capacity = sql.NullFloat64{Float64: *rd.Capacity, Valid: true}
		}
		if _, err := stmt.Exec(runID, int64(tick), rd.Label, rd.Amount, capacity); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save reading: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit readings: %w", err)
	}
	return nil
}

// Recorder returns a recorder that appends reports to the given run.
func (s *Store) Recorder(runID int64) *RunRecorder {
	return &RunRecorder{store: s, runID: runID}
}

// RunRecorder adapts a Store to eco.Recorder for one run.
type RunRecorder struct {
	store *Store
	runID int64
}

var _ eco.Recorder = (*RunRecorder)(nil)

// Record implements eco.Recorder.
func (r *RunRecorder) Record(tick uint64, readings []eco.Reading) error {
	return r.store.RecordReadings(r.runID, tick, readings)
}

// RunID returns the run this recorder appends to.
func (r *RunRecorder) RunID() int64 {
	return r.runID
}

// Runs retrieves the most recent runs, newest first.
func (s *Store) Runs(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.scenario, r.host, r.created_at, COUNT(rd.id)
		 FROM runs r
		 LEFT JOIN readings rd ON rd.run_id = r.id
		 GROUP BY r.id
		 ORDER BY r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Scenario, &r.Host, &createdAt, &r.Readings); err != nil {
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

// Readings retrieves the readings of a run in tick order.
// A limit <= 0 returns all of them.
func (s *Store) Readings(runID int64, limit int) ([]ReadingEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, tick, label, amount, capacity, created_at
		 FROM readings
		 WHERE run_id = ?
		 ORDER BY tick ASC, id ASC
		 LIMIT ?`,
		runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query readings: %w", err)
	}
	defer rows.Close()

	var entries []ReadingEntry
	for rows.Next() {
		var e ReadingEntry
		var tick int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &tick, &e.Label, &e.Amount, &e.Capacity, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Tick = uint64(tick)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
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
