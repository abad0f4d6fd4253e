package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps run records in PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects and makes sure the schema exists
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed BIGINT NOT NULL,
		kills INTEGER NOT NULL,
		spawn_limit INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL,
		ended_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS runs_rank ON runs (kills DESC, duration_ms DESC, ended_at ASC);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveRun stores a run, replacing one with the same ID
func (ps *PostgresStore) SaveRun(run RunRecord) error {
	query := `
	INSERT INTO runs (id, seed, kills, spawn_limit, duration_ms, ended_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id)
	DO UPDATE SET
		kills = $3, spawn_limit = $4, duration_ms = $5, ended_at = $6
	`

	_, err := ps.db.Exec(query,
		run.ID, run.Seed, run.Kills, run.SpawnLimit,
		run.Duration.Milliseconds(), run.EndedAt)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// LoadRun loads a run by ID
func (ps *PostgresStore) LoadRun(id string) (RunRecord, error) {
	query := `SELECT id, seed, kills, spawn_limit, duration_ms, ended_at FROM runs WHERE id = $1`

	run, err := scanRun(ps.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("run %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return run, nil
}

// TopRuns returns up to n best runs
func (ps *PostgresStore) TopRuns(n int) ([]RunRecord, error) {
	query := `
	SELECT id, seed, kills, spawn_limit, duration_ms, ended_at FROM runs
	ORDER BY kills DESC, duration_ms DESC, ended_at ASC
	LIMIT $1
	`

	rows, err := ps.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var (
		run        RunRecord
		durationMs int64
	)
	err := s.Scan(&run.ID, &run.Seed, &run.Kills, &run.SpawnLimit, &durationMs, &run.EndedAt)
	if err != nil {
		return RunRecord{}, err
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return run, nil
}
