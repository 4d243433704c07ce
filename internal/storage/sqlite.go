package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			platform TEXT NOT NULL,
			steps INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			pressure REAL NOT NULL,
			surface_tension REAL NOT NULL,
			temperature REAL NOT NULL,
			frequency INTEGER NOT NULL,
			metrics TEXT NOT NULL,
			volumes TEXT NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.New("sqlite store not initialized")
	}
	return s.db, nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	metrics, err := json.Marshal(run.Metrics)
	if err != nil {
		return err
	}
	volumes, err := json.Marshal(run.Volumes)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, platform, steps, seed, pressure, surface_tension, temperature, frequency, metrics, volumes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			metrics = excluded.metrics,
			volumes = excluded.volumes
	`, run.ID, run.CreatedAt.Format(time.RFC3339Nano), run.Platform, run.Steps, run.Seed,
		run.Pressure, run.SurfaceTension, run.Temperature, run.Frequency, string(metrics), string(volumes))
	return err
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}

	var run Run
	var createdAt, metrics, volumes string
	err = db.QueryRowContext(ctx, `
		SELECT id, created_at, platform, steps, seed, pressure, surface_tension, temperature, frequency, metrics, volumes
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &createdAt, &run.Platform, &run.Steps, &run.Seed,
		&run.Pressure, &run.SurfaceTension, &run.Temperature, &run.Frequency, &metrics, &volumes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, false, nil
		}
		return Run{}, false, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(metrics), &run.Metrics); err != nil {
		return Run{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(volumes), &run.Volumes); err != nil {
		return Run{}, false, fmt.Errorf("decode run %s: %w", id, err)
	}
	return run, true, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Summary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, platform, steps, pressure, temperature
		FROM runs ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var sum Summary
		var createdAt string
		if err := rows.Scan(&sum.ID, &createdAt, &sum.Platform, &sum.Steps, &sum.Pressure, &sum.Temperature); err != nil {
			return nil, err
		}
		sum.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}
