// Package store provides optional PostgreSQL persistence for enrichment
// runs and their output records.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Run is a persisted enrichment run.
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Category    string     `json:"category"`
	EntityName  string     `json:"entity_name"`
	City        string     `json:"city"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Connect establishes a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateRun records the start of an enrichment run and returns its ID.
func (s *Store) CreateRun(ctx context.Context, category, entityName, city string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO enrichment_runs (category, entity_name, city, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		category, entityName, city,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a run with its terminal status.
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE enrichment_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveRecord stores the enriched record for a run as JSONB. A re-run of the
// same run ID replaces the previous record.
func (s *Store) SaveRecord(ctx context.Context, runID uuid.UUID, record map[string]any) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO enriched_records (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// GetRecord retrieves the stored record for a run, or nil when none exists.
func (s *Store) GetRecord(ctx context.Context, runID uuid.UUID) (map[string]any, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM enriched_records WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	var record map[string]any
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return record, nil
}

// ListRuns retrieves recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit == 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, category, entity_name, city, status, created_at, completed_at
		 FROM enrichment_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Category, &run.EntityName, &run.City, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
