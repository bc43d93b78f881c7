// Package db provides PostgreSQL persistence for assessment runs.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/candidate-assessor/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateBatch creates a new assessment batch record and returns its ID
func (db *DB) CreateBatch(ctx context.Context, positionTitle, department string, strict bool) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO assessment_batches (position_title, department, strict, status)
		 VALUES ($1, $2, $3, 'running')
		 RETURNING id`,
		positionTitle, department, strict,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return id, nil
}

// CompleteBatch marks an assessment batch as completed
func (db *DB) CompleteBatch(ctx context.Context, batchID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE assessment_batches SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, batchID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete batch: %w", err)
	}
	return nil
}

// SaveResult stores one assessment result under a batch. The full result is
// kept as JSONB; headline figures are duplicated into columns for ranking
// queries.
func (db *DB) SaveResult(ctx context.Context, batchID uuid.UUID, result *types.AssessmentResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO assessment_results (batch_id, candidate_id, automated_score, percentage_score, recommendation, manual_review, content)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (batch_id, candidate_id) DO UPDATE
		 SET automated_score = $3, percentage_score = $4, recommendation = $5, manual_review = $6, content = $7, created_at = NOW()`,
		batchID, result.CandidateID, result.AutomatedScore, result.PercentageScore,
		string(result.Recommendation), result.ManualReview, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save result for %s: %w", result.CandidateID, err)
	}
	return nil
}

// GetResult retrieves one stored assessment result by batch and candidate
func (db *DB) GetResult(ctx context.Context, batchID uuid.UUID, candidateID string) (*types.AssessmentResult, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM assessment_results WHERE batch_id = $1 AND candidate_id = $2`,
		batchID, candidateID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get result for %s: %w", candidateID, err)
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to parse stored result: %w", err)
	}
	return &result, nil
}

// ListResults retrieves all results for a batch, highest percentage first
func (db *DB) ListResults(ctx context.Context, batchID uuid.UUID) ([]ResultRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, batch_id, candidate_id, automated_score, percentage_score, recommendation, manual_review
		 FROM assessment_results WHERE batch_id = $1
		 ORDER BY percentage_score DESC, candidate_id ASC`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var r ResultRecord
		if err := rows.Scan(&r.ID, &r.BatchID, &r.CandidateID, &r.AutomatedScore, &r.PercentageScore, &r.Recommendation, &r.ManualReview); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}

// GetBatch retrieves an assessment batch by ID
func (db *DB) GetBatch(ctx context.Context, batchID uuid.UUID) (*Batch, error) {
	var batch Batch
	err := db.pool.QueryRow(ctx,
		`SELECT id, position_title, department, strict, status, created_at, completed_at
		 FROM assessment_batches WHERE id = $1`,
		batchID,
	).Scan(&batch.ID, &batch.PositionTitle, &batch.Department, &batch.Strict, &batch.Status, &batch.CreatedAt, &batch.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return &batch, nil
}

// BatchFilters holds optional filters for listing batches
type BatchFilters struct {
	PositionTitle string
	Status        string
	Limit         int
}

// ListBatches retrieves batches with optional filters
func (db *DB) ListBatches(ctx context.Context, filters BatchFilters) ([]Batch, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, position_title, department, strict, status, created_at, completed_at
		FROM assessment_batches WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.PositionTitle != "" {
		query += fmt.Sprintf(" AND position_title ILIKE $%d", argNum)
		args = append(args, "%"+filters.PositionTitle+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var batch Batch
		if err := rows.Scan(&batch.ID, &batch.PositionTitle, &batch.Department, &batch.Strict, &batch.Status, &batch.CreatedAt, &batch.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

// DeleteBatch deletes an assessment batch and all its results (via cascade)
func (db *DB) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM assessment_batches WHERE id = $1`, batchID)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("batch not found: %s", batchID)
	}
	return nil
}
