package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/ats-scorer/internal/types"
)

// SaveScore persists a score report and returns its ID.
func (db *DB) SaveScore(ctx context.Context, jobTitle string, result *types.ScoreResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO score_reports (job_title, overall, result)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		jobTitle, result.Overall, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score report: %w", err)
	}
	return id, nil
}

// GetScoreByID retrieves a persisted score report. Returns nil if not found.
func (db *DB) GetScoreByID(ctx context.Context, id uuid.UUID) (*ScoreRecord, error) {
	var record ScoreRecord
	var resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, overall, result, created_at
		 FROM score_reports WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.JobTitle, &record.Overall, &resultJSON, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score report: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
	}
	record.Result = &result

	return &record, nil
}

// ListScores returns recent score reports, newest first.
func (db *DB) ListScores(ctx context.Context, limit int) ([]ScoreSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, overall, created_at
		 FROM score_reports
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list score reports: %w", err)
	}
	defer rows.Close()

	summaries := make([]ScoreSummary, 0)
	for rows.Next() {
		var s ScoreSummary
		if err := rows.Scan(&s.ID, &s.JobTitle, &s.Overall, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score report: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score reports: %w", err)
	}

	return summaries, nil
}
