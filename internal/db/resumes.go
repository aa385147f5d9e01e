package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-forge/internal/types"
)

// CreateResume stores a structured record alongside the raw text it
// came from and returns the created row.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, title, rawText string, record *types.ResumeData) (*Resume, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	r := Resume{UserID: userID, Title: title, RawText: rawText, Record: record}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, raw_text, record)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		userID, title, rawText, recordJSON,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &r, nil
}

// GetResume retrieves a resume by ID, scoped to its owner.
// Returns nil if not found.
func (db *DB) GetResume(ctx context.Context, userID, id uuid.UUID) (*Resume, error) {
	var r Resume
	var recordJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, raw_text, record, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.RawText, &recordJSON, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal(recordJSON, &r.Record); err != nil {
		return nil, fmt.Errorf("failed to decode stored record: %w", err)
	}
	return &r, nil
}

// ListResumes retrieves a user's resumes, newest first. The stored
// records are included so callers can render without a second query.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, raw_text, record, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		var recordJSON []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.RawText, &recordJSON, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(recordJSON, &r.Record); err != nil {
			return nil, fmt.Errorf("failed to decode stored record: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// UpdateResumeRecord replaces the structured record of an existing resume.
func (db *DB) UpdateResumeRecord(ctx context.Context, userID, id uuid.UUID, record *types.ResumeData) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET record = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		recordJSON, id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteResume deletes a resume and its applications (via cascade).
func (db *DB) DeleteResume(ctx context.Context, userID, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}
	return nil
}
