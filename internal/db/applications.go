package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-forge/internal/types"
)

// CreateApplication stores a tailored record against its base resume
// and target job.
func (db *DB) CreateApplication(ctx context.Context, resumeID uuid.UUID, appCtx types.ApplicationContext, tailored *types.ResumeData) (*Application, error) {
	tailoredJSON, err := json.Marshal(tailored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tailored record: %w", err)
	}

	a := Application{
		ResumeID:       resumeID,
		JobTitle:       appCtx.JobTitle,
		JobDescription: appCtx.JobDescription,
		Tailored:       tailored,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (resume_id, job_title, job_description, tailored)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		resumeID, appCtx.JobTitle, appCtx.JobDescription, tailoredJSON,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &a, nil
}

// GetApplication retrieves an application by ID, scoped to the owner
// of its base resume. Returns nil if not found.
func (db *DB) GetApplication(ctx context.Context, userID, id uuid.UUID) (*Application, error) {
	var a Application
	var tailoredJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT a.id, a.resume_id, a.job_title, a.job_description, a.tailored, a.created_at
		 FROM applications a
		 JOIN resumes r ON r.id = a.resume_id
		 WHERE a.id = $1 AND r.user_id = $2`,
		id, userID,
	).Scan(&a.ID, &a.ResumeID, &a.JobTitle, &a.JobDescription, &tailoredJSON, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if err := json.Unmarshal(tailoredJSON, &a.Tailored); err != nil {
		return nil, fmt.Errorf("failed to decode tailored record: %w", err)
	}
	return &a, nil
}

// ListApplications retrieves the applications for one resume, newest first.
func (db *DB) ListApplications(ctx context.Context, userID, resumeID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.resume_id, a.job_title, a.job_description, a.tailored, a.created_at
		 FROM applications a
		 JOIN resumes r ON r.id = a.resume_id
		 WHERE a.resume_id = $1 AND r.user_id = $2
		 ORDER BY a.created_at DESC`,
		resumeID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		var tailoredJSON []byte
		if err := rows.Scan(&a.ID, &a.ResumeID, &a.JobTitle, &a.JobDescription, &tailoredJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		if err := json.Unmarshal(tailoredJSON, &a.Tailored); err != nil {
			return nil, fmt.Errorf("failed to decode tailored record: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// AddQuestionResponse appends one question/answer pair to an
// application's history. Position is assigned as max(position)+1 so
// the history reads back in the order it was written.
func (db *DB) AddQuestionResponse(ctx context.Context, applicationID uuid.UUID, question, response string) (*QuestionResponse, error) {
	qr := QuestionResponse{
		ApplicationID: applicationID,
		Question:      question,
		Response:      response,
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO question_responses (application_id, position, question, response)
		 SELECT $1, COALESCE(MAX(position), 0) + 1, $2, $3
		 FROM question_responses WHERE application_id = $1
		 RETURNING id, position, created_at`,
		applicationID, question, response,
	).Scan(&qr.ID, &qr.Position, &qr.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save question response: %w", err)
	}
	return &qr, nil
}

// ListQuestionResponses retrieves an application's answer history in
// insertion order.
func (db *DB) ListQuestionResponses(ctx context.Context, applicationID uuid.UUID) ([]QuestionResponse, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, application_id, position, question, response, created_at
		 FROM question_responses WHERE application_id = $1
		 ORDER BY position ASC`,
		applicationID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list question responses: %w", err)
	}
	defer rows.Close()

	var responses []QuestionResponse
	for rows.Next() {
		var qr QuestionResponse
		if err := rows.Scan(&qr.ID, &qr.ApplicationID, &qr.Position, &qr.Question, &qr.Response, &qr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question response: %w", err)
		}
		responses = append(responses, qr)
	}
	return responses, nil
}
