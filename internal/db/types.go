package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/types"
)

// Resume is a stored base record together with the raw text it was
// structured from.
type Resume struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Title     string            `json:"title"`
	RawText   string            `json:"raw_text"`
	Record    *types.ResumeData `json:"record"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Application is a tailored record bound to the job it targets.
type Application struct {
	ID             uuid.UUID         `json:"id"`
	ResumeID       uuid.UUID         `json:"resume_id"`
	JobTitle       string            `json:"job_title"`
	JobDescription string            `json:"job_description"`
	Tailored       *types.ResumeData `json:"tailored"`
	CreatedAt      time.Time         `json:"created_at"`
}

// QuestionResponse is one entry in an application's answer history.
// Position is 1-based and assigned in insertion order.
type QuestionResponse struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	Position      int       `json:"position"`
	Question      string    `json:"question"`
	Response      string    `json:"response"`
	CreatedAt     time.Time `json:"created_at"`
}
