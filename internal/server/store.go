package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/db"
	"github.com/jonathan/resume-forge/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies
// it; tests substitute an in-memory implementation.
type Store interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, string, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error)

	CreateResume(ctx context.Context, userID uuid.UUID, title, rawText string, record *types.ResumeData) (*db.Resume, error)
	GetResume(ctx context.Context, userID, id uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
	UpdateResumeRecord(ctx context.Context, userID, id uuid.UUID, record *types.ResumeData) error
	DeleteResume(ctx context.Context, userID, id uuid.UUID) error

	CreateApplication(ctx context.Context, resumeID uuid.UUID, appCtx types.ApplicationContext, tailored *types.ResumeData) (*db.Application, error)
	GetApplication(ctx context.Context, userID, id uuid.UUID) (*db.Application, error)
	ListApplications(ctx context.Context, userID, resumeID uuid.UUID) ([]db.Application, error)

	AddQuestionResponse(ctx context.Context, applicationID uuid.UUID, question, response string) (*db.QuestionResponse, error)
	ListQuestionResponses(ctx context.Context, applicationID uuid.UUID) ([]db.QuestionResponse, error)
}
