package server

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/db"
	"github.com/jonathan/resume-forge/internal/types"
)

// mockStore is an in-memory Store for handler tests.
type mockStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*types.User
	passwords map[uuid.UUID]string
	resumes   map[uuid.UUID]*db.Resume
	apps      map[uuid.UUID]*db.Application
	questions map[uuid.UUID][]db.QuestionResponse
	forcedErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		users:     make(map[uuid.UUID]*types.User),
		passwords: make(map[uuid.UUID]string),
		resumes:   make(map[uuid.UUID]*db.Resume),
		apps:      make(map[uuid.UUID]*db.Application),
		questions: make(map[uuid.UUID][]db.QuestionResponse),
	}
}

func (m *mockStore) CreateUser(_ context.Context, name, email, passwordHash string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	u := &types.User{ID: uuid.New(), Name: name, Email: strings.ToLower(email), CreatedAt: time.Now()}
	m.users[u.ID] = u
	m.passwords[u.ID] = passwordHash
	return u, nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*types.User, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, "", m.forcedErr
	}
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			return u, m.passwords[u.ID], nil
		}
	}
	return nil, "", nil
}

func (m *mockStore) GetUserByID(_ context.Context, id uuid.UUID) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *mockStore) CreateResume(_ context.Context, userID uuid.UUID, title, rawText string, record *types.ResumeData) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	r := &db.Resume{
		ID: uuid.New(), UserID: userID, Title: title, RawText: rawText,
		Record: record, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.resumes[r.ID] = r
	return r, nil
}

func (m *mockStore) GetResume(_ context.Context, userID, id uuid.UUID) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	return r, nil
}

func (m *mockStore) ListResumes(_ context.Context, userID uuid.UUID) ([]db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Resume
	for _, r := range m.resumes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockStore) UpdateResumeRecord(_ context.Context, userID, id uuid.UUID, record *types.ResumeData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return fmt.Errorf("resume %s: %w", id, db.ErrNotFound)
	}
	r.Record = record
	r.UpdatedAt = time.Now()
	return nil
}

func (m *mockStore) DeleteResume(_ context.Context, userID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	r, ok := m.resumes[id]
	if !ok || r.UserID != userID {
		return fmt.Errorf("resume %s: %w", id, db.ErrNotFound)
	}
	delete(m.resumes, id)
	return nil
}

func (m *mockStore) CreateApplication(_ context.Context, resumeID uuid.UUID, appCtx types.ApplicationContext, tailored *types.ResumeData) (*db.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := &db.Application{
		ID: uuid.New(), ResumeID: resumeID,
		JobTitle: appCtx.JobTitle, JobDescription: appCtx.JobDescription,
		Tailored: tailored, CreatedAt: time.Now(),
	}
	m.apps[a.ID] = a
	return a, nil
}

func (m *mockStore) GetApplication(_ context.Context, userID, id uuid.UUID) (*db.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.apps[id]
	if !ok {
		return nil, nil
	}
	r, ok := m.resumes[a.ResumeID]
	if !ok || r.UserID != userID {
		return nil, nil
	}
	return a, nil
}

func (m *mockStore) ListApplications(_ context.Context, userID, resumeID uuid.UUID) ([]db.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Application
	for _, a := range m.apps {
		if a.ResumeID != resumeID {
			continue
		}
		if r, ok := m.resumes[resumeID]; ok && r.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockStore) AddQuestionResponse(_ context.Context, applicationID uuid.UUID, question, response string) (*db.QuestionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	qr := db.QuestionResponse{
		ID: uuid.New(), ApplicationID: applicationID,
		Position: len(m.questions[applicationID]) + 1,
		Question: question, Response: response, CreatedAt: time.Now(),
	}
	m.questions[applicationID] = append(m.questions[applicationID], qr)
	return &qr, nil
}

func (m *mockStore) ListQuestionResponses(_ context.Context, applicationID uuid.UUID) ([]db.QuestionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.questions[applicationID], nil
}
