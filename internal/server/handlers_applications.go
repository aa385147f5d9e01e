package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/answers"
	"github.com/jonathan/resume-forge/internal/db"
	"github.com/jonathan/resume-forge/internal/fetch"
	"github.com/jonathan/resume-forge/internal/tailoring"
	"github.com/jonathan/resume-forge/internal/types"
)

// createApplicationRequest asks the server to tailor a stored resume
// to a job. The description can be given inline or fetched from a
// posting URL; use_browser enables the headless-browser fallback for
// postings that render client side.
type createApplicationRequest struct {
	JobTitle       string `json:"job_title"`
	JobDescription string `json:"job_description"`
	JobURL         string `json:"job_url"`
	UseBrowser     bool   `json:"use_browser"`
}

// handleCreateApplication tailors a resume's record to a job and
// stores the result as a new application.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}

	var req createApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.JobDescription == "" && req.JobURL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = req.UseBrowser
		text, err := fetch.JobDescription(r.Context(), req.JobURL, opts)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, err.Error())
			return
		}
		req.JobDescription = text
	}

	appCtx := types.ApplicationContext{
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	}
	if err := appCtx.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tailored, err := tailoring.Tailor(r.Context(), s.llm, resume.Record, appCtx)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	app, err := s.store.CreateApplication(r.Context(), resume.ID, appCtx, tailored)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, app)
}

// handleListApplications lists one resume's applications.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	apps, err := s.store.ListApplications(r.Context(), userID, resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if apps == nil {
		apps = []db.Application{}
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

// handleGetApplication retrieves one application.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, ok := s.loadApplication(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, app)
}

// handleApplicationTex renders an application's tailored record.
func (s *Server) handleApplicationTex(w http.ResponseWriter, r *http.Request) {
	app, ok := s.loadApplication(w, r)
	if !ok {
		return
	}
	s.writeTex(w, app.Tailored)
}

// handleApplicationPDF renders and compiles an application's tailored
// record.
func (s *Server) handleApplicationPDF(w http.ResponseWriter, r *http.Request) {
	app, ok := s.loadApplication(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, app.Tailored)
}

// questionRequest asks for a grounded answer to one application question.
type questionRequest struct {
	Question string `json:"question"`
}

// handleAnswerQuestion generates a grounded answer from the tailored
// record and appends it to the application's history.
func (s *Server) handleAnswerQuestion(w http.ResponseWriter, r *http.Request) {
	app, ok := s.loadApplication(w, r)
	if !ok {
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.errorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	appCtx := types.ApplicationContext{
		JobTitle:       app.JobTitle,
		JobDescription: app.JobDescription,
	}
	answer, err := answers.Generate(r.Context(), s.llm, app.Tailored, appCtx, req.Question)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	qr, err := s.store.AddQuestionResponse(r.Context(), app.ID, req.Question, answer)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, qr)
}

// handleListQuestions retrieves an application's answer history in
// insertion order.
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	app, ok := s.loadApplication(w, r)
	if !ok {
		return
	}

	history, err := s.store.ListQuestionResponses(r.Context(), app.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if history == nil {
		history = []db.QuestionResponse{}
	}
	s.jsonResponse(w, http.StatusOK, history)
}

// loadApplication resolves the {id} path value to an application whose
// base resume the caller owns.
func (s *Server) loadApplication(w http.ResponseWriter, r *http.Request) (*db.Application, bool) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid application ID")
		return nil, false
	}

	app, err := s.store.GetApplication(r.Context(), userID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if app == nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("application not found: %s", id))
		return nil, false
	}
	return app, true
}
