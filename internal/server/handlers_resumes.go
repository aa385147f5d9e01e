package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/db"
	"github.com/jonathan/resume-forge/internal/parsing"
	"github.com/jonathan/resume-forge/internal/rendering"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
)

// createResumeRequest asks the server to structure raw resume text and
// store the result.
type createResumeRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// handleCreateResume structures raw resume text into a validated record
// and persists it.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if req.Title == "" {
		req.Title = "Untitled resume"
	}

	record, err := parsing.StructureResume(r.Context(), s.llm, req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resume, err := s.store.CreateResume(r.Context(), userID, req.Title, req.Text, record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes lists the caller's resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resumes, err := s.store.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume retrieves one resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a resume's structured record after
// validating it against the schema.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	var record types.ResumeData
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := schemas.ValidateRecord(&record); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.UpdateResumeRecord(r.Context(), userID, id, &record); err != nil {
		s.errorResponse(w, storeStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleDeleteResume deletes a resume and its applications.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	if err := s.store.DeleteResume(r.Context(), userID, id); err != nil {
		s.errorResponse(w, storeStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResumeTex renders a resume's base record as a LaTeX document.
func (s *Server) handleResumeTex(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.writeTex(w, resume.Record)
}

// handleResumePDF renders and compiles a resume's base record.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	resume, ok := s.loadResume(w, r)
	if !ok {
		return
	}
	s.writePDF(w, r, resume.Record)
}

// storeStatus maps store write errors: a missing row is 404, anything
// else is a database failure.
func storeStatus(err error) int {
	if errors.Is(err, db.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// loadResume resolves the {id} path value to a resume owned by the
// caller, writing the error response itself on failure.
func (s *Server) loadResume(w http.ResponseWriter, r *http.Request) (*db.Resume, bool) {
	userID, err := requestUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return nil, false
	}

	resume, err := s.store.GetResume(r.Context(), userID, id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, fmt.Sprintf("resume not found: %s", id))
		return nil, false
	}
	return resume, true
}

// writeTex renders a record into the full document and writes it as
// plain text.
func (s *Server) writeTex(w http.ResponseWriter, record *types.ResumeData) {
	doc, err := rendering.FullDocument(record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/x-tex")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// writePDF renders a record and compiles it to PDF. Compilation
// failures include the typesetter log so callers can see what broke.
func (s *Server) writePDF(w http.ResponseWriter, r *http.Request, record *types.ResumeData) {
	doc, err := rendering.FullDocument(record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, logOutput, err := compiler.PDF(r.Context(), doc)
	if err != nil {
		s.jsonResponse(w, HTTPStatus(err), map[string]string{
			"error": err.Error(),
			"log":   logOutput,
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
