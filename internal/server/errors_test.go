package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/schemas"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api call error", &llm.APICallError{Message: "timeout"}, http.StatusBadGateway},
		{"malformed output", &llm.MalformedOutputError{Message: "no JSON"}, http.StatusBadGateway},
		{"wrapped api error", fmt.Errorf("tailoring: %w", &llm.APICallError{Message: "down"}), http.StatusBadGateway},
		{"validation error", &schemas.ValidationError{}, http.StatusBadRequest},
		{"compilation error", &compiler.CompilationError{Message: "pdflatex failed"}, http.StatusInternalServerError},
		{"email exists", &ErrEmailAlreadyExists{Email: "a@b.c"}, http.StatusConflict},
		{"bad credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
