package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-forge/internal/compiler"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/schemas"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Oracle failures map to 502 because the upstream model, not this
// service, is the broken component; malformed oracle output maps to
// 502 as well since the client request was fine.
func HTTPStatus(err error) int {
	var (
		apiErr        *llm.APICallError
		malformedErr  *llm.MalformedOutputError
		validationErr *schemas.ValidationError
		compileErr    *compiler.CompilationError
	)

	switch {
	case errors.As(err, &apiErr), errors.As(err, &malformedErr):
		return http.StatusBadGateway
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &compileErr):
		return http.StatusInternalServerError
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
