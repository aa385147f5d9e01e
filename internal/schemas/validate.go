// Package schemas provides JSON Schema validation for structured resume records.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-forge/internal/types"
)

//go:embed resume.schema.json
var resumeSchemaJSON string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// compiledSchema compiles the embedded resume schema once.
func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(resumeSchemaJSON)
		schema, schemaErr = gojsonschema.NewSchema(loader)
		if schemaErr != nil {
			schemaErr = &SchemaLoadError{
				Message: "failed to compile embedded resume schema",
				Cause:   schemaErr,
			}
		}
	})
	return schema, schemaErr
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("resume validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or compiling the schema itself.
// This is a configuration defect, not a bad document.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against the resume schema.
// The document must already be syntactically valid JSON; callers that
// consume untrusted oracle output check that first so the two failure
// modes stay distinguishable.
func Validate(document []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &ValidationError{Errors: []FieldError{
			{Field: "(document)", Message: err.Error()},
		}}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}

// DecodeResume validates a JSON document against the resume schema and
// decodes it into a typed record. The record is rejected whole on any
// violation; no partially-filled record is ever returned.
func DecodeResume(document []byte) (*types.ResumeData, error) {
	if err := Validate(document); err != nil {
		return nil, err
	}

	var resume types.ResumeData
	if err := json.Unmarshal(document, &resume); err != nil {
		return nil, &ValidationError{Errors: []FieldError{
			{Field: "(document)", Message: fmt.Sprintf("failed to decode validated document: %v", err)},
		}}
	}

	return &resume, nil
}

// ValidateRecord re-validates an in-memory record, for callers that
// receive records from outside the oracle path (e.g. stored JSON).
func ValidateRecord(resume *types.ResumeData) error {
	data, err := json.Marshal(resume)
	if err != nil {
		return &ValidationError{Errors: []FieldError{
			{Field: "(record)", Message: fmt.Sprintf("failed to marshal record: %v", err)},
		}}
	}
	return Validate(data)
}
