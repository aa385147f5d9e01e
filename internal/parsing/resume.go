// Package parsing turns raw resume text into a validated structured record
// via a single LLM extraction round trip.
package parsing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
)

// Sampling parameters for the structuring call. Low temperature biases
// the model toward literal transcription over invention.
const (
	structureTemperature = 0.3
	structureMaxTokens   = 2048
)

// StructureResume extracts a validated ResumeData record from raw
// resume text. Exactly one oracle round trip per call.
//
// Failure kinds are distinguishable for retry decisions:
// *llm.APICallError when the call itself failed (retryable) and
// *llm.MalformedOutputError when the response could not be extracted or
// failed schema validation (not retryable as-is).
func StructureResume(ctx context.Context, client llm.Client, documentText string) (*types.ResumeData, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, fmt.Errorf("document text is empty")
	}

	prompt := prompts.Format(prompts.MustGet("pipeline.json", "structure-resume"), map[string]string{
		"ResumeText": documentText,
	})

	text, err := client.Generate(ctx, prompt, llm.GenParams{
		Temperature:     structureTemperature,
		MaxOutputTokens: structureMaxTokens,
		JSONOutput:      true,
	})
	if err != nil {
		return nil, asAPICallError(err, "resume structuring call failed")
	}

	return DecodeResume(text)
}

// DecodeResume recovers a validated record from a free-text model
// reply: payload extraction, JSON parse, then schema validation. The
// two failure modes stay distinct in the error message; both are
// *llm.MalformedOutputError.
func DecodeResume(responseText string) (*types.ResumeData, error) {
	payload := llm.ExtractJSON(responseText)

	if !json.Valid([]byte(payload)) {
		return nil, &llm.MalformedOutputError{Message: "no parseable JSON payload in response"}
	}

	resume, err := schemas.DecodeResume([]byte(payload))
	if err != nil {
		return nil, &llm.MalformedOutputError{
			Message: "response failed resume schema validation",
			Cause:   err,
		}
	}

	return resume, nil
}

// asAPICallError keeps client errors typed even when a Client
// implementation returns something else.
func asAPICallError(err error, message string) error {
	var apiErr *llm.APICallError
	if errors.As(err, &apiErr) {
		return err
	}
	return &llm.APICallError{Message: message, Cause: err}
}
