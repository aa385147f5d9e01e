// Package tailoring derives a job-specific variant of a structured resume
// record via a single LLM round trip.
package tailoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/parsing"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/types"
)

// Sampling parameters for the tailoring call. Higher temperature than
// structuring: the model is rewording and reordering, not transcribing.
const (
	tailorTemperature = 0.7
	tailorMaxTokens   = 4096
)

// Tailor produces a new record optimized for the given job context.
// The base record is never mutated; re-tailoring yields a fresh record.
//
// Truthfulness is a prompt-level contract. The verifiable contract here
// is narrower: the result passes schema validation and the contact
// identity fields match the base record. Identity drift is rejected as
// *llm.MalformedOutputError.
func Tailor(ctx context.Context, client llm.Client, base *types.ResumeData, appCtx types.ApplicationContext) (*types.ResumeData, error) {
	if base == nil {
		return nil, fmt.Errorf("base record is required")
	}
	if err := appCtx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid application context: %w", err)
	}

	baseJSON, err := json.MarshalIndent(base, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal base record: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("pipeline.json", "tailor-resume"), map[string]string{
		"ResumeJSON":     string(baseJSON),
		"JobTitle":       appCtx.JobTitle,
		"JobDescription": appCtx.JobDescription,
	})

	text, err := client.Generate(ctx, prompt, llm.GenParams{
		Temperature:     tailorTemperature,
		MaxOutputTokens: tailorMaxTokens,
		JSONOutput:      true,
	})
	if err != nil {
		return nil, asAPICallError(err, "resume tailoring call failed")
	}

	tailored, err := parsing.DecodeResume(text)
	if err != nil {
		return nil, err
	}

	if !sameIdentity(base.Contact, tailored.Contact) {
		return nil, &llm.MalformedOutputError{
			Message: fmt.Sprintf("contact identity drifted from base record: got %q <%s>",
				tailored.Contact.Name, tailored.Contact.Email),
		}
	}

	return tailored, nil
}

// sameIdentity compares the identity fields of two contacts. Whitespace
// around the values is formatting noise, not drift.
func sameIdentity(base, tailored types.ContactInfo) bool {
	return strings.TrimSpace(base.Name) == strings.TrimSpace(tailored.Name) &&
		strings.TrimSpace(base.Email) == strings.TrimSpace(tailored.Email)
}

func asAPICallError(err error, message string) error {
	var apiErr *llm.APICallError
	if errors.As(err, &apiErr) {
		return err
	}
	return &llm.APICallError{Message: message, Cause: err}
}
