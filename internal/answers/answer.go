// Package answers synthesizes prose answers to application questions,
// grounded in a tailored resume record.
package answers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/prompts"
	"github.com/jonathan/resume-forge/internal/types"
)

// Sampling parameters for answer generation. This is the only stage
// producing free prose, so it runs warmest.
const (
	answerTemperature = 0.8
	answerMaxTokens   = 1024
)

// Generate produces a prose answer to an application question. The
// prompt grounds the model in the tailored record's experience and
// project bullets; the 150-300 word guidance is advisory, so the
// returned text is only trimmed, never truncated or padded.
//
// The only oracle failure kind here is *llm.APICallError; the output is
// display-only prose with no structured contract.
func Generate(ctx context.Context, client llm.Client, record *types.ResumeData, appCtx types.ApplicationContext, question string) (string, error) {
	if record == nil {
		return "", fmt.Errorf("tailored record is required")
	}
	if err := appCtx.Validate(); err != nil {
		return "", fmt.Errorf("invalid application context: %w", err)
	}
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is empty")
	}

	recordJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal record: %w", err)
	}

	prompt := prompts.Format(prompts.MustGet("pipeline.json", "answer-question"), map[string]string{
		"ResumeJSON":     string(recordJSON),
		"JobTitle":       appCtx.JobTitle,
		"JobDescription": appCtx.JobDescription,
		"Question":       question,
	})

	text, err := client.Generate(ctx, prompt, llm.GenParams{
		Temperature:     answerTemperature,
		MaxOutputTokens: answerMaxTokens,
	})
	if err != nil {
		var apiErr *llm.APICallError
		if errors.As(err, &apiErr) {
			return "", err
		}
		return "", &llm.APICallError{Message: "answer generation call failed", Cause: err}
	}

	return strings.TrimSpace(text), nil
}
