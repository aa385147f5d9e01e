package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-forge/internal/config"
	"github.com/jonathan/resume-forge/internal/fetch"
	"github.com/jonathan/resume-forge/internal/llm"
	"github.com/jonathan/resume-forge/internal/schemas"
	"github.com/jonathan/resume-forge/internal/types"
)

// newLLMClient builds the Gemini client from environment configuration.
func newLLMClient(ctx context.Context) (llm.Client, error) {
	cfg := config.Load()
	if err := cfg.Validate(false); err != nil {
		return nil, err
	}
	return llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
}

// loadRecord reads and schema-validates a stored record file.
func loadRecord(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	record, err := schemas.DecodeResume(content)
	if err != nil {
		return nil, fmt.Errorf("record file %s: %w", path, err)
	}
	return record, nil
}

// writeRecord writes a record as indented JSON, creating parent
// directories as needed.
func writeRecord(path string, record *types.ResumeData) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// resolveJobDescription builds the job description from an inline
// string, a text file, or a posting URL, in that order of preference.
// useBrowser enables the headless-browser fallback for postings that
// render client side.
func resolveJobDescription(ctx context.Context, inline, file, url string, useBrowser bool) (string, error) {
	switch {
	case inline != "":
		return inline, nil
	case file != "":
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(content), nil
	case url != "":
		opts := fetch.DefaultOptions()
		opts.UseBrowser = useBrowser
		return fetch.JobDescription(ctx, url, opts)
	default:
		return "", fmt.Errorf("provide one of --job-desc, --job-file, or --job-url")
	}
}
