package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-forge/internal/tailoring"
	"github.com/jonathan/resume-forge/internal/types"
)

var (
	tailorRecordFile string
	tailorJobTitle   string
	tailorJobDesc    string
	tailorJobFile    string
	tailorJobURL     string
	tailorUseBrowser bool
	tailorOutFile    string
	tailorJobsFile   string
	tailorOutDir     string
	tailorWorkers    int
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor a record to one or more job postings",
	Long: `Tailors a structured record to a job. With --jobs, a JSON array of
{"job_title", "job_description"} objects is processed concurrently and
one tailored record is written per job.`,
	RunE: runTailor,
}

func init() {
	tailorCmd.Flags().StringVarP(&tailorRecordFile, "record", "r", "", "Path to base record JSON file (required)")
	tailorCmd.Flags().StringVar(&tailorJobTitle, "job-title", "", "Target job title")
	tailorCmd.Flags().StringVar(&tailorJobDesc, "job-desc", "", "Job description text")
	tailorCmd.Flags().StringVar(&tailorJobFile, "job-file", "", "Path to job description text file")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL of the job posting to fetch")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Render the posting in a headless browser when plain HTTP yields too little text")
	tailorCmd.Flags().StringVarP(&tailorOutFile, "out", "o", "tailored.json", "Path to output record JSON file")
	tailorCmd.Flags().StringVar(&tailorJobsFile, "jobs", "", "Path to JSON array of jobs for batch tailoring")
	tailorCmd.Flags().StringVar(&tailorOutDir, "out-dir", "tailored", "Output directory for batch tailoring")
	tailorCmd.Flags().IntVar(&tailorWorkers, "workers", 3, "Concurrent tailoring calls in batch mode")
	_ = tailorCmd.MarkFlagRequired("record")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	base, err := loadRecord(tailorRecordFile)
	if err != nil {
		return err
	}

	if tailorJobsFile != "" {
		return runTailorBatch(cmd, base)
	}

	if tailorJobTitle == "" {
		return fmt.Errorf("--job-title is required")
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	description, err := resolveJobDescription(ctx, tailorJobDesc, tailorJobFile, tailorJobURL, tailorUseBrowser)
	if err != nil {
		return err
	}

	appCtx := types.ApplicationContext{JobTitle: tailorJobTitle, JobDescription: description}
	tailored, err := tailoring.Tailor(ctx, client, base, appCtx)
	if err != nil {
		return fmt.Errorf("failed to tailor resume: %w", err)
	}

	if err := writeRecord(tailorOutFile, tailored); err != nil {
		return err
	}

	fmt.Printf("Tailored resume for %q\n", tailorJobTitle)
	fmt.Printf("Output: %s\n", tailorOutFile)
	return nil
}

// runTailorBatch tailors the base record against every job in the jobs
// file, a few at a time. Each job writes <out-dir>/<slug>.json.
func runTailorBatch(cmd *cobra.Command, base *types.ResumeData) error {
	content, err := os.ReadFile(tailorJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []types.ApplicationContext
	if err := json.Unmarshal(content, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs file: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("jobs file contains no jobs")
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tailorWorkers)

	for i, job := range jobs {
		g.Go(func() error {
			tailored, err := tailoring.Tailor(gctx, client, base, job)
			if err != nil {
				return fmt.Errorf("job %q: %w", job.JobTitle, err)
			}

			out := filepath.Join(tailorOutDir, fmt.Sprintf("%02d-%s.json", i+1, slugify(job.JobTitle)))
			if err := writeRecord(out, tailored); err != nil {
				return fmt.Errorf("job %q: %w", job.JobTitle, err)
			}
			fmt.Printf("Tailored for %q -> %s\n", job.JobTitle, out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Tailored %d resumes into %s\n", len(jobs), tailorOutDir)
	return nil
}

// slugify reduces a job title to a filesystem-friendly name.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '/':
			if b.Len() > 0 && b.String()[b.Len()-1] != '-' {
				b.WriteByte('-')
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
