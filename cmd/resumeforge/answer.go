package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/answers"
	"github.com/jonathan/resume-forge/internal/types"
)

var (
	answerRecordFile string
	answerJobTitle   string
	answerJobDesc    string
	answerJobFile    string
	answerJobURL     string
	answerUseBrowser bool
	answerQuestion   string
)

var answerCmd = &cobra.Command{
	Use:   "answer",
	Short: "Answer an application question from a record",
	Long:  "Generates a first-person answer to an application question, grounded in the record and the target job. The answer is printed to stdout.",
	RunE:  runAnswer,
}

func init() {
	answerCmd.Flags().StringVarP(&answerRecordFile, "record", "r", "", "Path to record JSON file (required)")
	answerCmd.Flags().StringVar(&answerJobTitle, "job-title", "", "Target job title (required)")
	answerCmd.Flags().StringVar(&answerJobDesc, "job-desc", "", "Job description text")
	answerCmd.Flags().StringVar(&answerJobFile, "job-file", "", "Path to job description text file")
	answerCmd.Flags().StringVar(&answerJobURL, "job-url", "", "URL of the job posting to fetch")
	answerCmd.Flags().BoolVar(&answerUseBrowser, "use-browser", false, "Render the posting in a headless browser when plain HTTP yields too little text")
	answerCmd.Flags().StringVarP(&answerQuestion, "question", "q", "", "The application question (required)")
	_ = answerCmd.MarkFlagRequired("record")
	_ = answerCmd.MarkFlagRequired("job-title")
	_ = answerCmd.MarkFlagRequired("question")

	rootCmd.AddCommand(answerCmd)
}

func runAnswer(cmd *cobra.Command, _ []string) error {
	record, err := loadRecord(answerRecordFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	description, err := resolveJobDescription(ctx, answerJobDesc, answerJobFile, answerJobURL, answerUseBrowser)
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	appCtx := types.ApplicationContext{JobTitle: answerJobTitle, JobDescription: description}
	answer, err := answers.Generate(ctx, client, record, appCtx, answerQuestion)
	if err != nil {
		return fmt.Errorf("failed to generate answer: %w", err)
	}

	fmt.Println(answer)
	return nil
}
