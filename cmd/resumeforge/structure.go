package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-forge/internal/parsing"
)

var (
	structureInFile  string
	structureOutFile string
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Structure raw resume text into a validated record",
	Long:  "Reads unstructured resume text and produces a schema-validated JSON record. The record is the input to every other command.",
	RunE:  runStructure,
}

func init() {
	structureCmd.Flags().StringVarP(&structureInFile, "in", "i", "", "Path to raw resume text file (required)")
	structureCmd.Flags().StringVarP(&structureOutFile, "out", "o", "record.json", "Path to output record JSON file")
	_ = structureCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(structureInFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	ctx := cmd.Context()
	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	record, err := parsing.StructureResume(ctx, client, string(content))
	if err != nil {
		return fmt.Errorf("failed to structure resume: %w", err)
	}

	if err := writeRecord(structureOutFile, record); err != nil {
		return err
	}

	fmt.Printf("Structured resume for %s\n", record.Contact.Name)
	fmt.Printf("Output: %s\n", structureOutFile)
	return nil
}
